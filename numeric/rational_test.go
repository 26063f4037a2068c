package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRat(t *testing.T) {
	assert.Equal(t, big.NewRat(7, 1), ToRat(7))
	assert.Equal(t, big.NewRat(-3, 1), ToRat(int32(-3)))
	assert.Equal(t, big.NewRat(11, 1), ToRat(int64(11)))
	assert.Equal(t, big.NewRat(1, 2), ToRat(float64(0.5)))
	assert.Equal(t, big.NewRat(1, 4), ToRat(float32(0.25)))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, Sign(big.NewRat(-1, 2)))
	assert.Equal(t, 0, Sign(big.NewRat(0, 1)))
	assert.Equal(t, 1, Sign(big.NewRat(1, 3)))
}
