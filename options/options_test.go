package options_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/lycantropos/clipping/options"
	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	resolved := options.Apply()
	assert.False(t, resolved.Trace)
	assert.NotNil(t, resolved.Logger)
}

func TestWithTraceLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	resolved := options.Apply(options.WithTrace(logger))
	resolved.Logf("sweep at x=%d", 3)

	assert.Contains(t, buf.String(), "sweep at x=3")
}

func TestWithoutTraceIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	resolved := options.Apply()
	resolved.Logger = logger
	resolved.Logf("should not appear")

	assert.Empty(t, buf.String())
}
