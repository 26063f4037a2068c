package boolean

import (
	"math/big"

	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/sweep"
	"github.com/lycantropos/clipping/types"
)

// arealEdge is one kept, directed piece of an areal reconstruction: the
// "ResultUp" convention (see [sweep.Event.ResultUp]'s doc) orients it so the
// result's interior lies on the edge's left as it is walked from -> to.
type arealEdge struct {
	from, to segment.RatPoint
	event    sweep.EventID
	visited  bool
}

// reconstructAreal threads selectAreal's kept, directed pieces into closed
// contours, classifies each by winding into a shell or a hole, nests holes
// into their enclosing shell, and returns the resulting
// [polygon.Multipolygon].
func reconstructAreal[T types.SignedNumber](res *sweep.Result, op Operation) (polygon.Multipolygon[T], error) {
	edges := collectArealEdges(res, op)
	if len(edges) == 0 {
		return nil, nil
	}

	adjacency := make(map[string][]int, len(edges))
	for i, e := range edges {
		adjacency[ratKey(e.from)] = append(adjacency[ratKey(e.from)], i)
	}

	var rawContours [][]segment.RatPoint
	for i := range edges {
		if edges[i].visited {
			continue
		}
		rawContours = append(rawContours, traceContour(res.Arena, len(rawContours), i, edges, adjacency))
	}

	var shells, holes []polygon.Contour[T]
	for _, raw := range rawContours {
		raw = pruneCollinear(raw)
		if len(raw) < 3 {
			continue
		}
		c, err := contourFromRat[T](raw)
		if err != nil {
			return nil, err
		}
		c = c.CanonicalStart()
		switch c.Orientation() {
		case types.PointsCounterClockwise:
			shells = append(shells, c)
		case types.PointsClockwise:
			holes = append(holes, c)
		}
	}

	polys := make([]polygon.Polygon[T], len(shells))
	for i, s := range shells {
		polys[i] = polygon.Polygon[T]{Shell: s}
	}

	for _, h := range holes {
		owner := -1
		for i, p := range polys {
			if p.Shell.Contains(h.SmallestVertex()) != types.PointInside {
				continue
			}
			if owner == -1 || absRat(p.Shell.Area2XSigned()).Cmp(absRat(polys[owner].Shell.Area2XSigned())) < 0 {
				owner = i
			}
		}
		if owner == -1 {
			// No enclosing shell found; hole-to-shell nesting assumes
			// well-formed sweep output, so this would indicate a labelling
			// defect upstream. Drop the orphan rather than fabricate a
			// shell for it.
			continue
		}
		polys[owner].Holes = append(polys[owner].Holes, h)
	}

	return polygon.Multipolygon[T](polys).Sorted(), nil
}

func collectArealEdges(res *sweep.Result, op Operation) []arealEdge {
	var edges []arealEdge
	for _, id := range res.Pieces {
		ev := res.Arena.Get(id)
		keep, up := selectAreal(op, ev)
		ev.InResult, ev.ResultUp = keep, up
		if !keep {
			continue
		}
		lo, hi := res.Arena.SegmentOf(id)
		if up {
			edges = append(edges, arealEdge{from: lo, to: hi, event: id})
		} else {
			edges = append(edges, arealEdge{from: hi, to: lo, event: id})
		}
	}
	return edges
}

// traceContour follows directed edges starting at edges[start] until the
// walk returns to its own starting vertex, marking every consumed edge
// visited and stamping its event with the contour id along the way.
func traceContour(arena *sweep.Arena, contourID, start int, edges []arealEdge, adjacency map[string][]int) []segment.RatPoint {
	startFrom := edges[start].from
	var contour []segment.RatPoint
	cur := start
	for {
		e := &edges[cur]
		e.visited = true
		arena.Get(e.event).ContourID = contourID
		contour = append(contour, e.from)
		if e.to.Eq(startFrom) {
			return contour
		}
		next := pickNextEdge(e.from, e.to, edges, adjacency)
		if next < 0 {
			return contour
		}
		cur = next
	}
}

// pickNextEdge chooses, among the unvisited edges leaving vertex cur, the
// one that turns the least clockwise from the direction the walk arrived
// by (prevFrom -> cur), the standard planar-subdivision face-tracing rule
// that keeps a threaded boundary from crossing itself at a vertex where
// more than two kept edges meet.
func pickNextEdge(prevFrom, cur segment.RatPoint, edges []arealEdge, adjacency map[string][]int) int {
	base := segment.RatPoint{
		X: new(big.Rat).Sub(prevFrom.X, cur.X),
		Y: new(big.Rat).Sub(prevFrom.Y, cur.Y),
	}
	baseAngle := pseudoAngle(base)

	best := -1
	var bestDelta *big.Rat
	for _, idx := range adjacency[ratKey(cur)] {
		if edges[idx].visited {
			continue
		}
		d := segment.RatPoint{
			X: new(big.Rat).Sub(edges[idx].to.X, cur.X),
			Y: new(big.Rat).Sub(edges[idx].to.Y, cur.Y),
		}
		angle := pseudoAngle(d)
		delta := new(big.Rat).Sub(baseAngle, angle)
		if delta.Sign() <= 0 {
			delta.Add(delta, big.NewRat(4, 1))
		}
		if best == -1 || delta.Cmp(bestDelta) < 0 {
			best, bestDelta = idx, delta
		}
	}
	return best
}

// pseudoAngle returns a value in [0, 4) that increases monotonically with
// v's true counterclockwise angle from the positive x-axis, without any
// trigonometry, just the sign of y and the ratio x/(|x|+|y|), so it stays
// exact over [math/big.Rat].
func pseudoAngle(v segment.RatPoint) *big.Rat {
	absX := new(big.Rat).Abs(v.X)
	absY := new(big.Rat).Abs(v.Y)
	sum := new(big.Rat).Add(absX, absY)

	p := new(big.Rat).Quo(v.X, sum)
	var a *big.Rat
	if v.Y.Sign() < 0 {
		a = new(big.Rat).Sub(p, big.NewRat(1, 1))
	} else {
		a = new(big.Rat).Sub(big.NewRat(1, 1), p)
	}
	if a.Sign() < 0 {
		a.Add(a, big.NewRat(4, 1))
	}
	return a
}

func absRat(r *big.Rat) *big.Rat {
	return new(big.Rat).Abs(r)
}

// pruneCollinear drops vertices at which the contour does not turn, so a
// side assembled from several collinear pieces reads as a single edge.
func pruneCollinear(raw []segment.RatPoint) []segment.RatPoint {
	n := len(raw)
	if n < 3 {
		return raw
	}
	out := make([]segment.RatPoint, 0, n)
	for i := 0; i < n; i++ {
		prev := raw[(i+n-1)%n]
		next := raw[(i+1)%n]
		if segment.OrientationRat(prev, raw[i], next) == types.PointsCollinear {
			continue
		}
		out = append(out, raw[i])
	}
	return out
}

func contourFromRat[T types.SignedNumber](raw []segment.RatPoint) (polygon.Contour[T], error) {
	c := make(polygon.Contour[T], len(raw))
	for i, p := range raw {
		pt, err := pointFromRat[T](p)
		if err != nil {
			return nil, err
		}
		c[i] = pt
	}
	return c, nil
}
