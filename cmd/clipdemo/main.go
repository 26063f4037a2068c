// Command clipdemo is a thin demonstration binary over package boolean:
// it reads two operands as JSON from stdin, applies the selected Boolean
// operation, and writes the result as JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lycantropos/clipping/boolean"
	"github.com/lycantropos/clipping/options"
	"github.com/lycantropos/clipping/polygon"
	"github.com/urfave/cli/v3"
)

// request is the JSON shape read from stdin: two operands of the same kind
// (multisegment or multipolygon). The operation to run between them comes
// from the --operation flag.
type request struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

func main() {
	cmd := &cli.Command{
		Name:      "clipdemo",
		Usage:     "Runs a planar Boolean set operation over two operands read as JSON from stdin",
		UsageText: "clipdemo --kind <segments|polygons> --operation <intersect|unite|subtract|symmetric_subtract|complete_intersect>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "kind",
				Usage:    "operand kind: segments (multisegment) or polygons (multipolygon)",
				Value:    "segments",
				OnlyOnce: true,
				Validator: func(v string) error {
					if v != "segments" && v != "polygons" {
						return fmt.Errorf("kind must be 'segments' or 'polygons', got %q", v)
					}
					return nil
				},
			},
			&cli.StringFlag{
				Name:     "operation",
				Usage:    "intersect, unite, subtract, symmetric_subtract, or complete_intersect",
				Value:    "intersect",
				OnlyOnce: true,
				Validator: func(v string) error {
					switch v {
					case "intersect", "unite", "subtract", "symmetric_subtract", "complete_intersect":
						return nil
					default:
						return fmt.Errorf("unsupported operation %q", v)
					}
				},
			},
			&cli.BoolFlag{
				Name:     "trace",
				Usage:    "log sweep internals to stderr",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	kind := cmd.String("kind")
	operation := cmd.String("operation")

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		return fmt.Errorf("parsing request JSON: %w", err)
	}

	var opts []options.EngineOptionFunc
	if cmd.Bool("trace") {
		opts = append(opts, options.WithTrace(log.New(os.Stderr, "clipdemo: ", 0)))
	}
	resolved := options.Apply(opts...)

	var result any
	switch kind {
	case "segments":
		result, err = runSegments(operation, req, resolved)
	case "polygons":
		result, err = runPolygons(operation, req, resolved)
	}
	if err != nil {
		return err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runSegments(operation string, req request, opts options.EngineOptions) (any, error) {
	var a, b polygon.Multisegment[int]
	if err := json.Unmarshal(req.A, &a); err != nil {
		return nil, fmt.Errorf("parsing operand a: %w", err)
	}
	if err := json.Unmarshal(req.B, &b); err != nil {
		return nil, fmt.Errorf("parsing operand b: %w", err)
	}

	switch operation {
	case "intersect":
		return boolean.IntersectSegments(a, b, opts)
	case "unite":
		return boolean.UniteSegments(a, b, opts)
	case "subtract":
		return boolean.SubtractSegments(a, b, opts)
	case "symmetric_subtract":
		return boolean.SymmetricSubtractSegments(a, b, opts)
	case "complete_intersect":
		points, segs, err := boolean.CompleteIntersectSegments(a, b, opts)
		if err != nil {
			return nil, err
		}
		return struct {
			Points   polygon.MultiPoint[int]   `json:"points"`
			Segments polygon.Multisegment[int] `json:"segments"`
		}{Points: points, Segments: segs}, nil
	default:
		return nil, fmt.Errorf("%w: %q", boolean.ErrUnsupportedOperands, operation)
	}
}

func runPolygons(operation string, req request, opts options.EngineOptions) (any, error) {
	var a, b polygon.Multipolygon[int]
	if err := json.Unmarshal(req.A, &a); err != nil {
		return nil, fmt.Errorf("parsing operand a: %w", err)
	}
	if err := json.Unmarshal(req.B, &b); err != nil {
		return nil, fmt.Errorf("parsing operand b: %w", err)
	}
	switch operation {
	case "intersect":
		return boolean.IntersectPolygons(a, b, opts)
	case "unite":
		return boolean.UnitePolygons(a, b, opts)
	case "subtract":
		return boolean.SubtractPolygons(a, b, opts)
	case "symmetric_subtract":
		return boolean.SymmetricSubtractPolygons(a, b, opts)
	case "complete_intersect":
		points, segs, polys, err := boolean.CompleteIntersectPolygons(a, b, opts)
		if err != nil {
			return nil, err
		}
		return struct {
			Points   polygon.MultiPoint[int]   `json:"points"`
			Segments polygon.Multisegment[int] `json:"segments"`
			Polygons polygon.Multipolygon[int] `json:"polygons"`
		}{Points: points, Segments: segs, Polygons: polys}, nil
	default:
		return nil, fmt.Errorf("%w: %q", boolean.ErrUnsupportedOperands, operation)
	}
}
