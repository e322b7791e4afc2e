package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/geom"
)

// WritePoints encodes points as a {"points": [[x, y], ...]} document and
// writes it to w. The output can be re-read with [ReadPoints].
//
// Non-finite coordinates have no JSON representation and yield an
// INVALID_INPUT error before anything is written.
func WritePoints(w io.Writer, points []geom.Point) error {
	if ok, i := geom.Finite(points); !ok {
		return cperrors.New(cperrors.ErrCodeInvalidInput, "point %d: non-finite coordinate %v", i, points[i])
	}

	out := pointSet{Points: make([]wirePoint, len(points))}
	for i, p := range points {
		out.Points[i] = wirePoint(p)
	}
	return WriteReport(w, out)
}

// ExportPoints writes points to a JSON file at path.
// This is a convenience wrapper around [WritePoints] for file-based output.
func ExportPoints(points []geom.Point, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePoints(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteReport encodes v as indented JSON and writes it to w.
func WriteReport(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
