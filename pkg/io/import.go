package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/geom"
)

// ReadPoints decodes a JSON point set from r.
//
// Both {"points": [...]} and a bare top-level array are accepted. Entries
// are [x, y] arrays or {"x": ..., "y": ...} objects. The returned slice is
// independent of r. ReadPoints does not close r.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var entries []wirePoint
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &entries)
	} else {
		var doc pointSet
		err = json.Unmarshal(trimmed, &doc)
		entries = doc.Points
		if err == nil && doc.Points == nil {
			err = errors.New(`missing "points" array`)
		}
	}
	if err != nil {
		return nil, cperrors.Wrap(cperrors.ErrCodeInvalidFormat, err, "decode points")
	}

	pts := make([]geom.Point, len(entries))
	for i, e := range entries {
		p := geom.Point(e)
		if !p.Finite() {
			return nil, cperrors.New(cperrors.ErrCodeInvalidFormat, "point %d: non-finite coordinate %v", i, p)
		}
		pts[i] = p
	}
	return pts, nil
}

// ImportPoints reads a JSON point set from the file at path.
//
// A missing file yields a FILE_NOT_FOUND error. Decoding errors are those
// of [ReadPoints], prefixed with the path.
func ImportPoints(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cperrors.Wrap(cperrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pts, err := ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}
