package io

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type pointSet struct {
	Points []wirePoint `json:"points"`
}

// wirePoint is a point as it appears in JSON: [x, y] on output, either
// [x, y] or {"x": x, "y": y} on input.
type wirePoint struct {
	X float64
	Y float64
}

func (p wirePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *wirePoint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.X == nil || obj.Y == nil {
			return fmt.Errorf("point %s: need both x and y", data)
		}
		p.X, p.Y = *obj.X, *obj.Y
		return nil
	}

	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 2 {
		return fmt.Errorf("point %s: need exactly 2 coordinates, got %d", data, len(arr))
	}
	p.X, p.Y = arr[0], arr[1]
	return nil
}
