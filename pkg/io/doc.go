// Package io provides JSON import and export for point sets and comparison
// reports.
//
// # JSON Format
//
// A point set is an object with a single "points" array. Each entry is a
// two-element [x, y] array:
//
//	{
//	  "points": [
//	    [0, 0],
//	    [3, 4],
//	    [0, 1e-7]
//	  ]
//	}
//
// On input the following are also accepted:
//
//   - A bare top-level array: [[0, 0], [3, 4]]
//   - Object entries: {"x": 0, "y": 0}
//
// Output always uses the canonical object-with-arrays form.
//
// # Validation
//
// Decoding fails with an INVALID_FORMAT error when the document is not
// valid JSON, when an entry does not hold exactly two numbers, or when a
// coordinate is not finite. Errors name the offending entry by index.
// Opening a missing file yields FILE_NOT_FOUND.
//
// No minimum point count is enforced here; the solvers reject sets with
// fewer than two points themselves.
//
// # Reports
//
// [WriteReport] writes any JSON-encodable value with the same indentation
// as point sets. The pipeline uses it for comparison reports.
package io
