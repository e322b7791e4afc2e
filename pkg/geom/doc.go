// Package geom provides the planar point type and the squared-distance
// kernel shared by every closest-pair solver.
//
// # Overview
//
// A [Point] is an immutable (x, y) value. Two points with equal coordinates
// are interchangeable: nothing in this module gives a point an identity
// beyond its coordinates.
//
// # Distance
//
// [SqDist] returns the squared Euclidean distance. Solvers compare squared
// distances only and take a single square root when reporting, since
// ordering by squared distance is the same as ordering by distance.
//
// # Orderings
//
// Two total orders are defined over finite points:
//
//   - [CompareXY]: x ascending, ties broken by y ascending (the "Px" order)
//   - [CompareYX]: y ascending, ties broken by x ascending (the "Py" order)
//
// [SortedXY] and [SortedYX] return sorted copies and never touch their
// input.
//
// # Preconditions
//
// Coordinates must be finite. NaN makes both orderings non-total and the
// behaviour of any function in this package is then unspecified. Callers
// reading untrusted data should check with [Finite] first.
package geom
