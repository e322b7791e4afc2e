// Package closest finds the closest pair among a set of planar points.
//
// Two solvers are provided and they always agree on the distance:
//
//   - [ClosestPair]: divide and conquer, O(n log n).
//   - [BruteForce]: every unordered pair once, O(n²). Used as the
//     reference oracle and as the recursion base case.
//
// # Algorithm
//
// [ClosestPair] sorts the input once by (x, y) and once by (y, x), then
// recurses over index ranges of those two arrays:
//
//  1. A range of at most 3 points is scanned by brute force.
//  2. Otherwise the x-sorted range is split at its middle index. The
//     x-coordinate of the middle point is the dividing line.
//  3. The y-sorted range is partitioned into the two halves in a single
//     stable pass, so each half stays y-sorted without re-sorting.
//  4. Both halves are solved. The smaller squared distance d wins, the left
//     half on ties.
//  5. Points within sqrt(d) of the dividing line form the strip. Walking it
//     in y order, each point is compared with its successors until their
//     vertical gap alone reaches sqrt(d).
//
// Only squared distances are compared; the single square root is taken
// when the top-level result is built.
//
// # Determinism
//
// BruteForce reports the first minimal pair in index order (i ascending,
// then j ascending). ClosestPair prefers the left half on ties. The two may
// therefore name different pairs when several pairs share the minimum, but
// never different distances.
//
// # Preconditions
//
// At least two points are required; fewer yields an INVALID_INPUT error
// wrapping [ErrTooFewPoints]. Coordinates must be finite: NaN breaks the
// sort order the recursion depends on and the result is then unspecified.
//
// # Complexity
//
//   - ClosestPair: O(n log n) time, O(n) extra memory (three arrays of n
//     points allocated once per call).
//   - BruteForce: O(n²) time, O(1) extra memory.
//
// The strip bound assumes points do not pile up on near-identical
// coordinates. Such inputs stay correct but the strip scan grows longer.
//
// Neither solver mutates its input, keeps state between calls or starts
// goroutines, so both are safe to call concurrently on shared input.
package closest
