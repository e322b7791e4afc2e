// Package generate produces synthetic point sets for exercising the
// closest-pair solvers.
//
// Two distributions are available:
//
//   - [Clustered]: a few Gaussian blobs whose centres are uniform in the
//     square [0, Extent)². Dense clusters put many points near the
//     dividing lines of the recursion and make for the interesting case.
//   - [Uniform]: points uniform in the same square.
//
// Generation is deterministic. The same [Options.Seed] always yields the
// same points; a zero seed selects a fixed default, so callers that want
// varying input must supply their own seeds.
package generate
