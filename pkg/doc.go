// Package pkg provides the libraries behind the closestpair tool.
//
// # Overview
//
// closestpair finds the two closest points in a planar point set with an
// O(n log n) divide-and-conquer algorithm, and checks the answer against an
// O(n²) brute-force scan. The pkg directory is organized into three areas:
//
//  1. Core: [geom] (points and the squared-distance metric) and [closest]
//     (both solvers)
//  2. Harness: [generate] (synthetic inputs), [io] (JSON point files) and
//     [pipeline] (run, time and compare the solvers)
//  3. Surfaces and support: [api] (HTTP), [config] (TOML settings),
//     [errors] (coded errors), [observability] (hooks) and [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	generate.Generate / io.ImportPoints / API request body
//	         ↓
//	    [pipeline] Runner.Compare
//	         ↓
//	    [closest] ClosestPair and BruteForce (concurrently)
//	         ↓
//	    pipeline.Report (text, JSON or HTTP response)
//
// # Quick Start
//
// Solve a point set directly:
//
//	import (
//	    "github.com/arkapriyo/closestpair/pkg/closest"
//	    "github.com/arkapriyo/closestpair/pkg/geom"
//	)
//
//	res, err := closest.ClosestPair([]geom.Point{
//	    geom.Pt(0, 0), geom.Pt(3, 4), geom.Pt(0, 0.0000001),
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Distance, res.Pair)
//
// Or compare both solvers on generated data:
//
//	runner := pipeline.NewRunner(logger)
//	report, err := runner.Compare(ctx, pipeline.Options{Count: 10000, Seed: 1})
//	if err != nil {
//	    return err
//	}
//	return report.Verify()
//
// The core packages [geom] and [closest] have no dependencies outside the
// standard library and do no logging.
package pkg
