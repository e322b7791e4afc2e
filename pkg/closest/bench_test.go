package closest_test

import (
	"fmt"
	"testing"

	"github.com/arkapriyo/closestpair/pkg/closest"
)

func BenchmarkClosestPair(b *testing.B) {
	for _, n := range []int{100, 1000, 10000, 100000} {
		pts := uniformPoints(newRNG(1), n, 1e6)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = closest.ClosestPair(pts)
			}
		})
	}
}

func BenchmarkBruteForce(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		pts := uniformPoints(newRNG(1), n, 1e6)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = closest.BruteForce(pts)
			}
		})
	}
}

func BenchmarkClosestPairClustered(b *testing.B) {
	pts := clusteredPoints(newRNG(2), 50000, 3, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = closest.ClosestPair(pts)
	}
}
