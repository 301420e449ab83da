// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mathengine/function"
	"github.com/katalvlaran/mathengine/quadrature"
)

// benchmarkRule integrates x^2-3 over [0, 2] with n strips.
func benchmarkRule(b *testing.B, kind quadrature.Kind, n int) {
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quadrature.Integrate(ctx, function.New("x^2-3"), 0, 2, n, kind); err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
	}
}

func BenchmarkMidOrdinate_100(b *testing.B) { benchmarkRule(b, quadrature.KindMidOrdinate, 100) }
func BenchmarkTrapezium_100(b *testing.B)   { benchmarkRule(b, quadrature.KindTrapezium, 100) }
func BenchmarkSimpson_100(b *testing.B)     { benchmarkRule(b, quadrature.KindSimpson, 100) }
