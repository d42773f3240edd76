package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPV(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		cashflows []float64
		want      float64
	}{
		{name: "zero rate sums", rate: 0, cashflows: []float64{-100, 60, 60}, want: 20},
		{name: "year 0 undiscounted", rate: 0.5, cashflows: []float64{-100}, want: -100},
		{name: "one period", rate: 0.1, cashflows: []float64{-100, 110}, want: 0},
		{name: "two periods", rate: 0.1, cashflows: []float64{0, 0, 121}, want: 100},
		{name: "empty", rate: 0.1, cashflows: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NPV(tt.rate, tt.cashflows), 1e-9)
		})
	}
}

func TestIRR(t *testing.T) {
	tests := []struct {
		name      string
		cashflows []float64
		want      float64
	}{
		{name: "single period", cashflows: []float64{-100, 110}, want: 0.10},
		{name: "complex roots filtered", cashflows: []float64{-100, 0, 0, 133.1}, want: 0.10},
		{name: "leading zero", cashflows: []float64{0, -100, 121}, want: 0.21},
		{name: "trailing zero", cashflows: []float64{-100, 110, 0}, want: 0.10},
		{name: "negative rate", cashflows: []float64{-100, 50, 40}, want: -0.0699},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IRR(tt.cashflows)
			require.True(t, got.IsValid())
			assert.InDelta(t, tt.want, got.Value(), 1e-4)
			assert.InDelta(t, 0, NPV(got.Value(), tt.cashflows), 1e-6)
		})
	}
}

func TestIRRAnnuity(t *testing.T) {
	cashflows := []float64{-1000, 300, 400, 500, 200}

	got := IRR(cashflows)

	require.True(t, got.IsValid())
	assert.InDelta(t, 0, NPV(got.Value(), cashflows), 1e-6)
	assert.Greater(t, got.Value(), 0.0)
}

func TestIRRNotComputable(t *testing.T) {
	tests := []struct {
		name      string
		cashflows []float64
	}{
		{name: "all outflows", cashflows: []float64{0, -960, -988.8, -1018.46}},
		{name: "all inflows", cashflows: []float64{100, 50}},
		{name: "all zero", cashflows: []float64{0, 0, 0}},
		{name: "empty", cashflows: nil},
		{name: "sign change without real root", cashflows: []float64{1, -1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IRR(tt.cashflows).IsValid())
		})
	}
}

func TestPaybackYear(t *testing.T) {
	tests := []struct {
		name      string
		cashflows []float64
		want      int
		ok        bool
	}{
		{name: "reached", cashflows: []float64{-100, 40, 40, 40}, want: 3, ok: true},
		{name: "exact zero counts", cashflows: []float64{-100, 50, 50}, want: 2, ok: true},
		{name: "non-negative at year 0", cashflows: []float64{0, -10, -10}, want: 0, ok: true},
		{name: "never reached", cashflows: []float64{-100, 10, 10}, ok: false},
		{name: "dips back later still first", cashflows: []float64{-10, 20, -50}, want: 1, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaybackYear(tt.cashflows)
			require.Equal(t, tt.ok, got.IsValid())
			if tt.ok {
				assert.Equal(t, tt.want, got.Value())
			}
		})
	}
}

func TestCrossoverYear(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want int
		ok   bool
	}{
		{name: "crosses", a: []float64{-100, -60, -20, 20}, b: []float64{0, -30, -60, -90}, want: 2, ok: true},
		{name: "equal is not a crossover", a: []float64{-10, -5, 0}, b: []float64{0, -5, 0}, ok: false},
		{name: "ahead from the start", a: []float64{1, 2}, b: []float64{0, 0}, want: 0, ok: true},
		{name: "never", a: []float64{-100, -90}, b: []float64{0, -10}, ok: false},
		{name: "shorter series bounds the comparison", a: []float64{-1, -1, 5}, b: []float64{0, 0}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CrossoverYear(tt.a, tt.b)
			require.Equal(t, tt.ok, got.IsValid())
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.want, got.Value())
			for y := 0; y < got.Value(); y++ {
				assert.LessOrEqual(t, tt.a[y], tt.b[y])
			}
		})
	}
}

func TestIRRRateNearMinusOne(t *testing.T) {
	// Discounted terms reach ~1e11 at the root, far beyond the raw cash flows.
	cashflows := []float64{-25000, -2323.52, -2333.2256, -2343.222368, -2353.51903904,
		-2364.1246102112, -2375.048348517536, 113.70020102693798}

	got := IRR(cashflows)
	require.True(t, got.IsValid())
	assert.InDelta(t, -0.954305, got.Value(), 1e-6)
	assert.True(t, isRoot(cashflows, got.Value(), 1e-9))
}
