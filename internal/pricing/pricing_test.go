package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuoteTiers(t *testing.T) {
	base := decimal.NewFromInt(60)

	cases := []struct {
		days int
		want string
	}{
		{1, "60"},
		{6, "360"},
		{7, "378"},     // 10% off 420
		{29, "1566"},   // 10% off 1740
		{30, "1440"},   // 20% off 1800
		{31, "1488"},   // 20% off 1860
	}
	for _, c := range cases {
		got := Quote(base, c.days)
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Fatalf("Quote(60, %d) = %s, want %s", c.days, got, c.want)
		}
	}
}

func TestQuoteWeeklyBoundaryNoCliff(t *testing.T) {
	base := decimal.NewFromInt(60)
	if !Quote(base, 6).LessThan(Quote(base, 7)) {
		t.Fatalf("expected 7-day total above 6-day total")
	}
}

func TestQuoteMonotonicWithinTiers(t *testing.T) {
	base := decimal.RequireFromString("99.50")
	for _, tier := range [][2]int{{1, 6}, {7, 29}, {30, 60}} {
		for d := tier[0] + 1; d <= tier[1]; d++ {
			if !Quote(base, d-1).LessThan(Quote(base, d)) {
				t.Fatalf("expected Quote(%s, %d) < Quote(%s, %d)", base, d-1, base, d)
			}
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		days int
		want int
	}{
		{1, 0}, {6, 0}, {7, 10}, {29, 10}, {30, 20}, {90, 20},
	}
	for _, c := range cases {
		if got := DiscountPercent(c.days); got != c.want {
			t.Fatalf("DiscountPercent(%d) = %d, want %d", c.days, got, c.want)
		}
	}
}
