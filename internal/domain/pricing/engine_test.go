package pricing

import (
	"math"
	"testing"
)

func testTable() RateTable {
	return DefaultRateTable()
}

func TestComputeBreakdown_FloorScenario(t *testing.T) {
	// 3 pages x 150/page, multipliers 1.0, VAT 7.5%, floor 500 USD.
	table := testTable()
	sel := Selection{Pages: 3, Category: "Landing", Deliverable: "design-build", Timeline: "standard", Currency: "USD"}

	bd := ComputeBreakdown(table, sel)

	if bd.PagesTotal != 450 {
		t.Fatalf("expected pagesTotal 450, got %v", bd.PagesTotal)
	}
	if bd.SubtotalBase != 450 || bd.Subtotal != 450 {
		t.Fatalf("expected subtotal 450, got base=%v converted=%v", bd.SubtotalBase, bd.Subtotal)
	}
	if bd.VAT != 33.75 {
		t.Fatalf("expected vat 33.75, got %v", bd.VAT)
	}
	// Raw total 483.75 is under the 500 floor.
	if bd.Total != 500 {
		t.Fatalf("expected floored total 500, got %v", bd.Total)
	}
}

func TestComputeBreakdown_AboveFloorScenario(t *testing.T) {
	table := testTable()
	sel := Selection{Pages: 10, Category: "Landing", Deliverable: "design-build", Timeline: "standard", Currency: "USD"}

	bd := ComputeBreakdown(table, sel)

	if bd.PagesTotal != 1500 {
		t.Fatalf("expected pagesTotal 1500, got %v", bd.PagesTotal)
	}
	if bd.VAT != 112.5 {
		t.Fatalf("expected vat 112.5, got %v", bd.VAT)
	}
	if bd.Total != 1612.5 {
		t.Fatalf("expected total 1612.5, got %v", bd.Total)
	}
}

func TestComputeBreakdown_PagesLinearityAndMonotonicity(t *testing.T) {
	table := testTable()

	base := ComputeBreakdown(table, Selection{Pages: 1, Category: "Corporate", Deliverable: "fully-managed", Timeline: "rush", Currency: "USD"})

	prevTotal := 0.0
	for pages := 1; pages <= 50; pages++ {
		bd := ComputeBreakdown(table, Selection{Pages: pages, Category: "Corporate", Deliverable: "fully-managed", Timeline: "rush", Currency: "USD"})

		want := float64(pages) * base.PagesTotal
		if math.Abs(bd.PagesTotal-want) > 1e-9 {
			t.Fatalf("pagesTotal not linear at pages=%d: got %v want %v", pages, bd.PagesTotal, want)
		}
		if bd.Total < prevTotal {
			t.Fatalf("total decreased at pages=%d: %v < %v", pages, bd.Total, prevTotal)
		}
		prevTotal = bd.Total
	}
}

func TestComputeBreakdown_FloorHolds(t *testing.T) {
	// total >= minimumPrice * rate for any combination of multipliers >= 0.
	table := testTable()
	table.Deliverables = []Deliverable{{Key: "zero", Label: "Zero", Multiplier: 0}}
	table.Timelines = []Timeline{{Key: "zero", Label: "Zero", Multiplier: 0}}

	for _, currency := range []string{"USD", "NGN"} {
		bd := ComputeBreakdown(table, Selection{Pages: 5, Category: "Ecommerce", Deliverable: "zero", Timeline: "zero", Currency: currency})

		floor := table.MinimumPrice * table.ResolveConversionRate(currency)
		if bd.Total < floor {
			t.Fatalf("floor violated for %s: total=%v floor=%v", currency, bd.Total, floor)
		}
		if bd.Total != floor {
			t.Fatalf("zero multipliers should land exactly on the floor, got %v want %v", bd.Total, floor)
		}
	}
}

func TestComputeBreakdown_IdentityConversion(t *testing.T) {
	table := testTable()
	bd := ComputeBreakdown(table, Selection{Pages: 4, Category: "Business", Deliverable: "design-only", Timeline: "fast", Currency: table.BaseCurrency})

	if bd.ConversionRate != 1 {
		t.Fatalf("expected identity rate, got %v", bd.ConversionRate)
	}
	if bd.Subtotal != bd.SubtotalBase {
		t.Fatalf("expected subtotalConverted == subtotalBase, got %v != %v", bd.Subtotal, bd.SubtotalBase)
	}
}

func TestComputeBreakdown_CurrencyConversion(t *testing.T) {
	table := testTable()
	usd := ComputeBreakdown(table, Selection{Pages: 10, Category: "Landing", Deliverable: "design-build", Timeline: "standard", Currency: "USD"})
	ngn := ComputeBreakdown(table, Selection{Pages: 10, Category: "Landing", Deliverable: "design-build", Timeline: "standard", Currency: "NGN"})

	if ngn.ConversionRate != 1300 {
		t.Fatalf("expected rate 1300, got %v", ngn.ConversionRate)
	}
	if ngn.Subtotal != usd.Subtotal*1300 {
		t.Fatalf("expected converted subtotal %v, got %v", usd.Subtotal*1300, ngn.Subtotal)
	}
}

func TestComputeBreakdown_MissingConversionPairDefaultsToIdentity(t *testing.T) {
	// Flagged oversight in the source system, kept deliberately: an unknown
	// currency silently prices at base-currency magnitude.
	table := testTable()
	bd := ComputeBreakdown(table, Selection{Pages: 2, Category: "Landing", Deliverable: "design-build", Timeline: "standard", Currency: "EUR"})

	if bd.ConversionRate != 1 {
		t.Fatalf("expected fallback rate 1, got %v", bd.ConversionRate)
	}
	if bd.Subtotal != bd.SubtotalBase {
		t.Fatalf("expected unconverted subtotal, got %v != %v", bd.Subtotal, bd.SubtotalBase)
	}
}

func TestComputeBreakdown_FallbackResolution(t *testing.T) {
	table := testTable()

	t.Run("unknown refs fall back to first entries", func(t *testing.T) {
		bd := ComputeBreakdown(table, Selection{Pages: 1, Category: "nope", Deliverable: "nope", Timeline: "nope", Currency: "USD"})

		if bd.CategoryTitle != "Landing" {
			t.Fatalf("expected first category, got %q", bd.CategoryTitle)
		}
		if bd.DeliverableKey != "design-only" || bd.DeliverableMultiplier != 0.8 {
			t.Fatalf("expected first deliverable, got %q (%v)", bd.DeliverableKey, bd.DeliverableMultiplier)
		}
		if bd.TimelineKey != "standard" {
			t.Fatalf("expected first timeline, got %q", bd.TimelineKey)
		}
	})

	t.Run("fallback is idempotent", func(t *testing.T) {
		sel := Selection{Pages: 7, Category: "bogus", Deliverable: "bogus", Timeline: "bogus", Currency: "USD"}
		first := ComputeBreakdown(table, sel)
		second := ComputeBreakdown(table, sel)
		if first != second {
			t.Fatalf("repeated calls diverged: %+v vs %+v", first, second)
		}
	})

	t.Run("category resolves by slug", func(t *testing.T) {
		byTitle := ComputeBreakdown(table, Selection{Pages: 1, Category: "Ecommerce", Deliverable: "design-build", Timeline: "standard", Currency: "USD"})
		bySlug := ComputeBreakdown(table, Selection{Pages: 1, Category: "ecommerce", Deliverable: "design-build", Timeline: "standard", Currency: "USD"})
		if byTitle.PricePerPage != bySlug.PricePerPage {
			t.Fatalf("slug resolution mismatch: %v vs %v", byTitle.PricePerPage, bySlug.PricePerPage)
		}
	})
}

func TestComputeBreakdown_EmptyConfiguration(t *testing.T) {
	// Empty selection lists still yield a deterministic result: per-page
	// rate 0, identity multipliers.
	table := RateTable{BaseCurrency: "USD", VATRate: 7.5}
	bd := ComputeBreakdown(table, Selection{Pages: 3, Category: "x", Deliverable: "y", Timeline: "z", Currency: "USD"})

	if bd.PricePerPage != 0 || bd.PagesTotal != 0 {
		t.Fatalf("expected zero pricing, got perPage=%v pagesTotal=%v", bd.PricePerPage, bd.PagesTotal)
	}
	if bd.DeliverableMultiplier != 1 || bd.TimelineMultiplier != 1 {
		t.Fatalf("expected identity multipliers, got %v and %v", bd.DeliverableMultiplier, bd.TimelineMultiplier)
	}
	if bd.Total != 0 {
		t.Fatalf("expected zero total with zero floor, got %v", bd.Total)
	}
}

func TestComputeBreakdown_PagesCoercion(t *testing.T) {
	table := testTable()
	for _, pages := range []int{0, -5} {
		bd := ComputeBreakdown(table, Selection{Pages: pages, Category: "Landing", Deliverable: "design-build", Timeline: "standard", Currency: "USD"})
		if bd.Pages != 1 {
			t.Fatalf("expected pages coerced to 1, got %d for input %d", bd.Pages, pages)
		}
		if bd.PagesTotal != 150 {
			t.Fatalf("expected single-page total 150, got %v", bd.PagesTotal)
		}
	}
}

func TestComputeBreakdown_NoRounding(t *testing.T) {
	// 1 page x 150, deliverable 0.8, timeline 1.15 => 138 * 1.15 = 158.69999...
	// The engine must keep whatever float64 produces, untouched.
	table := testTable()
	bd := ComputeBreakdown(table, Selection{Pages: 1, Category: "Landing", Deliverable: "design-only", Timeline: "fast", Currency: "USD"})

	want := 1.0 * 150 * 0.8 * 1.15
	if bd.SubtotalBase != want {
		t.Fatalf("expected raw float subtotal %v, got %v", want, bd.SubtotalBase)
	}
}
