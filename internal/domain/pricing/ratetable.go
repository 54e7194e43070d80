package pricing

import (
	"fmt"
	"strings"
)

// RateTable is the pricing configuration the quote engine computes from.
//
// It is an immutable snapshot: the content store supplies one per request and
// nothing here mutates it. All per-page prices and the minimum floor are
// denominated in BaseCurrency.

type Slug struct {
	Current string `json:"current"`
}

type ConversionRate struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

type Category struct {
	Title        string  `json:"title"`
	PricePerPage float64 `json:"pricePerPage"`
	Slug         Slug    `json:"slug"`
	Description  string  `json:"description,omitempty"`
}

type Deliverable struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description,omitempty"`
}

type Timeline struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	ETA        string  `json:"eta,omitempty"`
}

type RateTable struct {
	BaseCurrency    string           `json:"baseCurrency"`
	CurrencyOptions []string         `json:"currencyOptions"`
	ConversionRates []ConversionRate `json:"conversionRates"`
	VATRate         float64          `json:"vatRate"`
	MinimumPrice    float64          `json:"minimumPrice"`
	Categories      []Category       `json:"categories"`
	Deliverables    []Deliverable    `json:"deliverables"`
	Timelines       []Timeline       `json:"timelines"`
}

// DefaultRateTable returns the built-in configuration used when the content
// store is unreachable or has no published settings document.
func DefaultRateTable() RateTable {
	return RateTable{
		BaseCurrency:    "USD",
		CurrencyOptions: []string{"USD", "NGN"},
		ConversionRates: []ConversionRate{
			{From: "USD", To: "NGN", Rate: 1300},
		},
		VATRate:      7.5,
		MinimumPrice: 500,
		Categories: []Category{
			{Title: "Landing", PricePerPage: 150, Slug: Slug{Current: "landing"}},
			{Title: "Corporate", PricePerPage: 250, Slug: Slug{Current: "corporate"}},
			{Title: "Ecommerce", PricePerPage: 400, Slug: Slug{Current: "ecommerce"}},
			{Title: "eLearning", PricePerPage: 350, Slug: Slug{Current: "elearning"}},
			{Title: "Business", PricePerPage: 300, Slug: Slug{Current: "business"}},
		},
		Deliverables: []Deliverable{
			{Key: "design-only", Label: "Design only", Multiplier: 0.8},
			{Key: "design-build", Label: "Design & Build", Multiplier: 1.0},
			{Key: "fully-managed", Label: "Fully managed", Multiplier: 1.25},
		},
		Timelines: []Timeline{
			{Key: "standard", Label: "Standard (6-8 wks)", Multiplier: 1.0, ETA: "6-8 weeks"},
			{Key: "fast", Label: "Fast (3-4 wks)", Multiplier: 1.15, ETA: "3-4 weeks"},
			{Key: "rush", Label: "Rush (1-2 wks)", Multiplier: 1.35, ETA: "1-2 weeks"},
		},
	}
}

// ResolveCategory matches by exact title first, then by slug. Unknown refs
// fall back to the first configured category; an empty list yields a zero
// category (per-page rate 0).
func (t RateTable) ResolveCategory(ref string) Category {
	for _, c := range t.Categories {
		if c.Title == ref || c.Slug.Current == ref {
			return c
		}
	}
	if len(t.Categories) > 0 {
		return t.Categories[0]
	}
	return Category{}
}

// ResolveDeliverable matches by exact key, falls back to the first entry, and
// yields the identity multiplier when no deliverables are configured.
func (t RateTable) ResolveDeliverable(key string) Deliverable {
	for _, d := range t.Deliverables {
		if d.Key == key {
			return d
		}
	}
	if len(t.Deliverables) > 0 {
		return t.Deliverables[0]
	}
	return Deliverable{Multiplier: 1}
}

// ResolveTimeline matches by exact key, falls back to the first entry, and
// yields the identity multiplier when no timelines are configured.
func (t RateTable) ResolveTimeline(key string) Timeline {
	for _, tl := range t.Timelines {
		if tl.Key == key {
			return tl
		}
	}
	if len(t.Timelines) > 0 {
		return t.Timelines[0]
	}
	return Timeline{Multiplier: 1}
}

// ResolveConversionRate returns the rate converting one unit of BaseCurrency
// into the given currency. Identity when currency equals the base. A missing
// pair also resolves to 1: the selected currency is silently treated as equal
// in magnitude to the base rather than failing the calculation. No inverse or
// multi-hop lookup is attempted.
func (t RateTable) ResolveConversionRate(currency string) float64 {
	if currency == t.BaseCurrency {
		return 1
	}
	for _, r := range t.ConversionRates {
		if r.From == t.BaseCurrency && r.To == currency {
			return r.Rate
		}
	}
	return 1
}

// HasCategory reports whether ref resolves to a configured category without
// falling back. Used by strict submission validation; the engine itself never
// rejects.
func (t RateTable) HasCategory(ref string) bool {
	for _, c := range t.Categories {
		if c.Title == ref || c.Slug.Current == ref {
			return true
		}
	}
	return false
}

func (t RateTable) HasDeliverable(key string) bool {
	for _, d := range t.Deliverables {
		if d.Key == key {
			return true
		}
	}
	return false
}

func (t RateTable) HasTimeline(key string) bool {
	for _, tl := range t.Timelines {
		if tl.Key == key {
			return true
		}
	}
	return false
}

func (t RateTable) HasCurrency(code string) bool {
	for _, c := range t.CurrencyOptions {
		if c == code {
			return true
		}
	}
	return false
}

// Validate reports configuration errors that the engine does not defend
// against (negative rates and multipliers). The caller decides whether to
// serve the table anyway; the engine will still compute deterministically.
func (t RateTable) Validate() error {
	var problems []string
	if t.VATRate < 0 || t.VATRate > 100 {
		problems = append(problems, fmt.Sprintf("vatRate %v outside [0,100]", t.VATRate))
	}
	if t.MinimumPrice < 0 {
		problems = append(problems, fmt.Sprintf("minimumPrice %v is negative", t.MinimumPrice))
	}
	for _, c := range t.Categories {
		if c.PricePerPage < 0 {
			problems = append(problems, fmt.Sprintf("category %q has negative pricePerPage %v", c.Title, c.PricePerPage))
		}
	}
	for _, d := range t.Deliverables {
		if d.Multiplier < 0 {
			problems = append(problems, fmt.Sprintf("deliverable %q has negative multiplier %v", d.Key, d.Multiplier))
		}
	}
	for _, tl := range t.Timelines {
		if tl.Multiplier < 0 {
			problems = append(problems, fmt.Sprintf("timeline %q has negative multiplier %v", tl.Key, tl.Multiplier))
		}
	}
	for _, r := range t.ConversionRates {
		if r.Rate < 0 {
			problems = append(problems, fmt.Sprintf("conversion %s->%s has negative rate %v", r.From, r.To, r.Rate))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid rate table: %s", strings.Join(problems, "; "))
}
