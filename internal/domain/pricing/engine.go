package pricing

// Selection is one user's quote input. It lives only for the duration of a
// single calculation; contact fields are handled at the submission boundary.
type Selection struct {
	Pages       int    `json:"pages"`
	Category    string `json:"category"`
	Deliverable string `json:"deliverable"`
	Timeline    string `json:"timeline"`
	Currency    string `json:"currency"`
}

// Breakdown is the derived pricing for one selection. Pure value object:
// recomputed on every change, no identity, no rounding applied.
//
// SubtotalBase and PagesTotal are in the table's base currency; Subtotal, VAT
// and Total are in the selected Currency.
type Breakdown struct {
	Pages          int     `json:"pages"`
	Currency       string  `json:"currency"`
	ConversionRate float64 `json:"conversionRate"`

	CategoryTitle string  `json:"categoryTitle"`
	CategorySlug  string  `json:"categorySlug,omitempty"`
	PricePerPage  float64 `json:"pricePerPage"`
	PagesTotal    float64 `json:"pagesTotal"`

	DeliverableKey        string  `json:"deliverableKey,omitempty"`
	DeliverableLabel      string  `json:"deliverableLabel,omitempty"`
	DeliverableMultiplier float64 `json:"deliverableMultiplier"`

	TimelineKey        string  `json:"timelineKey,omitempty"`
	TimelineLabel      string  `json:"timelineLabel,omitempty"`
	TimelineMultiplier float64 `json:"timelineMultiplier"`
	TimelineETA        string  `json:"timelineEta,omitempty"`

	SubtotalBase float64 `json:"subtotalBase"`
	Subtotal     float64 `json:"subtotal"`
	VATRate      float64 `json:"vatRate"`
	VAT          float64 `json:"vat"`
	Total        float64 `json:"total"`
}

// ComputeBreakdown maps a rate table and a selection to a price breakdown.
//
// Pure, total and deterministic: every input is coerced or resolved via the
// table's fallback rules, so the calculation always succeeds with a
// best-effort result. Configuration gaps are never surfaced as errors.
func ComputeBreakdown(t RateTable, sel Selection) Breakdown {
	pages := sel.Pages
	if pages < 1 {
		pages = 1
	}

	category := t.ResolveCategory(sel.Category)
	deliverable := t.ResolveDeliverable(sel.Deliverable)
	timeline := t.ResolveTimeline(sel.Timeline)
	rate := t.ResolveConversionRate(sel.Currency)

	pagesTotal := float64(pages) * category.PricePerPage
	subtotalBase := pagesTotal * deliverable.Multiplier * timeline.Multiplier
	subtotal := subtotalBase * rate
	vat := subtotal * t.VATRate / 100

	total := subtotal + vat
	// The floor is stated in base currency; convert it with the same rate
	// before comparing.
	if floor := t.MinimumPrice * rate; total < floor {
		total = floor
	}

	return Breakdown{
		Pages:          pages,
		Currency:       sel.Currency,
		ConversionRate: rate,

		CategoryTitle: category.Title,
		CategorySlug:  category.Slug.Current,
		PricePerPage:  category.PricePerPage,
		PagesTotal:    pagesTotal,

		DeliverableKey:        deliverable.Key,
		DeliverableLabel:      deliverable.Label,
		DeliverableMultiplier: deliverable.Multiplier,

		TimelineKey:        timeline.Key,
		TimelineLabel:      timeline.Label,
		TimelineMultiplier: timeline.Multiplier,
		TimelineETA:        timeline.ETA,

		SubtotalBase: subtotalBase,
		Subtotal:     subtotal,
		VATRate:      t.VATRate,
		VAT:          vat,
		Total:        total,
	}
}
