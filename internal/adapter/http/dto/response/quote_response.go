package response

import (
	"time"

	"instaquote/internal/domain/entities"
	"instaquote/internal/domain/pricing"
)

type PriceBreakdownResponse struct {
	PagesTotal            float64 `json:"pagesTotal"`
	DeliverableMultiplier float64 `json:"deliverableMultiplier"`
	DeliverableLabel      string  `json:"deliverableLabel,omitempty"`
	TimelineMultiplier    float64 `json:"timelineMultiplier"`
	TimelineLabel         string  `json:"timelineLabel,omitempty"`
	TimelineETA           string  `json:"timelineEta,omitempty"`
}

// BreakdownResponse mirrors the pricing fields of the submission payload so
// the form can render a preview and submit the same shape back.
type BreakdownResponse struct {
	Pages          int                    `json:"pages"`
	Currency       string                 `json:"currency"`
	ConversionRate float64                `json:"conversionRate"`
	PricePerPage   float64                `json:"pricePerPage"`
	SubtotalBase   float64                `json:"subtotalBase"`
	Subtotal       float64                `json:"subtotal"`
	VATRate        float64                `json:"vatRate"`
	VAT            float64                `json:"vat"`
	Total          float64                `json:"total"`
	PriceBreakdown PriceBreakdownResponse `json:"priceBreakdown"`
}

func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Pages:          b.Pages,
		Currency:       b.Currency,
		ConversionRate: b.ConversionRate,
		PricePerPage:   b.PricePerPage,
		SubtotalBase:   b.SubtotalBase,
		Subtotal:       b.Subtotal,
		VATRate:        b.VATRate,
		VAT:            b.VAT,
		Total:          b.Total,
		PriceBreakdown: PriceBreakdownResponse{
			PagesTotal:            b.PagesTotal,
			DeliverableMultiplier: b.DeliverableMultiplier,
			DeliverableLabel:      b.DeliverableLabel,
			TimelineMultiplier:    b.TimelineMultiplier,
			TimelineLabel:         b.TimelineLabel,
			TimelineETA:           b.TimelineETA,
		},
	}
}

type QuoteResponse struct {
	ID          string `json:"id"`
	QuoteNumber string `json:"quoteNumber"`

	Pages       int                       `json:"pages"`
	Category    entities.CategorySnapshot `json:"category"`
	Deliverable string                    `json:"deliverable"`
	Timeline    string                    `json:"timeline"`
	BrandState  string                    `json:"brandState,omitempty"`

	Currency       string                 `json:"currency"`
	ConversionRate float64                `json:"conversionRate"`
	PricePerPage   float64                `json:"pricePerPage"`
	Subtotal       float64                `json:"subtotal"`
	VATRate        float64                `json:"vatRate"`
	VAT            float64                `json:"vat"`
	Total          float64                `json:"total"`
	PriceBreakdown PriceBreakdownResponse `json:"priceBreakdown"`

	Contact entities.ContactInfo `json:"contact"`

	Status    string    `json:"status"`
	OrderRank string    `json:"orderRank,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromInstantQuote(q entities.InstantQuote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,

		Pages:       q.Pages,
		Category:    q.Category,
		Deliverable: q.Deliverable,
		Timeline:    q.Timeline,
		BrandState:  q.BrandState,

		Currency:       q.Currency,
		ConversionRate: q.ConversionRate,
		PricePerPage:   q.PricePerPage,
		Subtotal:       q.Subtotal,
		VATRate:        q.VATRate,
		VAT:            q.VAT,
		Total:          q.Total,
		PriceBreakdown: PriceBreakdownResponse{
			PagesTotal:            q.Breakdown.PagesTotal,
			DeliverableMultiplier: q.Breakdown.DeliverableMultiplier,
			DeliverableLabel:      q.Breakdown.DeliverableLabel,
			TimelineMultiplier:    q.Breakdown.TimelineMultiplier,
			TimelineLabel:         q.Breakdown.TimelineLabel,
			TimelineETA:           q.Breakdown.TimelineETA,
		},

		Contact: q.Contact,

		Status:    string(q.Status),
		OrderRank: q.OrderRank,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromInstantQuotes(quotes []entities.InstantQuote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromInstantQuote(q))
	}
	return out
}
