package entities

import "time"

// QuoteStatus represents the lifecycle of an instant quote.
//
// Domain notes:
//   - The quote-service is the source of truth for quote records.
//   - A quote is created as draft by the submission flow; later transitions
//     (sent/viewed/accepted/rejected/expired) are driven by the back-office.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// ValidQuoteStatus reports whether s is a known lifecycle value.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed,
		QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// CategorySnapshot freezes the selected category at quote time so later
// rate-table edits never change an existing quote.
type CategorySnapshot struct {
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	PricePerPage float64 `json:"pricePerPage"`
}

// PriceBreakdownSnapshot is the grouped breakdown sub-object of the record.
type PriceBreakdownSnapshot struct {
	PagesTotal            float64 `json:"pagesTotal"`
	DeliverableMultiplier float64 `json:"deliverableMultiplier"`
	DeliverableLabel      string  `json:"deliverableLabel,omitempty"`
	TimelineMultiplier    float64 `json:"timelineMultiplier"`
	TimelineLabel         string  `json:"timelineLabel,omitempty"`
	TimelineETA           string  `json:"timelineEta,omitempty"`
}

// ContactInfo groups the submitter's contact fields.
type ContactInfo struct {
	Email        string `json:"email"`
	CustomerName string `json:"customerName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Company      string `json:"company,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// InstantQuote is the quote record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Monetary representation:
//   - All amounts are full-precision float64; rounding is a display concern.
//   - PricePerPage and the minimum floor are denominated in the rate table's
//     base currency; Subtotal/VAT/Total are in the selected Currency.

type InstantQuote struct {
	ID          string `json:"id"`
	QuoteNumber string `json:"quoteNumber"`

	Pages       int              `json:"pages"`
	Category    CategorySnapshot `json:"category"`
	Deliverable string           `json:"deliverable"`
	Timeline    string           `json:"timeline"`
	BrandState  string           `json:"brandState,omitempty"`

	Currency       string                 `json:"currency"`
	ConversionRate float64                `json:"conversionRate"`
	PricePerPage   float64                `json:"pricePerPage"`
	Subtotal       float64                `json:"subtotal"`
	VATRate        float64                `json:"vatRate"`
	VAT            float64                `json:"vat"`
	Total          float64                `json:"total"`
	Breakdown      PriceBreakdownSnapshot `json:"priceBreakdown"`

	Contact ContactInfo `json:"contact"`

	Status    QuoteStatus `json:"status"`
	OrderRank string      `json:"orderRank,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
