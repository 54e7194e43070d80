package request

import (
	"strings"

	"instaquote/internal/domain/entities"
	"instaquote/internal/domain/pricing"
)

// ClientBreakdown carries the figures the browser computed while the form was
// live. They are accepted for wire compatibility with the marketing site but
// never trusted: the use case recomputes the breakdown from the current rate
// table and persists its own numbers.
type ClientBreakdown struct {
	ConversionRate float64 `json:"conversionRate"`
	PricePerPage   float64 `json:"pricePerPage"`
	Subtotal       float64 `json:"subtotal"`
	VAT            float64 `json:"vat"`
	Total          float64 `json:"total"`

	PriceBreakdown struct {
		PagesTotal            float64 `json:"pagesTotal"`
		DeliverableMultiplier float64 `json:"deliverableMultiplier"`
		TimelineMultiplier    float64 `json:"timelineMultiplier"`
	} `json:"priceBreakdown"`
}

// QuoteRequest is the submission payload posted by the quote form.
type QuoteRequest struct {
	Pages       int    `json:"pages"`
	Category    string `json:"category" binding:"required"`
	Deliverable string `json:"deliverable" binding:"required"`
	Timeline    string `json:"timeline" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	BrandState  string `json:"brandState"`

	Email        string `json:"email" binding:"required"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Notes        string `json:"notes"`

	ClientBreakdown
}

// Selection extracts the pricing selection for the engine.
func (r QuoteRequest) Selection() pricing.Selection {
	return pricing.Selection{
		Pages:       r.Pages,
		Category:    strings.TrimSpace(r.Category),
		Deliverable: strings.TrimSpace(r.Deliverable),
		Timeline:    strings.TrimSpace(r.Timeline),
		Currency:    strings.TrimSpace(r.Currency),
	}
}

// Contact extracts the submitter's contact fields.
func (r QuoteRequest) Contact() entities.ContactInfo {
	return entities.ContactInfo{
		Email:        strings.TrimSpace(r.Email),
		CustomerName: strings.TrimSpace(r.CustomerName),
		Phone:        strings.TrimSpace(r.Phone),
		Company:      strings.TrimSpace(r.Company),
		Notes:        strings.TrimSpace(r.Notes),
	}
}

// PreviewRequest is the live-recalculation payload: the selection only, no
// contact fields and no binding constraints since the engine coerces.
type PreviewRequest struct {
	Pages       int    `json:"pages"`
	Category    string `json:"category"`
	Deliverable string `json:"deliverable"`
	Timeline    string `json:"timeline"`
	Currency    string `json:"currency"`
}

func (r PreviewRequest) Selection() pricing.Selection {
	return pricing.Selection{
		Pages:       r.Pages,
		Category:    strings.TrimSpace(r.Category),
		Deliverable: strings.TrimSpace(r.Deliverable),
		Timeline:    strings.TrimSpace(r.Timeline),
		Currency:    strings.TrimSpace(r.Currency),
	}
}

// StatusRequest is the back-office status patch payload.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}

// RankRequest is the admin manual-sort patch payload.
type RankRequest struct {
	OrderRank string `json:"orderRank" binding:"required"`
}

func (r RankRequest) ResolveRank() string {
	return strings.TrimSpace(r.OrderRank)
}
