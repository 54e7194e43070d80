package request

import (
	"encoding/json"
	"testing"

	"instaquote/internal/domain/entities"
)

func TestQuoteRequest_SelectionAndContact(t *testing.T) {
	r := QuoteRequest{
		Pages:        3,
		Category:     " Landing ",
		Deliverable:  " design-build ",
		Timeline:     "standard",
		Currency:     " USD ",
		Email:        " jane@example.com ",
		CustomerName: " Jane ",
		Phone:        " +2348000000000 ",
		Company:      "Acme",
	}

	sel := r.Selection()
	if sel.Pages != 3 || sel.Category != "Landing" || sel.Deliverable != "design-build" || sel.Currency != "USD" {
		t.Fatalf("unexpected selection: %+v", sel)
	}

	contact := r.Contact()
	want := entities.ContactInfo{Email: "jane@example.com", CustomerName: "Jane", Phone: "+2348000000000", Company: "Acme"}
	if contact != want {
		t.Fatalf("unexpected contact: %+v", contact)
	}
}

func TestQuoteRequest_UnmarshalsFormPayload(t *testing.T) {
	// The exact shape the marketing site's form posts, client-side figures
	// included.
	payload := `{
		"pages": 5,
		"category": "Corporate",
		"deliverable": "fully-managed",
		"timeline": "rush",
		"currency": "NGN",
		"brandState": "I have no brand",
		"email": "jane@example.com",
		"conversionRate": 1300,
		"pricePerPage": 250,
		"subtotal": 2742187.5,
		"vat": 205664.0625,
		"total": 2947851.5625,
		"priceBreakdown": {
			"pagesTotal": 1250,
			"deliverableMultiplier": 1.25,
			"timelineMultiplier": 1.35
		}
	}`

	var r QuoteRequest
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Pages != 5 || r.Currency != "NGN" || r.BrandState != "I have no brand" {
		t.Fatalf("unexpected request: %+v", r)
	}
	if r.ConversionRate != 1300 || r.PriceBreakdown.DeliverableMultiplier != 1.25 {
		t.Fatalf("client figures not captured: %+v", r.ClientBreakdown)
	}
}

func TestStatusRequest_ResolveStatus(t *testing.T) {
	r := StatusRequest{Status: " Accepted "}
	if got := r.ResolveStatus(); got != entities.QuoteStatusAccepted {
		t.Fatalf("expected accepted, got %q", got)
	}
}

func TestRankRequest_ResolveRank(t *testing.T) {
	r := RankRequest{OrderRank: " 0|hzzzzz: "}
	if got := r.ResolveRank(); got != "0|hzzzzz:" {
		t.Fatalf("expected trimmed rank, got %q", got)
	}
}
