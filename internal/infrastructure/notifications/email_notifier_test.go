package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"instaquote/internal/domain/entities"
)

func sampleQuote() entities.InstantQuote {
	return entities.InstantQuote{
		ID:          "q-1",
		QuoteNumber: "Q-20260829-ABCDEF01",
		Pages:       3,
		Category:    entities.CategorySnapshot{Title: "Landing", Slug: "landing", PricePerPage: 150},
		Currency:    "USD",
		Subtotal:    450,
		VATRate:     7.5,
		VAT:         33.75,
		Total:       500,
		Breakdown: entities.PriceBreakdownSnapshot{
			DeliverableLabel: "Design & Build",
			TimelineLabel:    "Standard (6-8 wks)",
			TimelineETA:      "6-8 weeks",
		},
		Contact: entities.ContactInfo{Email: "jane@example.com"},
		Status:  entities.QuoteStatusDraft,
	}
}

func TestEmailNotifier_NotifyQuoteCreated(t *testing.T) {
	t.Run("posts the rendered message", func(t *testing.T) {
		var got mailMessage
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer key-1" {
				t.Fatalf("expected bearer key, got %q", auth)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		n := &EmailNotifier{apiURL: srv.URL, apiKey: "key-1", from: "quotes@site.test", operator: "ops@site.test", client: srv.Client()}
		if err := n.NotifyQuoteCreated(context.Background(), sampleQuote()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.From != "quotes@site.test" {
			t.Fatalf("unexpected sender: %q", got.From)
		}
		if len(got.To) != 2 || got.To[0] != "jane@example.com" || got.To[1] != "ops@site.test" {
			t.Fatalf("unexpected recipients: %v", got.To)
		}
		if !strings.Contains(got.Subject, "Q-20260829-ABCDEF01") {
			t.Fatalf("unexpected subject: %q", got.Subject)
		}
		// Amounts are presented rounded to two decimals; the record itself
		// keeps full precision.
		if !strings.Contains(got.Text, "Total: USD 500.00") || !strings.Contains(got.Text, "VAT (7.5%): USD 33.75") {
			t.Fatalf("unexpected body:\n%s", got.Text)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		n := &EmailNotifier{apiURL: srv.URL, from: "quotes@site.test", client: srv.Client()}
		if err := n.NotifyQuoteCreated(context.Background(), sampleQuote()); err == nil {
			t.Fatalf("expected error on 502")
		}
	})

	t.Run("mock mode sends nothing", func(t *testing.T) {
		n := &EmailNotifier{mockMode: true}
		if err := n.NotifyQuoteCreated(context.Background(), sampleQuote()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNewEmailNotifierFromEnv(t *testing.T) {
	t.Run("no url enables mock mode", func(t *testing.T) {
		t.Setenv("MAIL_API_URL", "")
		t.Setenv("MAIL_MOCK", "")
		n := NewEmailNotifierFromEnv()
		if !n.mockMode {
			t.Fatalf("expected mock mode without MAIL_API_URL")
		}
	})

	t.Run("defaults the sender address", func(t *testing.T) {
		t.Setenv("MAIL_API_URL", "https://api.resend.test/emails")
		t.Setenv("MAIL_MOCK", "")
		t.Setenv("MAIL_FROM", "")
		n := NewEmailNotifierFromEnv()
		if n.mockMode || n.from != "quotes@localhost" {
			t.Fatalf("unexpected notifier: %+v", n)
		}
	})
}
