package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanityClient_RateTable(t *testing.T) {
	t.Run("published document wins, absent fields default", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("query") == "" {
				t.Fatalf("expected GROQ query parameter")
			}
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Fatalf("expected bearer token, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":{
				"vatRate": 10,
				"categories": [{"title":"Landing","pricePerPage":200,"slug":{"current":"landing"}}],
				"deliverables": [{"key":"design-only","label":"Design only","multiplier":0.8}],
				"timelines": [{"key":"standard","label":"Standard","multiplier":1,"eta":"6-8 weeks"}]
			}}`))
		}))
		defer srv.Close()

		c := &SanityClient{queryURL: srv.URL, token: "tok-1", client: srv.Client()}
		table, err := c.RateTable(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.VATRate != 10 {
			t.Fatalf("expected published vatRate 10, got %v", table.VATRate)
		}
		if len(table.Categories) != 1 || table.Categories[0].PricePerPage != 200 {
			t.Fatalf("unexpected categories: %+v", table.Categories)
		}
		// Absent scalars fall back to the built-in defaults.
		if table.BaseCurrency != "USD" || table.MinimumPrice != 500 {
			t.Fatalf("defaults not applied: %+v", table)
		}
		if len(table.ConversionRates) == 0 {
			t.Fatalf("expected default conversion rates")
		}
	})

	t.Run("zero vat kept distinct from absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":{"vatRate":0,"minimumPrice":0}}`))
		}))
		defer srv.Close()

		c := &SanityClient{queryURL: srv.URL, client: srv.Client()}
		table, err := c.RateTable(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.VATRate != 0 || table.MinimumPrice != 0 {
			t.Fatalf("explicit zeros overwritten: %+v", table)
		}
	})

	t.Run("null result serves defaults", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":null}`))
		}))
		defer srv.Close()

		c := &SanityClient{queryURL: srv.URL, client: srv.Client()}
		table, err := c.RateTable(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.BaseCurrency != "USD" || len(table.Categories) != 5 {
			t.Fatalf("expected built-in defaults, got %+v", table)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := &SanityClient{queryURL: srv.URL, client: srv.Client()}
		if _, err := c.RateTable(context.Background()); err == nil {
			t.Fatalf("expected error on 500")
		}
	})

	t.Run("mock mode never touches the network", func(t *testing.T) {
		c := &SanityClient{mockMode: true}
		table, err := c.RateTable(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.BaseCurrency != "USD" {
			t.Fatalf("expected defaults, got %+v", table)
		}
	})
}

func TestNewSanityClientFromEnv(t *testing.T) {
	t.Run("no url enables mock mode", func(t *testing.T) {
		t.Setenv("CONTENT_API_URL", "")
		t.Setenv("CONTENT_MOCK", "")
		c := NewSanityClientFromEnv()
		if !c.mockMode {
			t.Fatalf("expected mock mode without CONTENT_API_URL")
		}
	})

	t.Run("explicit mock wins over url", func(t *testing.T) {
		t.Setenv("CONTENT_API_URL", "https://example.test/query")
		t.Setenv("CONTENT_MOCK", "true")
		c := NewSanityClientFromEnv()
		if !c.mockMode {
			t.Fatalf("expected mock mode with CONTENT_MOCK=true")
		}
	})

	t.Run("url configures a live client", func(t *testing.T) {
		t.Setenv("CONTENT_API_URL", "https://example.test/query")
		t.Setenv("CONTENT_MOCK", "")
		c := NewSanityClientFromEnv()
		if c.mockMode || c.queryURL != "https://example.test/query" {
			t.Fatalf("unexpected client: %+v", c)
		}
	})
}
