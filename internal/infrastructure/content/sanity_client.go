package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"instaquote/internal/domain/pricing"
	"instaquote/internal/usecase/interfaces"
)

// quoteSettingsQuery is the GROQ projection of the quoteSettings document the
// Studio publishes. The field shape matches pricing.RateTable's JSON tags.
const quoteSettingsQuery = `*[_type == "quoteSettings"][0]{
  currencyOptions,
  conversionRates[]{from, to, rate},
  vatRate,
  minimumPrice,
  baseCurrency,
  categories[]{title, pricePerPage, slug, description},
  deliverables[]{key, label, multiplier, description},
  timelines[]{key, label, multiplier, eta}
}`

const defaultRequestTimeout = 10 * time.Second

// SanityClient fetches the quote settings from the content store's query API.
//
// The table is re-fetched on every call (the store is the source of truth and
// editors change rates without redeploys). Any failure degrades to the
// built-in defaults at the use-case layer; this client never caches.

type SanityClient struct {
	queryURL string
	token    string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IRateTableProvider = (*SanityClient)(nil)

// NewSanityClientFromEnv builds the client from environment variables:
//   - CONTENT_API_URL: full query endpoint, e.g.
//     https://<project>.apicdn.sanity.io/v2024-01-01/data/query/production
//   - CONTENT_API_TOKEN: optional bearer token for private datasets
//   - CONTENT_MOCK: serve the built-in defaults without fetching
//
// A missing URL also enables mock mode so local runs work with no content
// store at all.
func NewSanityClientFromEnv() *SanityClient {
	if isContentMockEnabled() {
		log.Printf("[content][client] mock mode enabled; serving built-in rate table")
		return &SanityClient{mockMode: true}
	}

	queryURL := strings.TrimSpace(os.Getenv("CONTENT_API_URL"))
	if queryURL == "" {
		log.Printf("[content][client] CONTENT_API_URL not set; serving built-in rate table")
		return &SanityClient{mockMode: true}
	}

	return &SanityClient{
		queryURL: queryURL,
		token:    strings.TrimSpace(os.Getenv("CONTENT_API_TOKEN")),
		client:   &http.Client{Timeout: defaultRequestTimeout},
	}
}

// settingsDocument mirrors the published document with pointer fields where
// "absent" and "zero" must be told apart for the built-in defaults.
type settingsDocument struct {
	BaseCurrency    *string                  `json:"baseCurrency"`
	CurrencyOptions []string                 `json:"currencyOptions"`
	ConversionRates []pricing.ConversionRate `json:"conversionRates"`
	VATRate         *float64                 `json:"vatRate"`
	MinimumPrice    *float64                 `json:"minimumPrice"`
	Categories      []pricing.Category       `json:"categories"`
	Deliverables    []pricing.Deliverable    `json:"deliverables"`
	Timelines       []pricing.Timeline       `json:"timelines"`
}

func (c *SanityClient) RateTable(ctx context.Context) (pricing.RateTable, error) {
	if c.mockMode {
		return pricing.DefaultRateTable(), nil
	}

	reqURL := c.queryURL + "?query=" + url.QueryEscape(quoteSettingsQuery)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return pricing.RateTable{}, fmt.Errorf("create settings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return pricing.RateTable{}, fmt.Errorf("fetch quote settings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return pricing.RateTable{}, fmt.Errorf("quote settings query returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Result *settingsDocument `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return pricing.RateTable{}, fmt.Errorf("decode quote settings: %w", err)
	}
	if envelope.Result == nil {
		// No published settings document yet; not an error.
		log.Printf("[content][client] no quoteSettings document published; serving built-in rate table")
		return pricing.DefaultRateTable(), nil
	}

	return toRateTable(*envelope.Result), nil
}

// toRateTable fills absent optional fields with the built-in defaults. Empty
// selection lists are kept as-is; the engine resolves them to zero/identity.
func toRateTable(doc settingsDocument) pricing.RateTable {
	defaults := pricing.DefaultRateTable()

	table := pricing.RateTable{
		CurrencyOptions: doc.CurrencyOptions,
		ConversionRates: doc.ConversionRates,
		Categories:      doc.Categories,
		Deliverables:    doc.Deliverables,
		Timelines:       doc.Timelines,
	}

	if doc.BaseCurrency != nil && *doc.BaseCurrency != "" {
		table.BaseCurrency = *doc.BaseCurrency
	} else {
		table.BaseCurrency = defaults.BaseCurrency
	}
	if len(table.CurrencyOptions) == 0 {
		table.CurrencyOptions = defaults.CurrencyOptions
	}
	if len(table.ConversionRates) == 0 {
		table.ConversionRates = defaults.ConversionRates
	}
	if doc.VATRate != nil {
		table.VATRate = *doc.VATRate
	} else {
		table.VATRate = defaults.VATRate
	}
	if doc.MinimumPrice != nil {
		table.MinimumPrice = *doc.MinimumPrice
	} else {
		table.MinimumPrice = defaults.MinimumPrice
	}

	return table
}

func isContentMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CONTENT_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
