package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"sort"
	"strings"
	"time"

	"instaquote/internal/domain/entities"
	"instaquote/internal/domain/pricing"
	"instaquote/internal/usecase/interfaces"
	"instaquote/pkg"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidStatus  = errors.New("invalid quote status")
	ErrInvalidRank    = errors.New("invalid order rank")
)

// QuoteSubmission is the command accepted by Submit: the pricing selection
// plus the contact fields that only matter at the submission boundary.
type QuoteSubmission struct {
	Selection  pricing.Selection
	BrandState string
	Contact    entities.ContactInfo
}

// IQuoteUseCase exposes the instant-quote operations.
//
//   - Preview is the live recalculation behind the form: a pure transform of
//     (rate table, selection), invoked on every change, no persistence.
//   - Submit validates strictly, recomputes the breakdown server-side,
//     persists a draft record and then sends the notification best-effort.
//   - UpdateStatus/UpdateRank serve the back-office admin listing.

type IQuoteUseCase interface {
	Preview(ctx context.Context, sel pricing.Selection) pricing.Breakdown
	Submit(ctx context.Context, sub QuoteSubmission) (entities.InstantQuote, error)
	GetByID(ctx context.Context, id string) (entities.InstantQuote, error)
	ListByEmail(ctx context.Context, email string) ([]entities.InstantQuote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.InstantQuote, error)
	UpdateRank(ctx context.Context, id string, rank string) (entities.InstantQuote, error)
	Settings(ctx context.Context) pricing.RateTable
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	rates    interfaces.IRateTableProvider
	notifier interfaces.INotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, rates interfaces.IRateTableProvider, notifier interfaces.INotifier) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, rates: rates, notifier: notifier}
}

// Preview computes the breakdown for a selection without touching storage.
// It never fails: configuration gaps resolve via the table's fallback rules
// and malformed pages are coerced, so the form always has numbers to show.
func (u *QuoteUseCase) Preview(ctx context.Context, sel pricing.Selection) pricing.Breakdown {
	return pricing.ComputeBreakdown(u.rateTable(ctx), sel)
}

// Settings returns the resolved rate table the form should render from, so
// the selection controls and the engine price from the same snapshot.
func (u *QuoteUseCase) Settings(ctx context.Context) pricing.RateTable {
	return u.rateTable(ctx)
}

func (u *QuoteUseCase) Submit(ctx context.Context, sub QuoteSubmission) (entities.InstantQuote, error) {
	sub.Contact.Email = strings.TrimSpace(sub.Contact.Email)

	table := u.rateTable(ctx)
	if err := validateSubmission(table, sub); err != nil {
		log.Printf("[quote][usecase] submission rejected: %v", err)
		return entities.InstantQuote{}, err
	}

	bd := pricing.ComputeBreakdown(table, sub.Selection)

	now := time.Now().UTC()
	q := entities.InstantQuote{
		ID:          uuid.NewString(),
		QuoteNumber: newQuoteNumber(now),

		Pages: bd.Pages,
		Category: entities.CategorySnapshot{
			Title:        bd.CategoryTitle,
			Slug:         bd.CategorySlug,
			PricePerPage: bd.PricePerPage,
		},
		Deliverable: bd.DeliverableKey,
		Timeline:    bd.TimelineKey,
		BrandState:  sub.BrandState,

		Currency:       bd.Currency,
		ConversionRate: bd.ConversionRate,
		PricePerPage:   bd.PricePerPage,
		Subtotal:       bd.Subtotal,
		VATRate:        bd.VATRate,
		VAT:            bd.VAT,
		Total:          bd.Total,
		Breakdown: entities.PriceBreakdownSnapshot{
			PagesTotal:            bd.PagesTotal,
			DeliverableMultiplier: bd.DeliverableMultiplier,
			DeliverableLabel:      bd.DeliverableLabel,
			TimelineMultiplier:    bd.TimelineMultiplier,
			TimelineLabel:         bd.TimelineLabel,
			TimelineETA:           bd.TimelineETA,
		},

		Contact:   sub.Contact,
		Status:    entities.QuoteStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed quote_number=%s err=%v", q.QuoteNumber, err)
		return entities.InstantQuote{}, err
	}
	log.Printf("[quote][usecase] quote created quote_id=%s quote_number=%s total=%v %s", created.ID, created.QuoteNumber, created.Total, created.Currency)

	// The persisted record is the durable source of truth; the email is
	// best-effort and must not fail the submission.
	if u.notifier != nil {
		if err := u.notifier.NotifyQuoteCreated(ctx, created); err != nil {
			log.Printf("[quote][usecase] notification failed quote_id=%s err=%v", created.ID, err)
		}
	}

	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.InstantQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InstantQuote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InstantQuote{}, err
	}
	if q.ID == "" {
		return entities.InstantQuote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByEmail(ctx context.Context, email string) ([]entities.InstantQuote, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	quotes, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.InstantQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InstantQuote{}, ErrInvalidQuoteID
	}
	// Membership check only. Transition ordering is owned by the back-office
	// caller, not by this service.
	if !entities.ValidQuoteStatus(status) {
		return entities.InstantQuote{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.InstantQuote{}, err
	}
	if updated.ID == "" {
		return entities.InstantQuote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) UpdateRank(ctx context.Context, id string, rank string) (entities.InstantQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InstantQuote{}, ErrInvalidQuoteID
	}
	if strings.TrimSpace(rank) == "" {
		return entities.InstantQuote{}, ErrInvalidRank
	}

	updated, err := u.repo.UpdateRankByID(ctx, id, rank)
	if err != nil {
		return entities.InstantQuote{}, err
	}
	if updated.ID == "" {
		return entities.InstantQuote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// rateTable resolves the current configuration snapshot, falling back to the
// built-in defaults when the content store is unavailable. Configuration
// problems are reported but never clamped or corrected.
func (u *QuoteUseCase) rateTable(ctx context.Context) pricing.RateTable {
	if u.rates == nil {
		return pricing.DefaultRateTable()
	}
	table, err := u.rates.RateTable(ctx)
	if err != nil {
		log.Printf("[quote][usecase] rate table fetch failed; using defaults err=%v", err)
		return pricing.DefaultRateTable()
	}
	if err := table.Validate(); err != nil {
		log.Printf("[quote][usecase] rate table configuration problem: %v", err)
	}
	return table
}

func validateSubmission(table pricing.RateTable, sub QuoteSubmission) error {
	verr := pkg.NewFieldValidationError()

	if sub.Selection.Pages < 1 {
		verr.Add("pages", "must be at least 1")
	}
	if _, err := mail.ParseAddress(sub.Contact.Email); err != nil || sub.Contact.Email == "" {
		verr.Add("email", "must be a valid email address")
	}
	if !table.HasCurrency(sub.Selection.Currency) {
		verr.Add("currency", "must be one of the offered currencies")
	}
	if !table.HasCategory(sub.Selection.Category) {
		verr.Add("category", "unknown category")
	}
	if !table.HasDeliverable(sub.Selection.Deliverable) {
		verr.Add("deliverable", "unknown deliverable")
	}
	if !table.HasTimeline(sub.Selection.Timeline) {
		verr.Add("timeline", "unknown timeline")
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

// newQuoteNumber builds the auto-generated reference, e.g. Q-20260829-3FA85F64.
// Callers must treat it as an opaque unique string.
func newQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("Q-%s-%s", now.Format("20060102"), suffix)
}
