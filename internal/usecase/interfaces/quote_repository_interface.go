package interfaces

import (
	"context"
	"instaquote/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for InstantQuote.
//
// The quote-service must be able to:
//   - create a record when the form submits a quote
//   - fetch a record by id and list a submitter's records by email
//   - update status (back-office lifecycle) and order rank (admin sort)

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.InstantQuote) (entities.InstantQuote, error)
	GetByID(ctx context.Context, id string) (entities.InstantQuote, error)
	ListByEmail(ctx context.Context, email string) ([]entities.InstantQuote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.InstantQuote, error)
	UpdateRankByID(ctx context.Context, id string, rank string) (entities.InstantQuote, error)
}
