package interfaces

import (
	"context"
	"instaquote/internal/domain/entities"
)

// INotifier abstracts the post-submission notification (e.g. the quote email
// to the submitter and the operator copy).
//
// Notification is best-effort: it runs only after the record is persisted and
// its failure must never fail or roll back the write.
type INotifier interface {
	NotifyQuoteCreated(ctx context.Context, q entities.InstantQuote) error
}
