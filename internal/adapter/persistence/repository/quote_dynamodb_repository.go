package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"instaquote/internal/domain/entities"
	"instaquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "instant_quotes"
	quotesEmailIndex       = "email-index"
)

type categorySnapshotItem struct {
	Title        string `dynamodbav:"title"`
	Slug         string `dynamodbav:"slug,omitempty"`
	PricePerPage string `dynamodbav:"pricePerPage"`
}

type priceBreakdownItem struct {
	PagesTotal            string `dynamodbav:"pagesTotal"`
	DeliverableMultiplier string `dynamodbav:"deliverableMultiplier"`
	DeliverableLabel      string `dynamodbav:"deliverableLabel,omitempty"`
	TimelineMultiplier    string `dynamodbav:"timelineMultiplier"`
	TimelineLabel         string `dynamodbav:"timelineLabel,omitempty"`
	TimelineETA           string `dynamodbav:"timelineEta,omitempty"`
}

type contactItem struct {
	Email        string `dynamodbav:"email"`
	CustomerName string `dynamodbav:"customerName,omitempty"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Company      string `dynamodbav:"company,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
}

// Money fields are stored as strings to keep the full float64 precision the
// engine produced; display rounding never happens at this layer.
type quoteItem struct {
	ID          string `dynamodbav:"id"`
	QuoteNumber string `dynamodbav:"quoteNumber"`

	Pages       int                  `dynamodbav:"pages"`
	Category    categorySnapshotItem `dynamodbav:"category"`
	Deliverable string               `dynamodbav:"deliverable"`
	Timeline    string               `dynamodbav:"timeline"`
	BrandState  string               `dynamodbav:"brandState,omitempty"`

	Currency       string             `dynamodbav:"currency"`
	ConversionRate string             `dynamodbav:"conversionRate"`
	PricePerPage   string             `dynamodbav:"pricePerPage"`
	Subtotal       string             `dynamodbav:"subtotal"`
	VATRate        string             `dynamodbav:"vatRate"`
	VAT            string             `dynamodbav:"vat"`
	Total          string             `dynamodbav:"total"`
	Breakdown      priceBreakdownItem `dynamodbav:"priceBreakdown"`

	// Email is duplicated out of the contact group as the GSI key.
	Email   string      `dynamodbav:"email"`
	Contact contactItem `dynamodbav:"contact"`

	Status    string `dynamodbav:"status"`
	OrderRank string `dynamodbav:"orderRank,omitempty"`
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

// QuoteDynamoRepository persists InstantQuote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.InstantQuote) (entities.InstantQuote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.InstantQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.InstantQuote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.InstantQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InstantQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.InstantQuote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InstantQuote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.InstantQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.InstantQuote, 0, len(out.Items))
	for _, item := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.InstantQuote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updatedAt = :updatedAt"
		vals := map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: string(status)},
			":updatedAt": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":    "status",
			"#updatedAt": "updatedAt",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateRankByID(ctx context.Context, id string, rank string) (entities.InstantQuote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #orderRank = :orderRank, #updatedAt = :updatedAt"
		vals := map[string]types.AttributeValue{
			":orderRank": &types.AttributeValueMemberS{Value: rank},
			":updatedAt": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#orderRank": "orderRank",
			"#updatedAt": "updatedAt",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.InstantQuote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InstantQuote{}, nil
		}
		return entities.InstantQuote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.InstantQuote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InstantQuote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.InstantQuote) quoteItem {
	return quoteItem{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,

		Pages: q.Pages,
		Category: categorySnapshotItem{
			Title:        q.Category.Title,
			Slug:         q.Category.Slug,
			PricePerPage: floatToString(q.Category.PricePerPage),
		},
		Deliverable: q.Deliverable,
		Timeline:    q.Timeline,
		BrandState:  q.BrandState,

		Currency:       q.Currency,
		ConversionRate: floatToString(q.ConversionRate),
		PricePerPage:   floatToString(q.PricePerPage),
		Subtotal:       floatToString(q.Subtotal),
		VATRate:        floatToString(q.VATRate),
		VAT:            floatToString(q.VAT),
		Total:          floatToString(q.Total),
		Breakdown: priceBreakdownItem{
			PagesTotal:            floatToString(q.Breakdown.PagesTotal),
			DeliverableMultiplier: floatToString(q.Breakdown.DeliverableMultiplier),
			DeliverableLabel:      q.Breakdown.DeliverableLabel,
			TimelineMultiplier:    floatToString(q.Breakdown.TimelineMultiplier),
			TimelineLabel:         q.Breakdown.TimelineLabel,
			TimelineETA:           q.Breakdown.TimelineETA,
		},

		Email: q.Contact.Email,
		Contact: contactItem{
			Email:        q.Contact.Email,
			CustomerName: q.Contact.CustomerName,
			Phone:        q.Contact.Phone,
			Company:      q.Contact.Company,
			Notes:        q.Contact.Notes,
		},

		Status:    string(q.Status),
		OrderRank: q.OrderRank,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.InstantQuote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.InstantQuote{
		ID:          it.ID,
		QuoteNumber: it.QuoteNumber,

		Pages: it.Pages,
		Category: entities.CategorySnapshot{
			Title:        it.Category.Title,
			Slug:         it.Category.Slug,
			PricePerPage: stringToFloat(it.Category.PricePerPage),
		},
		Deliverable: it.Deliverable,
		Timeline:    it.Timeline,
		BrandState:  it.BrandState,

		Currency:       it.Currency,
		ConversionRate: stringToFloat(it.ConversionRate),
		PricePerPage:   stringToFloat(it.PricePerPage),
		Subtotal:       stringToFloat(it.Subtotal),
		VATRate:        stringToFloat(it.VATRate),
		VAT:            stringToFloat(it.VAT),
		Total:          stringToFloat(it.Total),
		Breakdown: entities.PriceBreakdownSnapshot{
			PagesTotal:            stringToFloat(it.Breakdown.PagesTotal),
			DeliverableMultiplier: stringToFloat(it.Breakdown.DeliverableMultiplier),
			DeliverableLabel:      it.Breakdown.DeliverableLabel,
			TimelineMultiplier:    stringToFloat(it.Breakdown.TimelineMultiplier),
			TimelineLabel:         it.Breakdown.TimelineLabel,
			TimelineETA:           it.Breakdown.TimelineETA,
		},

		Contact: entities.ContactInfo{
			Email:        it.Contact.Email,
			CustomerName: it.Contact.CustomerName,
			Phone:        it.Contact.Phone,
			Company:      it.Contact.Company,
			Notes:        it.Contact.Notes,
		},

		Status:    entities.QuoteStatus(it.Status),
		OrderRank: it.OrderRank,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
