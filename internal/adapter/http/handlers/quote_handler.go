package handlers

import (
	"errors"
	"log"
	"net/http"

	request "instaquote/internal/adapter/http/dto/request"
	response "instaquote/internal/adapter/http/dto/response"
	"instaquote/internal/usecase"
	"instaquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for instant quotes.
//
// The preview endpoint backs the form's live recalculation; submission and
// the PATCH endpoints back the persistence/back-office side.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// PreviewQuote computes a price breakdown without persisting anything. The
// engine coerces bad input, so any syntactically valid JSON yields a result.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.PreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	bd := h.usecase.Preview(c.Request.Context(), payload.Selection())
	c.JSON(http.StatusOK, response.FromBreakdown(bd))
}

// SubmitQuote validates the submission, persists a draft quote record and
// returns it. Validation failures report the offending fields and persist
// nothing.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	sub := usecase.QuoteSubmission{
		Selection:  payload.Selection(),
		BrandState: payload.BrandState,
		Contact:    payload.Contact(),
	}

	quote, err := h.usecase.Submit(c.Request.Context(), sub)
	if err != nil {
		var verr *pkg.FieldValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, verr.ToHTTPError())
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInstantQuote(quote))
}

// GetQuote returns a single quote record by id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstantQuote(quote))
}

// ListQuotes returns a submitter's quotes, newest first.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	email := c.Query("email")

	quotes, err := h.usecase.ListByEmail(c.Request.Context(), email)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstantQuotes(quotes))
}

// UpdateQuoteStatus applies a back-office status change.
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ResolveStatus())
	if err != nil {
		log.Printf("[quote][handler] status update failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstantQuote(quote))
}

// UpdateQuoteRank sets the manual sort rank used by the admin listing.
func (h *QuoteHandler) UpdateQuoteRank(c *gin.Context) {
	id := c.Param("id")

	var payload request.RankRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateRank(c.Request.Context(), id, payload.ResolveRank())
	if err != nil {
		log.Printf("[quote][handler] rank update failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstantQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidRank):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
