package routes

import (
	"instaquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathSettings = "/quote-settings"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, settingsHandler *handlers.SettingsHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// Endpoints the marketing site's quote form talks to.
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)

		// Back-office endpoints.
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.PATCH("/:id/rank", quoteHandler.UpdateQuoteRank)
	}

	rg.GET(PathSettings, settingsHandler.GetQuoteSettings)
}
