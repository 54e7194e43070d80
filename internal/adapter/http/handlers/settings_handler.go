package handlers

import (
	"net/http"

	"instaquote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the resolved rate table so the form renders its
// selection controls from the same snapshot the engine prices with.

type SettingsHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewSettingsHandler(uc usecase.IQuoteUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetQuoteSettings returns the current rate table. Never fails: the provider
// falls back to the built-in defaults when the content store is unreachable.
func (h *SettingsHandler) GetQuoteSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Settings(c.Request.Context()))
}
