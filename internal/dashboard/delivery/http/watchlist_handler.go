package http

import (
	"errors"
	"net/http"

	"golang-market-screener/internal/dashboard/dto"
	"golang-market-screener/internal/dashboard/service"
	"golang-market-screener/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WatchlistHandler handles HTTP requests for the watchlist.
type WatchlistHandler struct {
	watchlistService service.WatchlistService
	logger           *logger.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService service.WatchlistService, logger *logger.Logger) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService, logger: logger}
}

// RegisterRoutes registers the watchlist routes to the Echo group.
func (h *WatchlistHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/watchlist", h.GetWatchlist)
	g.POST("/watchlist/:ticker/toggle", h.ToggleWatchlist)
}

// GetWatchlist godoc
// @Summary Get the watchlist
// @Tags watchlist
// @Produce  json
// @Success 200 {object} dto.WatchlistResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.WatchlistResponse{Tickers: h.watchlistService.List()})
}

// ToggleWatchlist godoc
// @Summary Toggle watchlist membership
// @Description Add the ticker when absent, remove it when present
// @Tags watchlist
// @Produce  json
// @Param   ticker  path    string  true    "Ticker symbol"
// @Success 200 {object} dto.ToggleWatchlistResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist/{ticker}/toggle [post]
func (h *WatchlistHandler) ToggleWatchlist(c echo.Context) error {
	ticker := c.Param("ticker")

	added, err := h.watchlistService.Toggle(c.Request().Context(), ticker)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTicker) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to toggle watchlist", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to persist watchlist"})
	}

	return c.JSON(http.StatusOK, dto.ToggleWatchlistResponse{Ticker: ticker, Added: added})
}
