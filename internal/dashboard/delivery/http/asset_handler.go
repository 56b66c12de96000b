package http

import (
	"errors"
	"net/http"

	"golang-market-screener/internal/dashboard/dto"
	"golang-market-screener/internal/dashboard/repository"
	"golang-market-screener/internal/dashboard/service"
	"golang-market-screener/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AssetHandler handles HTTP requests for asset detail.
type AssetHandler struct {
	assetService service.AssetDetailService
	logger       *logger.Logger
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService service.AssetDetailService, logger *logger.Logger) *AssetHandler {
	return &AssetHandler{assetService: assetService, logger: logger}
}

// RegisterRoutes registers the asset routes to the Echo group.
func (h *AssetHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/assets/:ticker", h.GetAssetDetail)
}

// GetAssetDetail godoc
// @Summary Get asset detail
// @Description Get the normalized detail payload for one ticker
// @Tags assets
// @Produce  json
// @Param   ticker  path    string  true    "Ticker symbol"
// @Success 200 {object} dto.AssetDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /assets/{ticker} [get]
func (h *AssetHandler) GetAssetDetail(c echo.Context) error {
	ticker := c.Param("ticker")

	detail, err := h.assetService.Load(c.Request().Context(), ticker)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Unknown ticker"})
		case errors.Is(err, service.ErrMissingPrice):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		default:
			h.logger.Error("Failed to load asset detail", logger.ErrorField(err), logger.StringField("ticker", ticker))
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "Failed to load asset detail"})
		}
	}

	return c.JSON(http.StatusOK, dto.NewAssetDetailResponse(detail))
}
