package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-market-screener/internal/dashboard/dto"
	"golang-market-screener/internal/dashboard/repository"
	"golang-market-screener/internal/dashboard/service"
	"golang-market-screener/internal/entity"
	"golang-market-screener/pkg/logger"

	"github.com/labstack/echo/v4"
)

const defaultHistoryLimit = 20

// ScanHandler handles HTTP requests for the scan lifecycle and result
// projections.
type ScanHandler struct {
	controller service.ScanController
	projection service.ProjectionService
	jobRepo    repository.ScanJobRepository
	logger     *logger.Logger
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(controller service.ScanController, projection service.ProjectionService, jobRepo repository.ScanJobRepository, logger *logger.Logger) *ScanHandler {
	return &ScanHandler{controller: controller, projection: projection, jobRepo: jobRepo, logger: logger}
}

// RegisterRoutes registers the scan routes to the Echo group.
func (h *ScanHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/scans", h.StartScan)
	g.GET("/scans/active", h.GetActiveScan)
	g.GET("/scans/results", h.GetScanResults)
	g.GET("/scans/history", h.GetScanHistory)
	g.GET("/scans/sectors", h.GetSectors)
	g.GET("/playbook", h.GetPlaybook)
}

// StartScan godoc
// @Summary Start a new scan
// @Description Submit a scan job, superseding any job still in flight
// @Tags scans
// @Accept  json
// @Produce  json
// @Param   scan  body    dto.StartScanRequest   true    "Scan configuration"
// @Success 202 {object} dto.StartScanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /scans [post]
func (h *ScanHandler) StartScan(c echo.Context) error {
	var req dto.StartScanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	scanCfg := req.ToScanConfig()
	if err := scanCfg.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	jobID, err := h.controller.Submit(c.Request().Context(), scanCfg)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to submit scan", logger.ErrorField(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusAccepted, dto.StartScanResponse{JobID: jobID, Status: service.ScanStatePending})
}

// GetActiveScan godoc
// @Summary Get the current scan state
// @Description Get the controller's lifecycle state and progress
// @Tags scans
// @Produce  json
// @Success 200 {object} dto.ScanStateResponse
// @Router /scans/active [get]
func (h *ScanHandler) GetActiveScan(c echo.Context) error {
	snapshot := h.controller.Snapshot()

	resp := dto.ScanStateResponse{
		State:        snapshot.State,
		JobID:        snapshot.JobID,
		Progress:     snapshot.Progress,
		RowCount:     snapshot.RowCount,
		ErrorMessage: snapshot.ErrorMessage,
		Config:       snapshot.Config,
	}
	if !snapshot.SubmittedAt.IsZero() {
		submittedAt := snapshot.SubmittedAt
		resp.SubmittedAt = &submittedAt
	}
	return c.JSON(http.StatusOK, resp)
}

// GetScanResults godoc
// @Summary Get the last completed result set
// @Description Get result rows, optionally ordered by a column
// @Tags scans
// @Produce  json
// @Param   sort_by    query   string  false   "Column key to sort by"
// @Param   direction  query   string  false   "asc, desc or none"
// @Success 200 {object} dto.ScanResultsResponse
// @Router /scans/results [get]
func (h *ScanHandler) GetScanResults(c echo.Context) error {
	columnKey := c.QueryParam("sort_by")
	direction := entity.SortDirection(c.QueryParam("direction"))
	if direction == "" {
		direction = entity.SortUnordered
	}

	rows := h.controller.Results()
	sorted := h.projection.SortBy(rows, columnKey, direction)

	return c.JSON(http.StatusOK, dto.ScanResultsResponse{
		Sort: entity.SortState{ColumnKey: columnKey, Direction: direction},
		Rows: sorted,
	})
}

// GetScanHistory godoc
// @Summary Get recent scan jobs
// @Description Get the most recently finished scan jobs
// @Tags scans
// @Produce  json
// @Param   limit  query   int false   "Maximum number of jobs"
// @Success 200 {array} entity.ScanJob
// @Failure 500 {object} dto.ErrorResponse
// @Router /scans/history [get]
func (h *ScanHandler) GetScanHistory(c echo.Context) error {
	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit"})
		}
		limit = parsed
	}

	jobs, err := h.jobRepo.FindRecent(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("Failed to get scan history", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get scan history"})
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetSectors godoc
// @Summary List selectable sectors
// @Tags scans
// @Produce  json
// @Success 200 {object} dto.SectorsResponse
// @Router /scans/sectors [get]
func (h *ScanHandler) GetSectors(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.SectorsResponse{Sectors: entity.Sectors})
}

// GetPlaybook godoc
// @Summary Get playbook candidates
// @Description Get the lowest and highest VRP rows of the last completed scan
// @Tags scans
// @Produce  json
// @Param   count  query   int false   "Candidates per side"
// @Success 200 {object} dto.PlaybookResponse
// @Router /playbook [get]
func (h *ScanHandler) GetPlaybook(c echo.Context) error {
	count := service.DefaultPlaybookCount
	if raw := c.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid count"})
		}
		count = parsed
	}

	longs, shorts := h.projection.ClassifyTopCandidates(h.controller.Results(), entity.ColumnVRP, count)
	return c.JSON(http.StatusOK, dto.PlaybookResponse{Longs: longs, Shorts: shorts})
}
