package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang-market-screener/internal/dashboard/config"
	"golang-market-screener/internal/dashboard/dto"
	"golang-market-screener/internal/entity"
	"golang-market-screener/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned when the remote service has no data for the
// requested resource.
var ErrNotFound = errors.New("resource not found")

// ScreenerAPIRepository defines the client for the remote scan/analytics
// service.
type ScreenerAPIRepository interface {
	StartScan(ctx context.Context, cfg entity.ScanConfig) (string, error)
	GetScanStatus(ctx context.Context, taskID string) (*dto.RemoteScanStatusResponse, error)
	GetAssetDetail(ctx context.Context, ticker string) (*entity.AssetDetail, error)
}

type screenerAPIRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewScreenerAPIRepository creates a rate-limited HTTP client for the
// screener service.
func NewScreenerAPIRepository(cfg *config.Config, log *logger.Logger) ScreenerAPIRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Screener.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	timeout := cfg.Screener.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &screenerAPIRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     &http.Client{Timeout: timeout},
		requestLimiter: requestLimiter,
	}
}

// StartScan submits a new scan job and returns the remote task identifier.
func (r *screenerAPIRepository) StartScan(ctx context.Context, scanCfg entity.ScanConfig) (string, error) {
	jsonPayload, err := json.Marshal(scanCfg)
	if err != nil {
		return "", err
	}
	body, err := r.sendRequest(ctx, http.MethodPost, r.cfg.Screener.BaseURL+"/scanner/start", string(jsonPayload))
	if err != nil {
		return "", err
	}

	var response dto.RemoteStartScanResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if response.TaskID == "" {
		return "", errors.New("scan service returned empty task_id")
	}

	r.log.DebugContext(ctx, "Scan job accepted by screener service", logger.StringField("task_id", response.TaskID))

	return response.TaskID, nil
}

// GetScanStatus fetches the current status of a scan job.
func (r *screenerAPIRepository) GetScanStatus(ctx context.Context, taskID string) (*dto.RemoteScanStatusResponse, error) {
	reqURL := r.cfg.Screener.BaseURL + "/scanner/status/" + url.PathEscape(taskID)
	body, err := r.sendRequest(ctx, http.MethodGet, reqURL, "")
	if err != nil {
		return nil, err
	}

	var response dto.RemoteScanStatusResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetAssetDetail fetches the raw detail payload for a single ticker.
func (r *screenerAPIRepository) GetAssetDetail(ctx context.Context, ticker string) (*entity.AssetDetail, error) {
	reqURL := r.cfg.Screener.BaseURL + "/asset/" + url.PathEscape(ticker)
	body, err := r.sendRequest(ctx, http.MethodGet, reqURL, "")
	if err != nil {
		return nil, err
	}

	var detail entity.AssetDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

func (r *screenerAPIRepository) sendRequest(ctx context.Context, method string, reqURL string, jsonStr string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("url", reqURL),
		zap.Int("max_request_per_minute", r.cfg.Screener.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	var payload io.Reader
	if jsonStr != "" {
		payload = bytes.NewBufferString(jsonStr)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to screener service", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.ErrorContext(ctx, "Received non-OK response from screener service", fields...)
		return nil, fmt.Errorf("screener service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from screener service", fields...)
		return nil, err
	}

	return body, nil
}
