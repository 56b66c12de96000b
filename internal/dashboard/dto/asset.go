package dto

import "golang-market-screener/internal/entity"

// Asset view notes for partial payloads. These are states, not errors:
// the view renders a labeled empty section instead of failing.
const (
	NoteInsufficientHistory = "insufficient price history"
	NoteNoOptionsData       = "no options data"
)

// AssetDetailResponse wraps the normalized asset payload with explicit
// availability flags for the chart consumers.
type AssetDetailResponse struct {
	entity.AssetDetail
	HistoryAvailable bool     `json:"history_available"`
	OptionsAvailable bool     `json:"options_available"`
	Notes            []string `json:"notes,omitempty"`
}

// NewAssetDetailResponse builds the response, deriving notes from the
// payload's missing optional sections.
func NewAssetDetailResponse(detail *entity.AssetDetail) AssetDetailResponse {
	resp := AssetDetailResponse{
		AssetDetail:      *detail,
		HistoryAvailable: detail.HasHistory(),
		OptionsAvailable: detail.HasOptionsData(),
	}
	if !resp.HistoryAvailable {
		resp.Notes = append(resp.Notes, NoteInsufficientHistory)
	}
	if !resp.OptionsAvailable {
		resp.Notes = append(resp.Notes, NoteNoOptionsData)
	}
	return resp
}
