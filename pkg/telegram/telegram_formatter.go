package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-market-screener/internal/entity"
)

// FormatScanCompletedMessage formats a completed scan into a Markdown
// message with the top long and short candidates.
func FormatScanCompletedMessage(config entity.ScanConfig, rows []entity.ResultRow, longs, shorts []entity.ResultRow, completedAt time.Time) string {
	var builder strings.Builder

	builder.WriteString("✅ *Market Scan Completed*\n\n")
	builder.WriteString(fmt.Sprintf("🔎 *Sector:* %s\n", config.Sector))
	builder.WriteString(fmt.Sprintf("🧮 *Universe:* %d tickers\n", config.UniverseSize))
	builder.WriteString(fmt.Sprintf("📊 *Results:* %d rows\n", len(rows)))
	builder.WriteString(fmt.Sprintf("🕒 *Finished:* %s\n\n", completedAt.Format(time.RFC3339)))

	writeCandidates := func(title, icon string, candidates []entity.ResultRow) {
		if len(candidates) == 0 {
			return
		}
		builder.WriteString(fmt.Sprintf("%s *%s*\n", icon, title))
		for _, row := range candidates {
			builder.WriteString(fmt.Sprintf("`%-6s` VRP %.1f  $%.2f\n",
				row.Ticker,
				row.DisplayValue(entity.ColumnVRP),
				row.DisplayValue(entity.ColumnPrice)))
		}
		builder.WriteString("\n")
	}

	writeCandidates("Top Long Candidates (Cheap Vol)", "🟢", longs)
	writeCandidates("Top Short Candidates (Expensive Vol)", "🔴", shorts)

	return builder.String()
}

// FormatScanFailedMessage formats a failed scan alert with the verbatim
// error reported by the scan service.
func FormatScanFailedMessage(config entity.ScanConfig, errorMessage string, failedAt time.Time) string {
	var builder strings.Builder

	builder.WriteString("🚨 *Market Scan Failed*\n\n")
	builder.WriteString(fmt.Sprintf("🔎 *Sector:* %s\n", config.Sector))
	builder.WriteString(fmt.Sprintf("🕒 *Time:* %s\n", failedAt.Format(time.RFC3339)))
	builder.WriteString(fmt.Sprintf("💥 *Error:* %s\n", errorMessage))

	return builder.String()
}
