package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/steelcheck/backend/internal/domain"
)

// reportCSVFilename is the attachment name of the downloadable report
const reportCSVFilename = "member_comparison_report.csv"

// buildReportCSV renders the detail table of a review as CSV
func buildReportCSV(report *domain.ReviewReport) ([]byte, error) {
	var buf bytes.Buffer

	// UTF-8 BOM for Excel compatibility
	buf.WriteString("\ufeff")

	// Metadata as comment lines, not CSV data
	buf.WriteString("# SteelCheck Member Comparison Report\n")
	buf.WriteString(fmt.Sprintf("# Generated: %s\n", report.GeneratedAt.Format(time.RFC3339)))
	buf.WriteString(fmt.Sprintf("# Run: %s\n", report.ID))
	buf.WriteString(fmt.Sprintf("# Match: %.1f%%\n", report.Comparison.MatchPercentage))
	buf.WriteString(fmt.Sprintf("# Structural: %d unique, Shop: %d unique\n",
		report.Structural.UniqueCount, report.Shop.UniqueCount))
	buf.WriteString("#\n")

	writer := csv.NewWriter(&buf)

	header := []string{"Member", "Status", "In Structural", "In Shop", "Structural Context", "Shop Context"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			sanitizeCSVField(row.Member),
			sanitizeCSVField(row.Status.Label()),
			yesNo(row.InStructural),
			yesNo(row.InShop),
			sanitizeCSVField(row.StructuralContext),
			sanitizeCSVField(row.ShopContext),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeCSVField sanitizes CSV fields to prevent spreadsheet formula injection
func sanitizeCSVField(field string) string {
	if field == "" {
		return field
	}
	if strings.HasPrefix(field, "=") || strings.HasPrefix(field, "+") ||
		strings.HasPrefix(field, "-") || strings.HasPrefix(field, "@") {
		// Prefix with single quote to neutralize formula
		return "'" + field
	}
	return field
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
