package domain

import "time"

// DrawingFile is an uploaded drawing held fully in memory
type DrawingFile struct {
	Name string `json:"name"`
	Data []byte `json:"-"`
}

// PageRange bounds extraction to an inclusive 1-based page window.
// The zero value means all pages; End == 0 means "through the last page".
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IsAll reports whether the range places no bound on extraction
func (r PageRange) IsAll() bool {
	return r.Start == 0 && r.End == 0
}

// FileResult represents the per-file outcome of extraction and parsing
type FileResult struct {
	Name        string `json:"name"`
	TextChars   int    `json:"textChars"`
	MemberCount int    `json:"memberCount"`
	Error       string `json:"error,omitempty"`
	Warning     string `json:"warning,omitempty"`
	Sample      string `json:"sample,omitempty"` // leading slice of extracted text, extraction test mode only
}

// SideSummary aggregates one side (structural or shop) of a review run
type SideSummary struct {
	Files       []FileResult `json:"files"`
	Members     []Member     `json:"members"`
	UniqueCount int          `json:"uniqueCount"`
}

// ReviewReport is the full result of one comparison run
type ReviewReport struct {
	ID          string      `json:"id"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Structural  SideSummary `json:"structural"`
	Shop        SideSummary `json:"shop"`
	Comparison  Comparison  `json:"comparison"`
	Rows        []ReportRow `json:"rows"`
	Warnings    []string    `json:"warnings,omitempty"`
}

// ExtractionResult is the outcome of a single-side extraction test run
type ExtractionResult struct {
	Files       []FileResult             `json:"files"`
	Members     []Member                 `json:"members"`
	UniqueCount int                      `json:"uniqueCount"`
	ByType      map[SectionType][]string `json:"byType"`
}
