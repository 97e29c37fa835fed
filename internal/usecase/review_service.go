package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steelcheck/backend/internal/domain"
	"github.com/steelcheck/backend/internal/infrastructure/pdfext"
	"github.com/steelcheck/backend/pkg/logging"
)

// sampleRuneLimit caps the extracted-text preview returned in extraction
// test mode
const sampleRuneLimit = 1000

// ReviewServiceConfig holds configuration for the review service
type ReviewServiceConfig struct {
	CacheTTL time.Duration
	Parser   ParserConfig
}

// ReviewService runs drawing reviews: text extraction, member parsing and
// the structural-versus-shop comparison
type ReviewService struct {
	extractor  domain.TextExtractor
	cache      domain.CacheRepository
	parser     *MemberParser
	comparator *Comparator
	cacheTTL   time.Duration
}

// CompareInput carries both drawing sides of a review run
type CompareInput struct {
	Structural      []domain.DrawingFile
	Shop            []domain.DrawingFile
	StructuralPages domain.PageRange
	ShopPages       domain.PageRange
}

// NewReviewService creates a new review service with dependencies
func NewReviewService(
	extractor domain.TextExtractor,
	cache domain.CacheRepository,
	config ReviewServiceConfig,
) *ReviewService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &ReviewService{
		extractor:  extractor,
		cache:      cache,
		parser:     NewMemberParser(config.Parser),
		comparator: NewComparator(config.Parser.EnableDebugLogging),
		cacheTTL:   cacheTTL,
	}
}

// CompareDrawings runs a full review: both sides are extracted and parsed,
// then compared. Files that cannot be read are reported in the result and
// skipped; they never abort the run.
func (s *ReviewService) CompareDrawings(ctx context.Context, input CompareInput) (*domain.ReviewReport, error) {
	if len(input.Structural) == 0 && len(input.Shop) == 0 {
		return nil, domain.ErrNoDrawings
	}

	structural, structuralWarnings, err := s.processSide(ctx, "structural", input.Structural, input.StructuralPages)
	if err != nil {
		return nil, err
	}

	shop, shopWarnings, err := s.processSide(ctx, "shop", input.Shop, input.ShopPages)
	if err != nil {
		return nil, err
	}

	report := &domain.ReviewReport{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Structural:  structural,
		Shop:        shop,
		Comparison:  s.comparator.Compare(structural.Members, shop.Members),
		Rows:        s.comparator.BuildReport(structural.Members, shop.Members),
		Warnings:    append(structuralWarnings, shopWarnings...),
	}

	logging.Log.Infof("[REVIEW] run %s: %d structural, %d shop, %d matching (%.1f%%)",
		report.ID, structural.UniqueCount, shop.UniqueCount,
		len(report.Comparison.Matching), report.Comparison.MatchPercentage)

	return report, nil
}

// ExtractMembers runs extraction and parsing on one set of drawings without
// comparing, for checking what the parser sees in a document
func (s *ReviewService) ExtractMembers(ctx context.Context, files []domain.DrawingFile, pages domain.PageRange) (*domain.ExtractionResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoDrawings
	}

	result := &domain.ExtractionResult{
		Files: make([]domain.FileResult, 0, len(files)),
	}
	var memberLists [][]domain.Member

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := s.extractText(ctx, file, pages)
		if err != nil {
			result.Files = append(result.Files, domain.FileResult{Name: file.Name, Error: err.Error()})
			continue
		}

		members := s.parser.ExtractMembers(text)
		fileResult := domain.FileResult{
			Name:        file.Name,
			TextChars:   len([]rune(text)),
			MemberCount: len(members),
			Sample:      sampleText(text),
		}
		if !pdfext.HasStructuralContent(text) {
			fileResult.Warning = "no structural drawing keywords found"
		}

		result.Files = append(result.Files, fileResult)
		memberLists = append(memberLists, members)
	}

	result.Members = MergeMembers(memberLists...)
	result.UniqueCount = len(result.Members)
	result.ByType = CountByType(result.Members)

	return result, nil
}

// processSide extracts and parses every file of one side, merging members
// across files. Per-file failures become results and warnings, not errors.
func (s *ReviewService) processSide(ctx context.Context, side string, files []domain.DrawingFile, pages domain.PageRange) (domain.SideSummary, []string, error) {
	summary := domain.SideSummary{
		Files:   make([]domain.FileResult, 0, len(files)),
		Members: make([]domain.Member, 0),
	}
	var warnings []string
	var memberLists [][]domain.Member

	for _, file := range files {
		select {
		case <-ctx.Done():
			return summary, warnings, ctx.Err()
		default:
		}

		text, err := s.extractText(ctx, file, pages)
		if err != nil {
			logging.Log.Warnf("[REVIEW] %s drawing %q skipped: %v", side, file.Name, err)
			summary.Files = append(summary.Files, domain.FileResult{Name: file.Name, Error: err.Error()})
			warnings = append(warnings, fmt.Sprintf("%s drawing %q skipped: %v", side, file.Name, err))
			continue
		}

		members := s.parser.ExtractMembers(text)
		fileResult := domain.FileResult{
			Name:        file.Name,
			TextChars:   len([]rune(text)),
			MemberCount: len(members),
		}
		if !pdfext.HasStructuralContent(text) {
			fileResult.Warning = "no structural drawing keywords found"
			warnings = append(warnings, fmt.Sprintf("%s drawing %q contains no structural drawing keywords", side, file.Name))
		}

		summary.Files = append(summary.Files, fileResult)
		memberLists = append(memberLists, members)
	}

	summary.Members = MergeMembers(memberLists...)
	summary.UniqueCount = len(summary.Members)

	switch {
	case len(files) == 0:
		warnings = append(warnings, fmt.Sprintf("no %s drawings uploaded", side))
	case summary.UniqueCount == 0:
		warnings = append(warnings, fmt.Sprintf("no member designations found in %s drawings", side))
	}

	return summary, warnings, nil
}

// extractText pulls the text layer through the cache. Extracted text is
// keyed by content hash so a renamed file cannot serve stale text.
func (s *ReviewService) extractText(ctx context.Context, file domain.DrawingFile, pages domain.PageRange) (string, error) {
	key := extractionCacheKey(file.Data, pages)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		logging.Log.Debugf("[REVIEW] extraction cache hit for %q", file.Name)
		return cached, nil
	}

	text, err := s.extractor.ExtractText(ctx, file.Data, pages)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil {
		logging.Log.Warnf("[REVIEW] caching extraction for %q failed: %v", file.Name, err)
	}

	return text, nil
}

// extractionCacheKey builds the cache key for one file and page window.
// Format: "extract:{sha256 of content}:p{start}-{end}"
func extractionCacheKey(data []byte, pages domain.PageRange) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("extract:%s:p%d-%d", hex.EncodeToString(sum[:]), pages.Start, pages.End)
}

// sampleText returns the leading slice of extracted text for previews
func sampleText(text string) string {
	runes := []rune(text)
	if len(runes) <= sampleRuneLimit {
		return text
	}
	return string(runes[:sampleRuneLimit]) + "..."
}
