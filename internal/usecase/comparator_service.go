package usecase

import (
	"sort"

	"github.com/steelcheck/backend/internal/domain"
	"github.com/steelcheck/backend/pkg/logging"
)

// contextSnippetLimit caps the source-line context carried into report rows
const contextSnippetLimit = 50

// Comparator computes the set comparison between structural and shop drawing
// members. All operations key on normalized designations.
type Comparator struct {
	enableDebugLogging bool
}

// NewComparator creates a new member comparator
func NewComparator(enableDebugLogging bool) *Comparator {
	return &Comparator{
		enableDebugLogging: enableDebugLogging,
	}
}

// Compare identifies matching, missing and extra designations between the
// two sides. The match percentage is measured against the structural set,
// with a guard so an empty structural side yields 0 rather than dividing by
// zero. Result slices are sorted for stable output.
func (c *Comparator) Compare(structural, shop []domain.Member) domain.Comparison {
	structuralSet := normalizedSet(structural)
	shopSet := normalizedSet(shop)

	matching := intersectSets(structuralSet, shopSet)
	missing := subtractSets(structuralSet, shopSet)
	extra := subtractSets(shopSet, structuralSet)

	percentage := float64(len(matching)) / float64(max(len(structuralSet), 1)) * 100

	if c.enableDebugLogging {
		logging.Log.Debugf("[COMPARE] structural=%d shop=%d matching=%d missing=%d extra=%d (%.1f%%)",
			len(structuralSet), len(shopSet), len(matching), len(missing), len(extra), percentage)
	}

	return domain.Comparison{
		Matching:        matching,
		MissingInShop:   missing,
		ExtraInShop:     extra,
		StructuralCount: len(structural),
		ShopCount:       len(shop),
		MatchPercentage: percentage,
	}
}

// BuildReport produces the per-designation detail table: the union of both
// sides sorted by designation, each row carrying presence flags and the
// source-line context of the first occurrence on each side.
func (c *Comparator) BuildReport(structural, shop []domain.Member) []domain.ReportRow {
	structuralFirst := firstByNormalized(structural)
	shopFirst := firstByNormalized(shop)

	names := make([]string, 0, len(structuralFirst)+len(shopFirst))
	seen := make(map[string]bool, len(structuralFirst)+len(shopFirst))
	for _, m := range structural {
		if !seen[m.Normalized] {
			seen[m.Normalized] = true
			names = append(names, m.Normalized)
		}
	}
	for _, m := range shop {
		if !seen[m.Normalized] {
			seen[m.Normalized] = true
			names = append(names, m.Normalized)
		}
	}
	sort.Strings(names)

	rows := make([]domain.ReportRow, 0, len(names))
	for _, name := range names {
		structMember, inStructural := structuralFirst[name]
		shopMember, inShop := shopFirst[name]

		status := domain.StatusMatch
		switch {
		case inStructural && !inShop:
			status = domain.StatusMissingInShop
		case inShop && !inStructural:
			status = domain.StatusExtraInShop
		}

		rows = append(rows, domain.ReportRow{
			Member:            name,
			Status:            status,
			InStructural:      inStructural,
			InShop:            inShop,
			StructuralContext: contextSnippet(structMember.Context),
			ShopContext:       contextSnippet(shopMember.Context),
		})
	}

	return rows
}

// contextSnippet truncates a source line to the report limit, counted in
// runes so multi-byte drawing text does not get split mid-character
func contextSnippet(context string) string {
	runes := []rune(context)
	if len(runes) <= contextSnippetLimit {
		return context
	}
	return string(runes[:contextSnippetLimit]) + "..."
}

// firstByNormalized indexes members by normalized designation, keeping the
// first occurrence
func firstByNormalized(members []domain.Member) map[string]domain.Member {
	first := make(map[string]domain.Member, len(members))
	for _, m := range members {
		if _, ok := first[m.Normalized]; !ok {
			first[m.Normalized] = m
		}
	}
	return first
}

func normalizedSet(members []domain.Member) map[string]bool {
	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[m.Normalized] = true
	}
	return set
}

// intersectSets returns the sorted keys present in both sets
func intersectSets(a, b map[string]bool) []string {
	result := make([]string, 0)
	for key := range a {
		if b[key] {
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result
}

// subtractSets returns the sorted keys present in a but not in b
func subtractSets(a, b map[string]bool) []string {
	result := make([]string, 0)
	for key := range a {
		if !b[key] {
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result
}
