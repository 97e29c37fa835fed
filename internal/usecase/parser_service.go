package usecase

import (
	"regexp"
	"strings"

	"github.com/steelcheck/backend/internal/domain"
	"github.com/steelcheck/backend/pkg/logging"
)

// MemberParser extracts Australian steel member designations (AS/NZS 3679
// families) from drawing text and normalizes every hit to one canonical form
type MemberParser struct {
	bareAngleSuffix    string
	enableDebugLogging bool
}

// ParserConfig holds configuration for the member parser
type ParserConfig struct {
	// BareAngleSuffix is the family applied to bare "L" angle notation
	// (75x75x6L) and to three-dimension angles with no suffix at all.
	// "UA" or "EA"; defaults to "UA".
	BareAngleSuffix    string
	EnableDebugLogging bool
}

// memberPattern couples one designation notation with its section family.
// Patterns run per line in declaration order and the first occurrence of a
// normalized value wins deduplication, so order decides which raw text and
// context get recorded for a designation.
type memberPattern struct {
	key     string
	section domain.SectionType
	re      *regexp.Regexp

	// noTrailingDigit rejects a hit when the next byte is a digit.
	// RE2 has no lookahead, so mass-less forms guard in code.
	noTrailingDigit bool
}

var memberPatterns = []memberPattern{
	{key: "ub", section: domain.SectionUB, re: regexp.MustCompile(`(?i)(\d+)UB(\d+(?:\.\d+)?)`)},                                          // 310UB46.2, 460UB82
	{key: "uc", section: domain.SectionUC, re: regexp.MustCompile(`(?i)(\d+)UC(\d+(?:\.\d+)?)`)},                                          // 200UC59.5, 310UC158
	{key: "wb", section: domain.SectionWB, re: regexp.MustCompile(`(?i)(\d+)WB(\d+(?:\.\d+)?)`)},                                          // 200WB52, 250WB37
	{key: "shs", section: domain.SectionSHS, re: regexp.MustCompile(`(?i)SHS(\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)`)},                         // SHS100x6, SHS150×10
	{key: "rhs", section: domain.SectionRHS, re: regexp.MustCompile(`(?i)RHS(\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)`)},      // RHS100x50x6
	{key: "chs", section: domain.SectionCHS, re: regexp.MustCompile(`(?i)CHS(\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)`)},                         // CHS114x6.0, CHS168×8
	{key: "angle", section: domain.SectionAngle, re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)(?:UA|EA|L)`)}, // 75x75x6UA, 100x100x8EA, 75x75x6L
	{key: "angle_ea", section: domain.SectionAngle, re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)EA(\d+(?:\.\d+)?)`)},                       // 75EA6, 100EA8
	{key: "angle_ua_alt", section: domain.SectionAngle, re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)UA(\d+(?:\.\d+)?)`)}, // 150x90UA10
	{key: "channel", section: domain.SectionChannel, re: regexp.MustCompile(`(?i)(\d+)(?:PFC|UCA)(\d+(?:\.\d+)?)`)},                       // 200PFC23, 150UCA23.4
	{key: "channel_simple", section: domain.SectionChannel, re: regexp.MustCompile(`(?i)(\d+)PFC`), noTrailingDigit: true},                // 150PFC (no mass)
	{key: "tee", section: domain.SectionTee, re: regexp.MustCompile(`(?i)(\d+)BT(\d+(?:\.\d+)?)`)},                                        // 180BT46.5
	{key: "flat", section: domain.SectionFlat, re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)(?:FLAT|FL)`)},               // 200x16FL, 200x16FLAT
	{key: "plate", section: domain.SectionPlate, re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)[x×](\d+(?:\.\d+)?)PL`)},   // 300x250x12PL
	{key: "rod", section: domain.SectionRod, re: regexp.MustCompile(`(?i)M(\d+)`)},                                                        // M24 threaded rod
	{key: "ub_alt", section: domain.SectionUB, re: regexp.MustCompile(`(?i)UB(\d+)[x×](\d+(?:\.\d+)?)`)},                                  // UB310x46.2
	{key: "uc_alt", section: domain.SectionUC, re: regexp.MustCompile(`(?i)UC(\d+)[x×](\d+(?:\.\d+)?)`)},                                  // UC200x59.5
	{key: "wb_alt", section: domain.SectionWB, re: regexp.MustCompile(`(?i)WB(\d+)[x×](\d+(?:\.\d+)?)`)},                                  // WB200x52
	{key: "tfb", section: domain.SectionTFB, re: regexp.MustCompile(`(?i)(\d+)TFB(\d+(?:\.\d+)?)`)},                                       // 180TFB46
	{key: "wc", section: domain.SectionWC, re: regexp.MustCompile(`(?i)(\d+)WC(\d+(?:\.\d+)?)`)},                                          // 310WC137
}

// NewMemberParser creates a new member parser
func NewMemberParser(config ParserConfig) *MemberParser {
	if config.BareAngleSuffix == "" {
		config.BareAngleSuffix = "UA"
	}
	return &MemberParser{
		bareAngleSuffix:    config.BareAngleSuffix,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ExtractMembers scans drawing text line by line and returns the unique
// member designations found, in first-seen order. The line number and
// trimmed source line of the first occurrence are kept for each designation.
func (p *MemberParser) ExtractMembers(text string) []domain.Member {
	members := make([]domain.Member, 0)
	if strings.TrimSpace(text) == "" {
		return members
	}

	lines := strings.Split(foldText(text), "\n")

	for lineIdx, line := range lines {
		for _, pat := range memberPatterns {
			for _, loc := range pat.re.FindAllStringSubmatchIndex(line, -1) {
				if pat.noTrailingDigit && loc[1] < len(line) && isDigit(line[loc[1]]) {
					continue
				}

				raw := line[loc[0]:loc[1]]
				normalized := p.normalize(raw, captureGroups(line, loc), pat.key)

				if p.enableDebugLogging {
					logging.Log.Debugf("[PARSE] %s -> %s (%s, line %d)", raw, normalized, pat.key, lineIdx+1)
				}

				members = append(members, domain.Member{
					Raw:        raw,
					Normalized: normalized,
					Section:    pat.section,
					LineNumber: lineIdx + 1,
					Context:    strings.TrimSpace(line),
				})
			}
		}
	}

	unique := dedupeMembers(members)

	if p.enableDebugLogging {
		logging.Log.Debugf("[PARSE] %d hits, %d unique designations", len(members), len(unique))
	}

	return unique
}

// normalize maps a raw match to its canonical designation. The result is
// stable: normalizing an already-canonical designation returns it unchanged.
func (p *MemberParser) normalize(raw string, groups []string, key string) string {
	s := foldDesignation(raw)

	switch key {
	case "ub_alt", "uc_alt", "wb_alt":
		// Reorder to depth-first: UB310x46.2 -> 310UB46.2
		family := strings.ToUpper(strings.TrimSuffix(key, "_alt"))
		return groups[0] + family + groups[1]

	case "angle_ea":
		// Expand the short symmetric form: 75EA6 -> 75x75x6EA
		return groups[0] + "x" + groups[0] + "x" + groups[1] + "EA"

	case "angle", "angle_ua_alt":
		switch {
		case strings.Contains(s, "UA"), strings.Contains(s, "EA"):
			return s
		case strings.Contains(s, "L"):
			return strings.ReplaceAll(s, "L", p.bareAngleSuffix)
		default:
			return s + p.bareAngleSuffix
		}

	case "channel_simple":
		// Placeholder mass so 150PFC compares as 150PFC0
		return s + "0"

	case "flat":
		return strings.TrimSuffix(s, "AT") // FLAT and FL both canonicalize to FL
	}

	return s
}

// foldDesignation uppercases a designation and folds every dimension
// separator (X or the multiplication sign) to a lowercase x
func foldDesignation(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "X", "x")
	return strings.ReplaceAll(s, "×", "x")
}

// dedupeMembers removes duplicates by normalized value, preserving
// first-seen order
func dedupeMembers(members []domain.Member) []domain.Member {
	seen := make(map[string]bool, len(members))
	unique := make([]domain.Member, 0, len(members))

	for _, m := range members {
		if seen[m.Normalized] {
			continue
		}
		seen[m.Normalized] = true
		unique = append(unique, m)
	}

	return unique
}

// MergeMembers combines member lists from several documents into one
// deduplicated list, first-seen order across the inputs
func MergeMembers(lists ...[]domain.Member) []domain.Member {
	var combined []domain.Member
	for _, list := range lists {
		combined = append(combined, list...)
	}
	return dedupeMembers(combined)
}

// CountByType groups normalized designations by section family for the
// extraction summary
func CountByType(members []domain.Member) map[domain.SectionType][]string {
	byType := make(map[domain.SectionType][]string)
	for _, m := range members {
		byType[m.Section] = append(byType[m.Section], m.Normalized)
	}
	return byType
}

func captureGroups(line string, loc []int) []string {
	groups := make([]string, 0, len(loc)/2-1)
	for i := 2; i < len(loc); i += 2 {
		if loc[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, line[loc[i]:loc[i+1]])
	}
	return groups
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
