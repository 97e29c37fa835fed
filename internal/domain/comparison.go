package domain

// MatchStatus classifies a designation's presence across the two drawing sets
type MatchStatus string

const (
	StatusMatch         MatchStatus = "match"
	StatusMissingInShop MatchStatus = "missing_in_shop"
	StatusExtraInShop   MatchStatus = "extra_in_shop"
)

// Label returns the human-readable form used in rendered reports
func (s MatchStatus) Label() string {
	switch s {
	case StatusMatch:
		return "Match"
	case StatusMissingInShop:
		return "Missing in Shop"
	case StatusExtraInShop:
		return "Extra in Shop"
	default:
		return string(s)
	}
}

// Comparison represents the set comparison between structural and shop members.
// All slices hold normalized designations sorted lexically.
type Comparison struct {
	Matching        []string `json:"matching"`
	MissingInShop   []string `json:"missingInShop"`
	ExtraInShop     []string `json:"extraInShop"`
	StructuralCount int      `json:"structuralCount"`
	ShopCount       int      `json:"shopCount"`
	MatchPercentage float64  `json:"matchPercentage"` // 0-100, against the structural set
}

// ReportRow represents one designation in the detailed comparison table
type ReportRow struct {
	Member            string      `json:"member"`
	Status            MatchStatus `json:"status"`
	InStructural      bool        `json:"inStructural"`
	InShop            bool        `json:"inShop"`
	StructuralContext string      `json:"structuralContext,omitempty"`
	ShopContext       string      `json:"shopContext,omitempty"`
}
