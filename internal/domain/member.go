package domain

// SectionType identifies the steel section family of a designation
type SectionType string

const (
	SectionUB      SectionType = "ub"      // Universal Beam
	SectionUC      SectionType = "uc"      // Universal Column
	SectionWB      SectionType = "wb"      // Welded Beam
	SectionTFB     SectionType = "tfb"     // Taper Flange Beam
	SectionWC      SectionType = "wc"      // Welded Column
	SectionSHS     SectionType = "shs"     // Square Hollow Section
	SectionRHS     SectionType = "rhs"     // Rectangular Hollow Section
	SectionCHS     SectionType = "chs"     // Circular Hollow Section
	SectionAngle   SectionType = "angle"   // Equal/Unequal Angle (UA/EA/L notation)
	SectionChannel SectionType = "channel" // Parallel Flange Channel / UCA
	SectionTee     SectionType = "tee"     // Tee cut from universal section
	SectionFlat    SectionType = "flat"    // Flat bar
	SectionPlate   SectionType = "plate"   // Plate
	SectionRod     SectionType = "rod"     // Threaded rod (metric M sizes)
)

// Member represents a single steel member designation found in drawing text.
// Normalized is the canonical comparison key; Raw preserves the text as it
// appeared on the drawing.
type Member struct {
	Raw        string      `json:"raw"`
	Normalized string      `json:"normalized"`
	Section    SectionType `json:"section"`
	LineNumber int         `json:"lineNumber"` // 1-based line within the extracted text
	Context    string      `json:"context"`    // trimmed source line the match came from
}
