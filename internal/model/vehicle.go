package model

// SourceTier identifies which ranked data source produced a YearRange.
type SourceTier string

const (
	// TierCached marks a range served from the in-memory cache.
	TierCached SourceTier = "cached"
	// TierTrims marks a range derived from the vehicle-trim provider (live source A).
	TierTrims SourceTier = "trims"
	// TierRegistry marks a range derived from the vehicle-registry provider (live source B).
	TierRegistry SourceTier = "registry"
	// TierCatalog marks a range taken from the static reference catalog.
	TierCatalog SourceTier = "catalog"
	// TierFallback marks the generic sanity range used when nothing else matched.
	TierFallback SourceTier = "fallback"
)

// YearRange is the resolved production-year window for a brand/model pair.
// Confidence is false only when the range comes from generic sanity bounds
// rather than brand/model-specific data.
type YearRange struct {
	MinYear    int        `json:"min_year"`
	MaxYear    int        `json:"max_year"`
	Source     SourceTier `json:"source"`
	Confidence bool       `json:"confidence"`
}

// Contains reports whether year falls inside the range (inclusive).
func (r YearRange) Contains(year int) bool {
	return year >= r.MinYear && year <= r.MaxYear
}

// LocalizedString carries the same message in both UI languages.
type LocalizedString struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// SuggestionField names the input field a suggestion applies to.
type SuggestionField string

const (
	SuggestionBrand SuggestionField = "brand"
	SuggestionModel SuggestionField = "model"
)

// Suggestion proposes a corrected value for a misspelled or misplaced field.
type Suggestion struct {
	Field          SuggestionField `json:"field"`
	CorrectedValue string          `json:"corrected_value"`
}

// ValidationVerdict is the structured outcome of a validate call.
// Produced fresh per call, never mutated after return.
type ValidationVerdict struct {
	IsValid    bool             `json:"is_valid"`
	Brand      string           `json:"brand,omitempty"`
	Model      string           `json:"model,omitempty"`
	Year       int              `json:"year,omitempty"`
	YearRange  *YearRange       `json:"year_range,omitempty"`
	Message    *LocalizedString `json:"message,omitempty"`
	Advisory   *LocalizedString `json:"advisory,omitempty"`
	Suggestion *Suggestion      `json:"suggestion,omitempty"`
}
