package domain

import (
	"encoding/json"
	"fmt"
)

// Severity ranks pain-point candidates. Higher values win selection.
type Severity int

const (
	SeverityMedium Severity = iota + 1
	SeverityHigh
	SeverityCritical
)

// String returns the wire name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a severity from its wire name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "critical":
		*s = SeverityCritical
	case "high":
		*s = SeverityHigh
	case "medium":
		*s = SeverityMedium
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// Pain reason tags.
const (
	ReasonNewBusiness     = "new_business"
	ReasonNoWebsite       = "no_website"
	ReasonScalingNeeded   = "scaling_needed"
	ReasonLowRating       = "low_rating"
	ReasonFewReviews      = "few_reviews"
	ReasonPremiumLocation = "premium_location"
	ReasonGeneric         = "generic"
)

// PainCandidate is one heuristically derived business concern for a salon.
// Candidates are ephemeral: generated fresh on every evaluation.
type PainCandidate struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
	Reason   string   `json:"reason"`
}
