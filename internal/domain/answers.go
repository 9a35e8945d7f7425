package domain

// UserAnswers accumulates wizard responses from the seller filling out the
// form. Zero values mean "not answered yet".
type UserAnswers struct {
	Name           string `json:"name"`
	Position       string `json:"position"`
	PositionCustom string `json:"position_custom,omitempty"`
	Service        string `json:"service"`
	ProjectsTotal  int    `json:"projects_total"`

	EntryPrice float64 `json:"entry_price"`
	FullPrice  float64 `json:"full_price"`

	// DiscountPercent is only meaningful when DiscountEnabled is set.
	DiscountEnabled   bool    `json:"discount_enabled"`
	DiscountPercent   float64 `json:"discount_percent"`
	DiscountCondition string  `json:"discount_condition"`

	Result          string `json:"result"`
	ResultTimeframe string `json:"result_timeframe"`
	ROIPeriod       string `json:"roi_period"`

	Guarantees []string `json:"guarantees"`

	UrgencyEnabled bool   `json:"urgency_enabled"`
	UrgencyText    string `json:"urgency_text"`

	HasPortfolio bool   `json:"has_portfolio"`
	CTA          string `json:"cta"`
	Tone         string `json:"tone"`
}

// PositionLabel returns the position text to show in a message, preferring
// the free-form value when the seller picked "custom".
func (a *UserAnswers) PositionLabel() string {
	if a.Position == "custom" && a.PositionCustom != "" {
		return a.PositionCustom
	}
	return a.Position
}
