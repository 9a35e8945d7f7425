package review

import (
	"fmt"
	"strconv"

	"github.com/avoronin/message-constructor/internal/domain"
)

// Warning types.
const (
	WarningDiscountTooHigh   = "discount_too_high"
	WarningPriceGap          = "price_gap"
	WarningPortfolioMismatch = "portfolio_mismatch"
)

// Warning is an advisory issue with the answers. Warnings never block
// generation.
type Warning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// CheckWarnings runs the independent advisory checks in a fixed order and
// returns every one that fires.
func CheckWarnings(a *domain.UserAnswers) []Warning {
	warnings := []Warning{}

	if a.DiscountPercent > 70 {
		warnings = append(warnings, Warning{
			Type: WarningDiscountTooHigh,
			Message: fmt.Sprintf("Скидка %s%% выглядит неправдоподобно. Рекомендуем 20-40%%.",
				strconv.FormatFloat(a.DiscountPercent, 'f', -1, 64)),
		})
	}

	if a.EntryPrice > 0 && a.FullPrice > 0 {
		if ratio := a.FullPrice / a.EntryPrice; ratio > 10 {
			warnings = append(warnings, Warning{
				Type:    WarningPriceGap,
				Message: fmt.Sprintf("Разница %.1fx - клиент может почувствовать агрессивный апсейл.", ratio),
			})
		}
	}

	if !a.HasPortfolio && a.CTA == "show_examples" {
		warnings = append(warnings, Warning{
			Type:    WarningPortfolioMismatch,
			Message: `У вас нет портфолио, но CTA "показать примеры". Лучше "обсудить проект".`,
		})
	}

	return warnings
}

// Validate checks the required answer fields in a fixed order and returns
// an error describing the first missing one. Errors are not aggregated.
func Validate(a *domain.UserAnswers) error {
	required := []struct {
		key   string
		value string
	}{
		{"name", a.Name},
		{"service", a.Service},
		{"position", a.Position},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("Поле %q обязательно", f.key)
		}
	}
	return nil
}
