// Package preview renders the local, template-only approximation of the
// outreach message shown while the seller fills out the form. The real
// message comes from the generation collaborator; the preview never calls
// it.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avoronin/message-constructor/internal/domain"
	"github.com/avoronin/message-constructor/internal/prompt"
	"github.com/avoronin/message-constructor/internal/review"
	"github.com/avoronin/message-constructor/internal/salon"
)

// ctaTexts maps call-to-action keys to their preview phrasing.
var ctaTexts = map[string]string{
	"show_examples":  "Могу показать примеры работ.",
	"call_15min":     "Готов созвониться на 10-15 минут.",
	"free_audit":     "Могу сделать бесплатный аудит.",
	"free_prototype": "Могу сделать бесплатный прототип.",
	"send_proposal":  "Вышлю детальное предложение.",
}

// Render builds the preview text. Returns "" until both a recognized salon
// and the seller's name are available.
func Render(rec *domain.SalonRecord, a *domain.UserAnswers) string {
	if !rec.IsValid() || a.Name == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("Добрый день!\n\n")
	b.WriteString("Меня зовут " + a.Name)
	if a.Position != "" {
		b.WriteString(", " + a.PositionLabel())
	}
	b.WriteString(". " + Greeting(rec) + "\n\n")

	pain := salon.SelectPain(rec, a.Service)
	b.WriteString(pain.Text + "\n\n")

	if a.Result != "" {
		fmt.Fprintf(&b, "Помогаю таким салонам %s.\n\n", a.Result)
	}

	if a.EntryPrice > 0 {
		if a.DiscountEnabled && a.DiscountPercent > 0 && a.DiscountPercent < 100 {
			old := prompt.ReferencePrice(a.EntryPrice, a.DiscountPercent)
			fmt.Fprintf(&b, "Обычная цена %s₽, сейчас %s₽", formatPrice(old), formatPrice(a.EntryPrice))
			if a.DiscountCondition != "" {
				fmt.Fprintf(&b, " (%s)", a.DiscountCondition)
			}
			b.WriteString(".\n\n")
		} else {
			fmt.Fprintf(&b, "Цена: %s₽.\n\n", formatPrice(a.EntryPrice))
		}
	}

	if text, ok := ctaTexts[a.CTA]; ok {
		b.WriteString(text + "\n\n")
	}

	if a.Tone != "business" {
		b.WriteString("Если сейчас неактуально - просто дайте знать.\n\n")
	}

	b.WriteString("С уважением,\n" + a.Name)
	return b.String()
}

// Greeting builds the personalized opener: salon name, street extracted
// from the address, lowercased zone.
func Greeting(rec *domain.SalonRecord) string {
	parts := []string{"Нашёл " + rec.Name}

	if rec.Address != "" {
		street := strings.Replace(rec.Address, "Москва, ", "", 1)
		street = strings.SplitN(street, ",", 2)[0]
		parts = append(parts, "на "+street)
	}
	if rec.Zone != "" {
		parts = append(parts, "в "+strings.ToLower(rec.Zone))
	}

	return strings.Join(parts, " ") + "."
}

// Metrics annotates a preview or generated message for live feedback.
type Metrics struct {
	Personalization bool `json:"personalization"`
	Numbers         int  `json:"numbers"`
	Risks           int  `json:"risks"`
	Length          int  `json:"length"`
	Score           int  `json:"score"`
}

// Measure computes display metrics for a message.
func Measure(text string, rec *domain.SalonRecord, guarantees []string) Metrics {
	return Metrics{
		Personalization: rec.IsValid() && strings.Contains(text, rec.Name),
		Numbers:         countNumberRuns(text),
		Risks:           len(guarantees),
		Length:          review.CountLines(text),
		Score:           review.Score(text, rec, guarantees),
	}
}

// countNumberRuns counts maximal runs of consecutive digits.
func countNumberRuns(text string) int {
	n := 0
	inRun := false
	for _, r := range text {
		if r >= '0' && r <= '9' {
			if !inRun {
				n++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	return n
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
