package salon

import (
	"fmt"
	"strconv"

	"github.com/avoronin/message-constructor/internal/domain"
)

// ZoneCenter is the zone label the upstream export uses for central Moscow.
const ZoneCenter = "Центр"

// ServiceWebsite is the service key that triggers the no-website rule.
const ServiceWebsite = "website"

// painRule appends a candidate when its condition holds. Rules are
// independent; several can match the same salon.
type painRule func(rec *domain.SalonRecord, service string) *domain.PainCandidate

// painRules in declaration order. Declaration order breaks severity ties.
var painRules = []painRule{
	newBusinessRule,
	noWebsiteRule,
	scalingNeededRule,
	lowRatingRule,
	fewReviewsRule,
	premiumLocationRule,
}

// SelectPain evaluates every rule against the record and returns the single
// candidate with the highest severity; on equal severity the earlier rule
// wins. When nothing matches it returns the generic fallback, which is the
// defined default rather than an error.
func SelectPain(rec *domain.SalonRecord, service string) domain.PainCandidate {
	var best *domain.PainCandidate
	for _, rule := range painRules {
		c := rule(rec, service)
		if c == nil {
			continue
		}
		if best == nil || c.Severity > best.Severity {
			best = c
		}
	}
	if best == nil {
		return domain.PainCandidate{
			Severity: domain.SeverityMedium,
			Text:     "Нашёл ваш салон в 2ГИС",
			Reason:   domain.ReasonGeneric,
		}
	}
	return *best
}

func newBusinessRule(rec *domain.SalonRecord, _ string) *domain.PainCandidate {
	if rec.Rating == nil || (rec.ReviewsCount != nil && *rec.ReviewsCount == 0) {
		return &domain.PainCandidate{
			Severity: domain.SeverityHigh,
			Text:     "Салон недавно на рынке - самое время выстроить цифровую инфраструктуру",
			Reason:   domain.ReasonNewBusiness,
		}
	}
	return nil
}

func noWebsiteRule(rec *domain.SalonRecord, service string) *domain.PainCandidate {
	if rec.HasSite || service != ServiceWebsite {
		return nil
	}
	zoneText := "конкуренция растёт"
	if rec.Zone == ZoneCenter {
		zoneText = "работаете в центре"
	}
	return &domain.PainCandidate{
		Severity: domain.SeverityCritical,
		Text:     fmt.Sprintf("Пока нет сайта, хотя %s - теряете клиентов из Яндекса/Google", zoneText),
		Reason:   domain.ReasonNoWebsite,
	}
}

func scalingNeededRule(rec *domain.SalonRecord, _ string) *domain.PainCandidate {
	if rec.Rating != nil && *rec.Rating >= 4.5 && reviewsOrZero(rec) > 50 {
		return &domain.PainCandidate{
			Severity: domain.SeverityMedium,
			Text: fmt.Sprintf("Отличный рейтинг %s и %d отзывов - бизнес идёт, пора автоматизировать процессы",
				formatRating(*rec.Rating), reviewsOrZero(rec)),
			Reason: domain.ReasonScalingNeeded,
		}
	}
	return nil
}

func lowRatingRule(rec *domain.SalonRecord, _ string) *domain.PainCandidate {
	if rec.Rating != nil && *rec.Rating < 4.0 && reviewsOrZero(rec) > 10 {
		return &domain.PainCandidate{
			Severity: domain.SeverityHigh,
			Text: fmt.Sprintf("Рейтинг %s можно поднять - правильная система работы с клиентами поможет",
				formatRating(*rec.Rating)),
			Reason: domain.ReasonLowRating,
		}
	}
	return nil
}

func fewReviewsRule(rec *domain.SalonRecord, _ string) *domain.PainCandidate {
	if rec.Rating != nil && reviewsOrZero(rec) < 10 {
		return &domain.PainCandidate{
			Severity: domain.SeverityMedium,
			Text:     "Хороший старт, но отзывов пока немного - нужна система для активации клиентов",
			Reason:   domain.ReasonFewReviews,
		}
	}
	return nil
}

func premiumLocationRule(rec *domain.SalonRecord, _ string) *domain.PainCandidate {
	if rec.Zone == ZoneCenter {
		return &domain.PainCandidate{
			Severity: domain.SeverityMedium,
			Text:     "Центр - дорогая аудитория, которая ищет салоны в интернете. Важно быть видимым.",
			Reason:   domain.ReasonPremiumLocation,
		}
	}
	return nil
}

// reviewsOrZero treats an absent review count as zero for threshold checks.
func reviewsOrZero(rec *domain.SalonRecord) int {
	if rec.ReviewsCount == nil {
		return 0
	}
	return *rec.ReviewsCount
}

// formatRating renders a rating the way the source data shows it: "4.5",
// "5" - no trailing zeros.
func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
