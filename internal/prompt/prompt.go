// Package prompt assembles the instruction text handed to the generation
// collaborator. Assembly is deterministic: identical inputs always produce
// byte-identical output, and nothing here performs I/O.
package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/avoronin/message-constructor/internal/domain"
)

// System is the system prompt sent with every generation request.
const System = `
Ты — эксперт по B2B холодным продажам в beauty-индустрии. Твоя задача — генерировать персонализированные сообщения для владельцев салонов красоты.

ОБЯЗАТЕЛЬНЫЕ ПРИНЦИПЫ:

1. ЗАБОТА О КЛИЕНТЕ:
   - Используй данные салона (название, район, рейтинг)
   - Говори на языке выгоды, не функций
   - Убирай риски

2. СТРУКТУРА PAS:
   - Problem: обозначь боль
   - Agitate: усиль проблему мягко
   - Solution: дай решение с КОНКРЕТНЫМИ ЦИФРАМИ

3. КОНКРЕТИКА:
   - ❌ "улучшим бизнес"
   - ✅ "+30 записей в месяц"

4. СНЯТИЕ ВОЗРАЖЕНИЙ:
   - Цена → привязка к ROI
   - Риск → гарантии
   - "Не подойдёт" → мягкий отказ встроен

5. ДЛИНА: 7-10 строк (20-30 секунд чтения)

6. ЧЕСТНОСТЬ = ПРОДАЖИ:
   - Новичок → предложи демо/скидку
   - Нет портфолио → НЕ предлагай "посмотреть примеры"

ЗАПРЕЩЕНО:
- "Только сегодня", "последний шанс"
- Обращение на "ты"
- Шаблонность

Генерируй так, чтобы владелец салона почувствовал: этот человек реально может помочь.
`

// VariationSystem is the system prompt for the rewrite endpoint.
const VariationSystem = "Ты эксперт по рерайтингу холодных сообщений."

// Build renders the structured user prompt from the salon record and the
// wizard answers. Sections appear in a fixed order; pricing, guarantees and
// urgency are conditional.
func Build(rec *domain.SalonRecord, a *domain.UserAnswers) string {
	var b strings.Builder

	b.WriteString("САЛОН:\n")
	fmt.Fprintf(&b, "- Название: %s\n", rec.Name)
	fmt.Fprintf(&b, "- Зона: %s\n", rec.Zone)
	fmt.Fprintf(&b, "- Рейтинг: %s\n", ratingText(rec))
	fmt.Fprintf(&b, "- Отзывов: %s\n", reviewsText(rec))
	fmt.Fprintf(&b, "- Есть сайт: %s\n\n", yesNo(rec.HasSite))

	b.WriteString("ПРОДАВЕЦ:\n")
	fmt.Fprintf(&b, "- Имя: %s\n", a.Name)
	fmt.Fprintf(&b, "- Позиция: %s\n", a.PositionLabel())
	fmt.Fprintf(&b, "- Услуга: %s\n", a.Service)
	fmt.Fprintf(&b, "- Опыт: %d проектов\n\n", a.ProjectsTotal)

	if a.EntryPrice > 0 {
		b.WriteString("ЦЕНЫ:\n")
		fmt.Fprintf(&b, "- Цена входа: %s₽\n", formatPrice(a.EntryPrice))
		// A discount of 100% or more makes the reference price undefined
		// (division by zero or a negative), so the discount line is
		// dropped while the entry price still renders.
		if a.DiscountEnabled && a.DiscountPercent > 0 && a.DiscountPercent < 100 {
			old := ReferencePrice(a.EntryPrice, a.DiscountPercent)
			fmt.Fprintf(&b, "- Скидка: было %s₽ → сейчас %s₽\n", formatPrice(old), formatPrice(a.EntryPrice))
			fmt.Fprintf(&b, "- Условие: %s\n", a.DiscountCondition)
		}
		b.WriteString("\n")
	}

	b.WriteString("РЕЗУЛЬТАТ:\n")
	fmt.Fprintf(&b, "- Эффект: %s\n", a.Result)
	fmt.Fprintf(&b, "- Срок эффекта: %s\n", a.ResultTimeframe)
	if a.ROIPeriod != "" {
		fmt.Fprintf(&b, "- Окупаемость: %s\n", a.ROIPeriod)
	}
	b.WriteString("\n")

	if len(a.Guarantees) > 0 {
		b.WriteString("ГАРАНТИИ:\n")
		for _, g := range a.Guarantees {
			fmt.Fprintf(&b, "- %s\n", g)
		}
		b.WriteString("\n")
	}

	if a.UrgencyEnabled {
		fmt.Fprintf(&b, "ДЕФИЦИТ (мягко!):\n%s\n\n", a.UrgencyText)
	}

	b.WriteString("ЗАДАЧА:\n")
	fmt.Fprintf(&b, "Напиши холодное B2B сообщение для салона %s от лица %s.\n\n", rec.Name, a.Name)

	b.WriteString("СТРУКТУРА (7-10 строк):\n")
	fmt.Fprintf(&b, "1. Приветствие (1 строка): \"Добрый день! Меня зовут %s, %s. Нашёл %s в 2ГИС в %s.\"\n",
		a.Name, a.PositionLabel(), rec.Name, rec.Zone)
	b.WriteString("2. Контекстное наблюдение - боль салона (2 строки)\n")
	fmt.Fprintf(&b, "3. Решение + результат: \"Помогаю таким салонам %s.\"\n", a.Result)
	b.WriteString("4. Цена + окупаемость (1-2 строки)\n")
	b.WriteString("5. Снятие рисков (если есть)\n")
	fmt.Fprintf(&b, "6. CTA: %s\n", a.CTA)
	b.WriteString("7. Мягкое закрытие: \"Если сейчас неактуально - дайте знать.\"\n")
	fmt.Fprintf(&b, "8. Подпись: \"С уважением, %s\"\n\n", a.Name)

	b.WriteString("ПРАВИЛА:\n")
	b.WriteString("✅ Конкретные цифры\n")
	b.WriteString("✅ Привязка цены к ROI\n")
	b.WriteString("✅ Один абзац = одна мысль\n")
	b.WriteString("❌ Не обращайся на \"ты\"\n")
	b.WriteString("❌ Не ври про опыт\n\n")

	b.WriteString("Генерируй:\n")

	return b.String()
}

// Variation builds the rewrite prompt for an already generated message.
func Variation(original string) string {
	return "\nПерепиши это сообщение ДРУГИМИ СЛОВАМИ, сохранив все цифры и структуру:\n\n" +
		original + "\n\nНовая версия:\n"
}

// ReferencePrice computes the pre-discount price shown next to a
// discounted entry price: round(entry / (1 - percent/100)). Callers must
// ensure 0 < percent < 100.
func ReferencePrice(entry, percent float64) float64 {
	return math.Round(entry / (1 - percent/100))
}

func ratingText(rec *domain.SalonRecord) string {
	if rec.Rating == nil {
		return "нет (новый салон)"
	}
	return strconv.FormatFloat(*rec.Rating, 'f', -1, 64)
}

func reviewsText(rec *domain.SalonRecord) string {
	if rec.ReviewsCount == nil {
		return "нет"
	}
	return strconv.Itoa(*rec.ReviewsCount)
}

func yesNo(v bool) string {
	if v {
		return "ДА"
	}
	return "НЕТ"
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
