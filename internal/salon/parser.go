// Package salon turns pasted spreadsheet rows into salon records and picks
// the most relevant pain point for a record.
package salon

import (
	"strconv"
	"strings"

	"github.com/avoronin/message-constructor/internal/domain"
)

// Column positions in the upstream export (Moscow_SalonKrasoty_PACK).
// The schema is positional: there is no header row and no quoting, cells
// are separated by horizontal tabs. Columns 12-14 and 16 are unused.
const (
	colName = iota
	colCategory
	colSpecialization
	colAddress
	colPhones
	colEmail
	colSite
	colSchedule
	colTelegram
	colTelegramUsername
	colVK
	colWhatsApp
	_
	_
	_
	colRating
	_
	colReviewsCount
	colDistanceFromCenter
	colZone
	colLatitude
	colLongitude
	colCollectionDate
)

// ParseRow parses one tab-delimited row into a SalonRecord. Returns nil for
// empty or whitespace-only input. Rows with fewer columns than the schema
// are not an error: missing cells become empty/absent fields.
func ParseRow(raw string) *domain.SalonRecord {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	cells := strings.Split(raw, "\t")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	cell := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}

	return &domain.SalonRecord{
		Name:             cell(colName),
		Category:         cell(colCategory),
		Specialization:   cell(colSpecialization),
		Address:          cell(colAddress),
		Phones:           cell(colPhones),
		Email:            cell(colEmail),
		HasSite:          hasSite(cell(colSite)),
		Schedule:         cell(colSchedule),
		Telegram:         cell(colTelegram),
		TelegramUsername: cell(colTelegramUsername),
		VK:               cell(colVK),
		WhatsApp:         cell(colWhatsApp),

		Rating:             parseFloatCell(cell(colRating)),
		ReviewsCount:       parseIntCell(cell(colReviewsCount)),
		DistanceFromCenter: parseFloatCell(cell(colDistanceFromCenter)),
		Zone:               cell(colZone),
		Latitude:           parseFloatCell(cell(colLatitude)),
		Longitude:          parseFloatCell(cell(colLongitude)),
		CollectionDate:     cell(colCollectionDate),
	}
}

// hasSite reports whether the site cell holds a real value. The upstream
// export writes the literals "nan" or "NaN" for missing sites; only those
// exact spellings count as empty.
func hasSite(cell string) bool {
	return cell != "" && cell != "nan" && cell != "NaN"
}

// parseFloatCell parses a locale-invariant decimal. A cell that fails to
// parse yields absent, not zero.
func parseFloatCell(cell string) *float64 {
	if cell == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntCell(cell string) *int {
	if cell == "" {
		return nil
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		return nil
	}
	return &v
}
