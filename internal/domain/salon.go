// Package domain contains core domain types for the message constructor.
package domain

// SalonRecord is an immutable snapshot of one salon, parsed from a single
// tab-delimited spreadsheet row. Optional numeric fields are nil when the
// source cell was empty or did not parse as a number.
type SalonRecord struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Specialization   string `json:"specialization"`
	Address          string `json:"address"`
	Phones           string `json:"phones"`
	Email            string `json:"email"`
	HasSite          bool   `json:"has_site"`
	Schedule         string `json:"schedule"`
	Telegram         string `json:"telegram"`
	TelegramUsername string `json:"telegram_username"`
	VK               string `json:"vk"`
	WhatsApp         string `json:"whatsapp"`

	Rating             *float64 `json:"rating"`
	ReviewsCount       *int     `json:"reviews_count"`
	DistanceFromCenter *float64 `json:"distance_from_center"`
	Zone               string   `json:"zone"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	CollectionDate     string   `json:"collection_date"`
}

// IsValid reports whether the record is usable. A record without a name is
// treated as unparsed.
func (s *SalonRecord) IsValid() bool {
	return s != nil && s.Name != ""
}
