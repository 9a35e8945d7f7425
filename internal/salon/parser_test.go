package salon

import (
	"strings"
	"testing"
)

// buildRow assembles a tab-delimited row with the given cells at their
// column positions.
func buildRow(cells map[int]string) string {
	row := make([]string, 23)
	for i, v := range cells {
		row[i] = v
	}
	return strings.Join(row, "\t")
}

func TestParseRowEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t", "\n\t  \n"} {
		if rec := ParseRow(input); rec != nil {
			t.Errorf("ParseRow(%q) = %+v, want nil", input, rec)
		}
	}
}

func TestParseRowFullRow(t *testing.T) {
	row := buildRow(map[int]string{
		0:  "Салон Лилия",
		1:  "Салон красоты",
		2:  "Маникюр",
		3:  "Москва, Тверская 1, офис 2",
		4:  "+7 999 123-45-67",
		5:  "info@liliya.ru",
		6:  "liliya.ru",
		7:  "10:00-22:00",
		9:  "@liliya_salon",
		15: "4.8",
		17: "120",
		18: "1.2",
		19: "Центр",
		20: "55.75",
		21: "37.61",
		22: "2024-01-15",
	})

	rec := ParseRow(row)
	if !rec.IsValid() {
		t.Fatal("expected a valid record")
	}

	if rec.Name != "Салон Лилия" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Category != "Салон красоты" {
		t.Errorf("Category = %q", rec.Category)
	}
	if !rec.HasSite {
		t.Error("HasSite = false, want true")
	}
	if rec.TelegramUsername != "@liliya_salon" {
		t.Errorf("TelegramUsername = %q", rec.TelegramUsername)
	}
	if rec.Rating == nil || *rec.Rating != 4.8 {
		t.Errorf("Rating = %v, want 4.8", rec.Rating)
	}
	if rec.ReviewsCount == nil || *rec.ReviewsCount != 120 {
		t.Errorf("ReviewsCount = %v, want 120", rec.ReviewsCount)
	}
	if rec.DistanceFromCenter == nil || *rec.DistanceFromCenter != 1.2 {
		t.Errorf("DistanceFromCenter = %v, want 1.2", rec.DistanceFromCenter)
	}
	if rec.Zone != "Центр" {
		t.Errorf("Zone = %q", rec.Zone)
	}
	if rec.Latitude == nil || *rec.Latitude != 55.75 {
		t.Errorf("Latitude = %v", rec.Latitude)
	}
	if rec.CollectionDate != "2024-01-15" {
		t.Errorf("CollectionDate = %q", rec.CollectionDate)
	}
}

func TestParseRowHasSite(t *testing.T) {
	tests := []struct {
		cell string
		want bool
	}{
		{"", false},
		{"nan", false},
		{"NaN", false},
		{"NAN", true}, // only the exact literals count as empty
		{"Nan", true},
		{"yes", true},
		{"liliya.ru", true},
	}
	for _, tt := range tests {
		rec := ParseRow(buildRow(map[int]string{0: "Салон", 6: tt.cell}))
		if rec.HasSite != tt.want {
			t.Errorf("has_site for cell %q = %v, want %v", tt.cell, rec.HasSite, tt.want)
		}
	}
}

func TestParseRowShortRow(t *testing.T) {
	rec := ParseRow("Салон\tКатегория")
	if rec == nil {
		t.Fatal("short row should still parse")
	}
	if rec.Name != "Салон" || rec.Category != "Категория" {
		t.Errorf("got %q / %q", rec.Name, rec.Category)
	}
	if rec.Rating != nil || rec.ReviewsCount != nil || rec.Zone != "" {
		t.Error("missing columns must be absent, not populated")
	}
}

func TestParseRowNumericFailuresAreAbsent(t *testing.T) {
	rec := ParseRow(buildRow(map[int]string{0: "Салон", 15: "нет", 17: "много", 18: "-"}))
	if rec.Rating != nil {
		t.Errorf("Rating = %v, want nil for unparsable cell", rec.Rating)
	}
	if rec.ReviewsCount != nil {
		t.Errorf("ReviewsCount = %v, want nil for unparsable cell", rec.ReviewsCount)
	}
	if rec.DistanceFromCenter != nil {
		t.Errorf("DistanceFromCenter = %v, want nil", rec.DistanceFromCenter)
	}
}

func TestParseRowZeroIsPresent(t *testing.T) {
	rec := ParseRow(buildRow(map[int]string{0: "Салон", 15: "4.2", 17: "0"}))
	if rec.ReviewsCount == nil || *rec.ReviewsCount != 0 {
		t.Fatalf("ReviewsCount = %v, want present zero", rec.ReviewsCount)
	}
}

func TestParseRowTrimsCells(t *testing.T) {
	rec := ParseRow("  Салон Лилия  \t  Салон красоты ")
	if rec.Name != "Салон Лилия" {
		t.Errorf("Name = %q, want trimmed", rec.Name)
	}
}

func TestParseRowNoNameIsInvalid(t *testing.T) {
	rec := ParseRow(buildRow(map[int]string{1: "Категория"}))
	if rec.IsValid() {
		t.Error("record without a name must be invalid")
	}
}
