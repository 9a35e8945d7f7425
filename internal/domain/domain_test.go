package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSalonRecordIsValid(t *testing.T) {
	var nilRec *SalonRecord
	if nilRec.IsValid() {
		t.Error("nil record must be invalid")
	}
	if (&SalonRecord{}).IsValid() {
		t.Error("record without a name must be invalid")
	}
	if !(&SalonRecord{Name: "Салон"}).IsValid() {
		t.Error("named record must be valid")
	}
}

func TestPositionLabel(t *testing.T) {
	a := UserAnswers{Position: "веб-разработчик"}
	if got := a.PositionLabel(); got != "веб-разработчик" {
		t.Errorf("PositionLabel = %q", got)
	}

	a = UserAnswers{Position: "custom", PositionCustom: "основатель веб-студии"}
	if got := a.PositionLabel(); got != "основатель веб-студии" {
		t.Errorf("PositionLabel = %q, want custom text", got)
	}

	a = UserAnswers{Position: "custom"}
	if got := a.PositionLabel(); got != "custom" {
		t.Errorf("PositionLabel = %q, want raw key when custom text is empty", got)
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityCritical > SeverityHigh && SeverityHigh > SeverityMedium) {
		t.Error("severity order broken")
	}
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(PainCandidate{Severity: SeverityCritical, Text: "t", Reason: ReasonNoWebsite})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"severity":"critical","text":"t","reason":"no_website"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestGenerationsLeft(t *testing.T) {
	tests := []struct {
		count, limit, want int
	}{
		{0, 50, 50},
		{48, 50, 2},
		{50, 50, 0},
		{60, 50, 0},
	}
	for _, tt := range tests {
		u := &User{GenerationsCount: tt.count}
		if got := u.GenerationsLeft(tt.limit); got != tt.want {
			t.Errorf("GenerationsLeft(%d/%d) = %d, want %d", tt.count, tt.limit, got, tt.want)
		}
	}
}

func TestGenerationHidesUserID(t *testing.T) {
	data, err := json.Marshal(Generation{ID: "g", UserID: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "secret") {
		t.Errorf("user id leaked: %s", data)
	}
}
