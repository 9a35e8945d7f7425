package wizard

import (
	"strings"
	"testing"

	"github.com/avoronin/message-constructor/internal/domain"
)

const validRow = "Салон Лилия\tСалон красоты\tМаникюр\tМосква, Тверская 1\t\t\tliliya.ru\t\t\t\t\t\t\t\t\t4.8\t\t120\t1.2\tЦентр"

func TestSetSalonRow(t *testing.T) {
	s := NewSession()

	if s.SetSalonRow("") {
		t.Error("empty row must not be recognized")
	}
	if !s.SetSalonRow(validRow) {
		t.Fatal("valid row must be recognized")
	}
	if s.Salon == nil || s.Salon.Name != "Салон Лилия" {
		t.Errorf("Salon = %+v", s.Salon)
	}

	// Garbage after a valid row keeps the previous record.
	if s.SetSalonRow("\t\t\t") {
		t.Error("blank cells must not be recognized")
	}
	if s.Salon == nil || s.Salon.Name != "Салон Лилия" {
		t.Error("unparsable input must leave the current record untouched")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	if s.Ready() {
		t.Error("empty session must not be ready")
	}
	if _, _, ok := s.Preview(); ok {
		t.Error("empty session must not render a preview")
	}

	s.SetSalonRow(validRow)
	if s.Ready() {
		t.Error("session without a name must not be ready")
	}

	s.SetAnswers(domain.UserAnswers{
		Name:    "Алексей",
		Service: "website",
		Result:  "получать +30 записей",
	})
	if !s.Ready() {
		t.Fatal("session with salon and name must be ready")
	}

	text, metrics, ok := s.Preview()
	if !ok {
		t.Fatal("Preview() not ok for a ready session")
	}
	if !strings.Contains(text, "Салон Лилия") {
		t.Errorf("preview missing salon name:\n%s", text)
	}
	if !metrics.Personalization {
		t.Error("metrics must flag personalization")
	}

	s.Reset()
	if s.Salon != nil || s.Answers.Name != "" || s.Ready() {
		t.Error("Reset must clear the session")
	}
}

func TestSessionPain(t *testing.T) {
	s := NewSession()
	if _, ok := s.Pain(); ok {
		t.Error("no salon, no pain")
	}

	s.SetSalonRow(validRow)
	s.SetAnswers(domain.UserAnswers{Service: "crm"})

	pain, ok := s.Pain()
	if !ok {
		t.Fatal("Pain() not ok with a recognized salon")
	}
	if pain.Reason != domain.ReasonScalingNeeded {
		t.Errorf("Reason = %q, want %q", pain.Reason, domain.ReasonScalingNeeded)
	}
}
