// Package wizard holds the per-connection form state for live preview.
// The browser original kept answers in a page-wide mutable object; here the
// state is an explicit session passed to each update, so the core functions
// stay pure and testable.
package wizard

import (
	"github.com/avoronin/message-constructor/internal/domain"
	"github.com/avoronin/message-constructor/internal/preview"
	"github.com/avoronin/message-constructor/internal/salon"
)

// Session accumulates the pasted salon row and the wizard answers for one
// live-preview connection. It is not safe for concurrent use; each
// connection owns exactly one session.
type Session struct {
	Salon   *domain.SalonRecord
	Answers domain.UserAnswers
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// SetSalonRow parses a pasted row. A valid record replaces any previous
// one; unparsable input leaves the current record untouched. Reports
// whether a salon was recognized.
func (s *Session) SetSalonRow(raw string) bool {
	rec := salon.ParseRow(raw)
	if !rec.IsValid() {
		return false
	}
	s.Salon = rec
	return true
}

// SetAnswers replaces the accumulated answers wholesale. The client sends
// the full answer set on every change, mirroring how the form collects
// values step by step.
func (s *Session) SetAnswers(a domain.UserAnswers) {
	s.Answers = a
}

// Reset clears the session for a fresh form.
func (s *Session) Reset() {
	s.Salon = nil
	s.Answers = domain.UserAnswers{}
}

// Ready reports whether enough data exists to render a preview.
func (s *Session) Ready() bool {
	return s.Salon.IsValid() && s.Answers.Name != ""
}

// Preview renders the current preview text and its metrics. ok is false
// until the session is ready.
func (s *Session) Preview() (text string, metrics preview.Metrics, ok bool) {
	if !s.Ready() {
		return "", preview.Metrics{}, false
	}
	text = preview.Render(s.Salon, &s.Answers)
	metrics = preview.Measure(text, s.Salon, s.Answers.Guarantees)
	return text, metrics, true
}

// Pain returns the currently selected pain point for the session's salon.
func (s *Session) Pain() (domain.PainCandidate, bool) {
	if !s.Salon.IsValid() {
		return domain.PainCandidate{}, false
	}
	return salon.SelectPain(s.Salon, s.Answers.Service), true
}
