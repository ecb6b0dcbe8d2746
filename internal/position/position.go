// Package position holds the hiring Position record and everything that can
// be computed from one without touching storage: vocabularies, templates,
// edit helpers and the on-disk collection codec.
package position

import (
	"strings"
	"time"
)

// InterviewQuestion is one generated or hand-written interview prompt.
type InterviewQuestion struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

// Criterion is a scorecard row. Weights are independent; nothing forces them
// to sum to 100.
type Criterion struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// OnboardingPhase is a named period with an ordered task list.
type OnboardingPhase struct {
	Phase string   `json:"phase"`
	Tasks []string `json:"tasks"`
}

// Position is the root record. It is unique by ID within a collection.
type Position struct {
	ID                 string              `json:"id" validate:"required"`
	Title              string              `json:"title"`
	Department         string              `json:"department"`
	ReportsTo          string              `json:"reportsTo"`
	Type               string              `json:"type"`
	Responsibilities   []string            `json:"responsibilities"`
	RequiredSkills     []string            `json:"requiredSkills"`
	BrandValues        []string            `json:"brandValues"`
	InterviewQuestions []InterviewQuestion `json:"interviewQuestions"`
	EvaluationCriteria []Criterion         `json:"evaluationCriteria"`
	Onboarding         []OnboardingPhase   `json:"onboarding"`
	Notes              string              `json:"notes"`
	CreatedAt          time.Time           `json:"createdAt" validate:"required"`
	UpdatedAt          time.Time           `json:"updatedAt" validate:"required"`
}

// Stamp normalises t to the precision the collection is stored with, so a
// value survives an encode/decode cycle unchanged.
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// Clone returns a deep copy of p.
func (p Position) Clone() Position {
	out := p
	out.Responsibilities = cloneStrings(p.Responsibilities)
	out.RequiredSkills = cloneStrings(p.RequiredSkills)
	out.BrandValues = cloneStrings(p.BrandValues)
	if p.InterviewQuestions != nil {
		out.InterviewQuestions = append([]InterviewQuestion{}, p.InterviewQuestions...)
	}
	if p.EvaluationCriteria != nil {
		out.EvaluationCriteria = append([]Criterion{}, p.EvaluationCriteria...)
	}
	if p.Onboarding != nil {
		out.Onboarding = make([]OnboardingPhase, len(p.Onboarding))
		for i, phase := range p.Onboarding {
			out.Onboarding[i] = OnboardingPhase{Phase: phase.Phase, Tasks: cloneStrings(phase.Tasks)}
		}
	}
	return out
}

// MatchesTitle reports whether the title contains query, ignoring case. An
// empty or blank query matches everything.
func (p Position) MatchesTitle(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), strings.ToLower(query))
}

// HasBrandValue reports whether value is attached to the position.
func (p Position) HasBrandValue(value string) bool {
	for _, v := range p.BrandValues {
		if v == value {
			return true
		}
	}
	return false
}

// DisplayTitle falls back to a placeholder for drafts without a title.
func (p Position) DisplayTitle() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	return "Untitled Position"
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string{}, values...)
}
