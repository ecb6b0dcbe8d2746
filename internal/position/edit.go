package position

import (
	"strconv"
	"strings"
	"unicode"
)

// ListField names the plain string lists a Position carries.
type ListField int

const (
	ListResponsibilities ListField = iota
	ListRequiredSkills
)

func (p *Position) list(field ListField) *[]string {
	switch field {
	case ListRequiredSkills:
		return &p.RequiredSkills
	default:
		return &p.Responsibilities
	}
}

// Items returns the current contents of a list field.
func (p *Position) Items(field ListField) []string {
	return *p.list(field)
}

// SetItem replaces the item at index. Out-of-range indexes are ignored.
func (p *Position) SetItem(field ListField, index int, value string) {
	*p.list(field) = updateListItem(*p.list(field), index, value)
}

// AddItem appends an empty item and returns its index.
func (p *Position) AddItem(field ListField) int {
	items := p.list(field)
	*items = append(*items, "")
	return len(*items) - 1
}

// RemoveItem drops the item at index.
func (p *Position) RemoveItem(field ListField, index int) {
	*p.list(field) = removeListItem(*p.list(field), index)
}

// ToggleBrandValue adds value when absent and removes it when present. Added
// values go to the end; removal keeps the order of the rest.
func (p *Position) ToggleBrandValue(value string) {
	if p.HasBrandValue(value) {
		kept := make([]string, 0, len(p.BrandValues))
		for _, v := range p.BrandValues {
			if v != value {
				kept = append(kept, v)
			}
		}
		p.BrandValues = kept
		return
	}
	p.BrandValues = append(p.BrandValues, value)
}

// SetCriterionName renames the criterion at index.
func (p *Position) SetCriterionName(index int, name string) {
	if index < 0 || index >= len(p.EvaluationCriteria) {
		return
	}
	criteria := append([]Criterion{}, p.EvaluationCriteria...)
	criteria[index].Name = name
	p.EvaluationCriteria = criteria
}

// SetCriterionWeight stores the weight typed by the user. See ParseWeight.
func (p *Position) SetCriterionWeight(index int, raw string) {
	if index < 0 || index >= len(p.EvaluationCriteria) {
		return
	}
	criteria := append([]Criterion{}, p.EvaluationCriteria...)
	criteria[index].Weight = ParseWeight(raw)
	p.EvaluationCriteria = criteria
}

// AddCriterion appends an unnamed criterion with weight 0.
func (p *Position) AddCriterion() int {
	p.EvaluationCriteria = append(p.EvaluationCriteria, Criterion{})
	return len(p.EvaluationCriteria) - 1
}

// RemoveCriterion drops the criterion at index.
func (p *Position) RemoveCriterion(index int) {
	if index < 0 || index >= len(p.EvaluationCriteria) {
		return
	}
	criteria := make([]Criterion, 0, len(p.EvaluationCriteria)-1)
	criteria = append(criteria, p.EvaluationCriteria[:index]...)
	p.EvaluationCriteria = append(criteria, p.EvaluationCriteria[index+1:]...)
}

// TotalWeight sums the criterion weights. The editor shows it; nothing
// requires it to be 100.
func (p Position) TotalWeight() int {
	total := 0
	for _, c := range p.EvaluationCriteria {
		total += c.Weight
	}
	return total
}

// RenamePhase changes the name of the onboarding phase at index.
func (p *Position) RenamePhase(index int, name string) {
	if index < 0 || index >= len(p.Onboarding) {
		return
	}
	p.Onboarding = cloneOnboarding(p.Onboarding)
	p.Onboarding[index].Phase = name
}

// SetTask replaces a task inside an onboarding phase.
func (p *Position) SetTask(phase, index int, value string) {
	if phase < 0 || phase >= len(p.Onboarding) {
		return
	}
	p.Onboarding = cloneOnboarding(p.Onboarding)
	p.Onboarding[phase].Tasks = updateListItem(p.Onboarding[phase].Tasks, index, value)
}

// AddTask appends an empty task to a phase and returns its index, or -1 when
// the phase does not exist.
func (p *Position) AddTask(phase int) int {
	if phase < 0 || phase >= len(p.Onboarding) {
		return -1
	}
	p.Onboarding = cloneOnboarding(p.Onboarding)
	p.Onboarding[phase].Tasks = append(p.Onboarding[phase].Tasks, "")
	return len(p.Onboarding[phase].Tasks) - 1
}

// RemoveTask drops a task from a phase.
func (p *Position) RemoveTask(phase, index int) {
	if phase < 0 || phase >= len(p.Onboarding) {
		return
	}
	p.Onboarding = cloneOnboarding(p.Onboarding)
	p.Onboarding[phase].Tasks = removeListItem(p.Onboarding[phase].Tasks, index)
}

// SetQuestion rewrites the prompt of the interview question at index. The
// category is kept.
func (p *Position) SetQuestion(index int, text string) {
	if index < 0 || index >= len(p.InterviewQuestions) {
		return
	}
	qs := make([]InterviewQuestion, len(p.InterviewQuestions))
	copy(qs, p.InterviewQuestions)
	qs[index].Question = text
	p.InterviewQuestions = qs
}

// RemoveQuestion drops the interview question at index.
func (p *Position) RemoveQuestion(index int) {
	if index < 0 || index >= len(p.InterviewQuestions) {
		return
	}
	qs := make([]InterviewQuestion, 0, len(p.InterviewQuestions)-1)
	qs = append(qs, p.InterviewQuestions[:index]...)
	p.InterviewQuestions = append(qs, p.InterviewQuestions[index+1:]...)
}

// ParseWeight reads a weight the way a lenient number field does: leading
// whitespace and sign are accepted, the leading run of digits is used and
// anything that does not start with a number becomes 0.
func ParseWeight(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func updateListItem(list []string, index int, value string) []string {
	out := make([]string, len(list))
	copy(out, list)
	if index >= 0 && index < len(out) {
		out[index] = value
	}
	return out
}

func removeListItem(list []string, index int) []string {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

func cloneOnboarding(phases []OnboardingPhase) []OnboardingPhase {
	out := make([]OnboardingPhase, len(phases))
	for i, phase := range phases {
		out[i] = OnboardingPhase{Phase: phase.Phase, Tasks: cloneStrings(phase.Tasks)}
	}
	return out
}
