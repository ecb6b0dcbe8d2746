package position

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)

func TestBlank(t *testing.T) {
	p := Blank("abc", fixedNow)
	require.Equal(t, "abc", p.ID)
	require.Equal(t, "Front Desk", p.Department)
	require.Equal(t, "Full-Time", p.Type)
	require.Equal(t, []string{""}, p.Responsibilities)
	require.Equal(t, []string{""}, p.RequiredSkills)
	require.Empty(t, p.BrandValues)
	require.Len(t, p.EvaluationCriteria, 4)
	require.Equal(t, 100, p.TotalWeight())
	require.Len(t, p.Onboarding, 3)
	require.Equal(t, PhaseFirst30, p.Onboarding[0].Phase)
	require.Equal(t, PhaseDays6190, p.Onboarding[2].Phase)
	require.True(t, p.CreatedAt.Equal(p.UpdatedAt))
	require.Equal(t, 589*int(time.Millisecond), p.CreatedAt.Nanosecond())
}

func TestTemplateInstantiateDoesNotAliasTemplate(t *testing.T) {
	tmpl, ok := FindTemplate("front desk associate")
	require.True(t, ok)

	p := tmpl.Instantiate("id-1", fixedNow)
	require.Equal(t, "Front Desk Associate", p.Title)
	require.Empty(t, p.InterviewQuestions)

	p.SetItem(ListResponsibilities, 0, "changed")
	p.ToggleBrandValue("Accountability")
	p.SetTask(0, 0, "changed task")
	p.SetCriterionWeight(0, "99")

	fresh, _ := FindTemplate("Front Desk Associate")
	require.Equal(t, "Greet all students and visitors with enthusiasm and professionalism", fresh.Responsibilities[0])
	require.Contains(t, fresh.BrandValues, "Accountability")
	require.Equal(t, "Complete all SOPs training", fresh.Onboarding[0].Tasks[0])
	require.Equal(t, 30, fresh.EvaluationCriteria[0].Weight)
}

func TestFindTemplateUnknown(t *testing.T) {
	_, ok := FindTemplate("Astronaut")
	require.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	p := Templates[1].Instantiate("x", fixedNow)
	c := p.Clone()
	require.Equal(t, p, c)

	c.Onboarding[0].Tasks[0] = "mutated"
	c.RequiredSkills[0] = "mutated"
	require.NotEqual(t, "mutated", p.Onboarding[0].Tasks[0])
	require.NotEqual(t, "mutated", p.RequiredSkills[0])
}

func TestMatchesTitle(t *testing.T) {
	p := Position{Title: "Front Desk Associate"}
	require.True(t, p.MatchesTitle("front"))
	require.True(t, p.MatchesTitle("DESK"))
	require.True(t, p.MatchesTitle(""))
	require.True(t, p.MatchesTitle("   "))
	require.False(t, p.MatchesTitle("instructor"))
}

func TestListItemEditing(t *testing.T) {
	p := Blank("x", fixedNow)
	p.SetItem(ListResponsibilities, 0, "Open the school")
	idx := p.AddItem(ListResponsibilities)
	require.Equal(t, 1, idx)
	p.SetItem(ListResponsibilities, idx, "Close the school")
	require.Equal(t, []string{"Open the school", "Close the school"}, p.Items(ListResponsibilities))

	p.SetItem(ListResponsibilities, 7, "ignored")
	require.Len(t, p.Responsibilities, 2)

	p.RemoveItem(ListResponsibilities, 0)
	require.Equal(t, []string{"Close the school"}, p.Responsibilities)

	p.SetItem(ListRequiredSkills, 0, "Leadership")
	require.Equal(t, []string{"Leadership"}, p.RequiredSkills)
}

func TestToggleBrandValuePreservesOrder(t *testing.T) {
	var p Position
	p.ToggleBrandValue("Accountability")
	p.ToggleBrandValue("Positive Energy")
	p.ToggleBrandValue("Respect for All")
	p.ToggleBrandValue("Positive Energy")
	require.Equal(t, []string{"Accountability", "Respect for All"}, p.BrandValues)
	p.ToggleBrandValue("Positive Energy")
	require.Equal(t, []string{"Accountability", "Respect for All", "Positive Energy"}, p.BrandValues)
}

func TestCriteriaEditing(t *testing.T) {
	p := Blank("x", fixedNow)
	p.SetCriterionName(0, "Grit")
	p.SetCriterionWeight(0, "40")
	p.SetCriterionWeight(1, "abc")
	require.Equal(t, Criterion{Name: "Grit", Weight: 40}, p.EvaluationCriteria[0])
	require.Equal(t, 0, p.EvaluationCriteria[1].Weight)
	require.Equal(t, 90, p.TotalWeight())

	idx := p.AddCriterion()
	require.Equal(t, 4, idx)
	p.RemoveCriterion(0)
	require.Len(t, p.EvaluationCriteria, 4)
	require.Equal(t, "Technical Skills", p.EvaluationCriteria[0].Name)
}

func TestOnboardingEditing(t *testing.T) {
	p := Blank("x", fixedNow)
	p.RenamePhase(0, "Week One")
	p.SetTask(0, 0, "Meet the team")
	require.Equal(t, 1, p.AddTask(0))
	p.SetTask(0, 1, "Read the handbook")
	p.RemoveTask(0, 0)
	require.Equal(t, OnboardingPhase{Phase: "Week One", Tasks: []string{"Read the handbook"}}, p.Onboarding[0])
	require.Equal(t, -1, p.AddTask(9))
}

func TestParseWeight(t *testing.T) {
	cases := map[string]int{
		"25":    25,
		" 30":   30,
		"15abc": 15,
		"-5":    -5,
		"+7":    7,
		"":      0,
		"abc":   0,
		"-":     0,
		"2.5":   2,
	}
	for raw, want := range cases {
		require.Equal(t, want, ParseWeight(raw), "ParseWeight(%q)", raw)
	}
}

func TestCycle(t *testing.T) {
	require.Equal(t, "Part-Time", Cycle(Types, "Full-Time", 1))
	require.Equal(t, "Internship", Cycle(Types, "Full-Time", -1))
	require.Equal(t, "Full-Time", Cycle(Types, "Internship", 1))
	require.Equal(t, "Full-Time", Cycle(Types, "Volunteer", 1))
}

func TestQuestionEditing(t *testing.T) {
	original := []InterviewQuestion{
		{Category: "Values", Question: "a"},
		{Category: "Scenario-Based", Question: "b"},
	}
	p := Position{InterviewQuestions: original}
	p.SetQuestion(1, "c")
	require.Equal(t, "b", original[1].Question)
	require.Equal(t, InterviewQuestion{Category: "Scenario-Based", Question: "c"}, p.InterviewQuestions[1])

	p.RemoveQuestion(0)
	p.RemoveQuestion(5)
	require.Equal(t, []InterviewQuestion{{Category: "Scenario-Based", Question: "c"}}, p.InterviewQuestions)
}
