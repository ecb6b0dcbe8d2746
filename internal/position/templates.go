package position

import (
	"strings"
	"time"
)

// Template is a pre-filled Position without identity or timestamps.
type Template struct {
	Title              string
	Department         string
	ReportsTo          string
	Type               string
	Responsibilities   []string
	RequiredSkills     []string
	BrandValues        []string
	EvaluationCriteria []Criterion
	Onboarding         []OnboardingPhase
	Notes              string
}

// Phase names used by the blank skeleton and every built-in template.
const (
	PhaseFirst30  = "First 30 Days"
	PhaseDays3160 = "Days 31-60"
	PhaseDays6190 = "Days 61-90"
)

// Blank returns the skeleton a new position starts from.
func Blank(id string, now time.Time) Position {
	now = Stamp(now)
	return Position{
		ID:                 id,
		Department:         "Front Desk",
		Type:               "Full-Time",
		Responsibilities:   []string{""},
		RequiredSkills:     []string{""},
		BrandValues:        []string{},
		InterviewQuestions: []InterviewQuestion{},
		EvaluationCriteria: []Criterion{
			{Name: "Culture Fit", Weight: 25},
			{Name: "Technical Skills", Weight: 25},
			{Name: "Communication", Weight: 25},
			{Name: "Leadership", Weight: 25},
		},
		Onboarding: []OnboardingPhase{
			{Phase: PhaseFirst30, Tasks: []string{""}},
			{Phase: PhaseDays3160, Tasks: []string{""}},
			{Phase: PhaseDays6190, Tasks: []string{""}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Instantiate copies the template into a fresh Position. The result shares no
// slices with the template.
func (t Template) Instantiate(id string, now time.Time) Position {
	now = Stamp(now)
	p := Position{
		ID:                 id,
		Title:              t.Title,
		Department:         t.Department,
		ReportsTo:          t.ReportsTo,
		Type:               t.Type,
		Responsibilities:   t.Responsibilities,
		RequiredSkills:     t.RequiredSkills,
		BrandValues:        t.BrandValues,
		InterviewQuestions: []InterviewQuestion{},
		EvaluationCriteria: t.EvaluationCriteria,
		Onboarding:         t.Onboarding,
		Notes:              t.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	p = p.Clone()
	if p.BrandValues == nil {
		p.BrandValues = []string{}
	}
	return p
}

// FindTemplate looks a built-in template up by title, ignoring case.
func FindTemplate(title string) (Template, bool) {
	title = strings.TrimSpace(title)
	for _, t := range Templates {
		if strings.EqualFold(t.Title, title) {
			return t, true
		}
	}
	return Template{}, false
}

// Templates are the built-in starting points offered by the templates menu.
var Templates = []Template{
	{
		Title:      "Front Desk Associate",
		Department: "Front Desk",
		ReportsTo:  "Program Director",
		Type:       "Part-Time",
		Responsibilities: []string{
			"Greet all students and visitors with enthusiasm and professionalism",
			"Answer phones and respond to inquiries within 2 rings",
			"Process enrollments, payments, and schedule changes in GHL",
			"Maintain clean and organized front desk and lobby area",
			"Execute opening and closing procedures per SOP",
			"Track daily attendance and flag at-risk students",
		},
		RequiredSkills: []string{"Customer service", "Phone etiquette", "Basic computer skills", "Multitasking", "Cash handling"},
		BrandValues:    []string{"Student-First Mindset", "Positive Energy", "Accountability"},
		EvaluationCriteria: []Criterion{
			{Name: "Customer Service", Weight: 30},
			{Name: "Communication", Weight: 25},
			{Name: "Culture Fit", Weight: 25},
			{Name: "Technical Skills", Weight: 20},
		},
		Onboarding: []OnboardingPhase{
			{Phase: PhaseFirst30, Tasks: []string{"Complete all SOPs training", "Shadow experienced front desk staff for 1 week", "Learn GHL and POS system", "Memorize student greeting protocol", "Pass front desk quiz (90%+)"}},
			{Phase: PhaseDays3160, Tasks: []string{"Handle desk independently during off-peak hours", "Process 10 enrollments with supervision", "Lead opening or closing procedures solo", "Complete phone script training", "First performance check-in with manager"}},
			{Phase: PhaseDays6190, Tasks: []string{"Handle desk independently during peak hours", "Train on retention call procedures", "Demonstrate all emergency protocols", "90-day performance review", "Set goals for next quarter"}},
		},
		Notes: "Ideal candidate has experience in customer-facing roles. Martial arts experience is a plus but not required.",
	},
	{
		Title:      "Head Instructor",
		Department: "Instruction",
		ReportsTo:  "Owner / Program Director",
		Type:       "Full-Time",
		Responsibilities: []string{
			"Lead group classes for all age groups and skill levels",
			"Develop and maintain curriculum aligned with school standards",
			"Conduct belt testing and evaluations",
			"Mentor and train assistant instructors",
			"Maintain student engagement and retention through quality instruction",
			"Participate in community events and demonstrations",
		},
		RequiredSkills: []string{"Black belt (2nd degree or higher)", "Teaching experience (2+ years)", "Youth development", "Curriculum design", "Leadership"},
		BrandValues:    []string{"Excellence in Everything", "Continuous Improvement", "Student-First Mindset"},
		EvaluationCriteria: []Criterion{
			{Name: "Teaching Ability", Weight: 30},
			{Name: "Student Engagement", Weight: 25},
			{Name: "Leadership", Weight: 20},
			{Name: "Culture Fit", Weight: 15},
			{Name: "Technical Skill", Weight: 10},
		},
		Onboarding: []OnboardingPhase{
			{Phase: PhaseFirst30, Tasks: []string{"Observe all current classes for 1 week", "Review complete curriculum guide", "Co-teach with current instructor for 2 weeks", "Meet all students by name", "Complete school philosophy training"}},
			{Phase: PhaseDays3160, Tasks: []string{"Lead classes independently", "Conduct first belt testing under supervision", "Complete first parent communication round", "Develop 1 new drill or exercise per week", "First performance check-in"}},
			{Phase: PhaseDays6190, Tasks: []string{"Full class schedule ownership", "Lead first community demo or event", "Begin mentoring assistant instructors", "90-day comprehensive review", "Create quarterly curriculum plan"}},
		},
		Notes: "This role is the heart of the school. The right instructor transforms student lives.",
	},
	{
		Title:      "Program Director",
		Department: "Management",
		ReportsTo:  "Owner",
		Type:       "Full-Time",
		Responsibilities: []string{
			"Oversee all daily operations and staff management",
			"Drive enrollment, retention, and revenue targets",
			"Hire, train, and develop team members",
			"Execute marketing and community outreach initiatives",
			"Manage student and parent relationships",
			"Report weekly on KPIs to owner",
		},
		RequiredSkills: []string{"Management experience (3+ years)", "Sales and enrollment", "Team leadership", "P&L understanding", "CRM proficiency"},
		BrandValues:    []string{"Accountability", "Team Collaboration", "Integrity & Honesty", "Excellence in Everything"},
		EvaluationCriteria: []Criterion{
			{Name: "Leadership", Weight: 25},
			{Name: "Business Acumen", Weight: 25},
			{Name: "Culture Fit", Weight: 20},
			{Name: "Communication", Weight: 15},
			{Name: "Problem Solving", Weight: 15},
		},
		Onboarding: []OnboardingPhase{
			{Phase: PhaseFirst30, Tasks: []string{"Complete full operations manual review", "Meet all staff 1-on-1", "Shadow current operations for 2 weeks", "Learn all technology platforms (GHL, POS, etc.)", "Review last 6 months of financials and KPIs"}},
			{Phase: PhaseDays3160, Tasks: []string{"Take over daily operations management", "Conduct first team meeting independently", "Implement 1 process improvement", "Complete first enrollment cycle", "Build relationships with top 20 families"}},
			{Phase: PhaseDays6190, Tasks: []string{"Full operational ownership", "Present first monthly P&L analysis to owner", "Complete first hiring cycle (if needed)", "90-day comprehensive review", "Set Q2 goals and strategy"}},
		},
		Notes: "This person runs the school day-to-day so the owner can focus on growth and vision.",
	},
}
