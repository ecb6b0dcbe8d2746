package position

// Departments are offered as choices in the editor. Storage does not enforce
// membership.
var Departments = []string{
	"Front Desk",
	"Instruction",
	"Sales",
	"Marketing",
	"Operations",
	"Management",
	"Finance",
	"Facilities",
	"Other",
}

// Types lists the employment types offered by the editor.
var Types = []string{"Full-Time", "Part-Time", "Contract", "Seasonal", "Internship"}

// DefaultBrandValues is the vocabulary brand values are toggled from.
var DefaultBrandValues = []string{
	"Integrity & Honesty",
	"Student-First Mindset",
	"Continuous Improvement",
	"Team Collaboration",
	"Positive Energy",
	"Accountability",
	"Respect for All",
	"Excellence in Everything",
}

// Cycle returns the entry of choices that sits step places away from current,
// wrapping at both ends. Values outside choices start from the first entry.
func Cycle(choices []string, current string, step int) string {
	if len(choices) == 0 {
		return current
	}
	idx := -1
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return choices[0]
	}
	n := len(choices)
	return choices[((idx+step)%n+n)%n]
}
