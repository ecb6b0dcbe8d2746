package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/hirekit/internal/position"
	"github.com/kingrea/hirekit/internal/store"
)

// field is one editable row of the draft on the current tab. Rows are rebuilt
// from the draft on every key press, so indexes never go stale.
type field struct {
	label string
	value string

	// set commits text typed into the input. nil means the row is not
	// free-text.
	set func(p *position.Position, value string)
	// cycle steps an enumerated value.
	cycle func(p *position.Position, step int)
	// toggle flips a brand value on or off.
	toggle func(p *position.Position)
	// add appends an item to the list this row belongs to and returns the
	// cursor offset of the new row relative to this one.
	add func(p *position.Position) int
	// remove drops the row's item.
	remove func(p *position.Position)
	// heading rows only label a group.
	heading bool
}

func (a *App) beginDraft(p position.Position) (tea.Model, tea.Cmd) {
	a.draft = p
	a.draftNew = true
	a.cursor = 0
	a.tab = tabPosition
	a.inputOpen = false
	a.state = stateEdit
	a.statusMsg = "New draft · ctrl+s saves, esc discards"
	return a, nil
}

func (a *App) editFields() []field {
	switch a.tab {
	case tabInterview:
		return interviewFields(a.draft)
	case tabEvaluation:
		return evaluationFields(a.draft)
	case tabOnboarding:
		return onboardingFields(a.draft)
	default:
		return positionFields(a.draft)
	}
}

func positionFields(p position.Position) []field {
	fields := []field{
		{label: "Job Title", value: p.Title, set: func(p *position.Position, v string) { p.Title = v }},
		{label: "Department", value: p.Department, cycle: func(p *position.Position, step int) {
			p.Department = position.Cycle(position.Departments, p.Department, step)
		}},
		{label: "Reports To", value: p.ReportsTo, set: func(p *position.Position, v string) { p.ReportsTo = v }},
		{label: "Position Type", value: p.Type, cycle: func(p *position.Position, step int) {
			p.Type = position.Cycle(position.Types, p.Type, step)
		}},
	}
	fields = append(fields, listFields("Responsibility", position.ListResponsibilities, p.Responsibilities)...)
	fields = append(fields, listFields("Skill", position.ListRequiredSkills, p.RequiredSkills)...)
	fields = append(fields, field{label: "Brand Values", heading: true})
	for _, v := range position.DefaultBrandValues {
		value := v
		mark := "[ ]"
		if p.HasBrandValue(value) {
			mark = "[x]"
		}
		fields = append(fields, field{
			label:  "  " + mark,
			value:  value,
			toggle: func(p *position.Position) { p.ToggleBrandValue(value) },
		})
	}
	fields = append(fields, field{label: "Notes", value: p.Notes, set: func(p *position.Position, v string) { p.Notes = v }})
	return fields
}

func listFields(label string, list position.ListField, items []string) []field {
	appendItem := func(offset int) func(p *position.Position) int {
		return func(p *position.Position) int {
			p.AddItem(list)
			return offset
		}
	}
	fields := []field{{label: label + "s", heading: true, add: appendItem(len(items) + 1)}}
	for i, item := range items {
		idx := i
		fields = append(fields, field{
			label:  fmt.Sprintf("  %s %d", label, idx+1),
			value:  item,
			set:    func(p *position.Position, v string) { p.SetItem(list, idx, v) },
			add:    appendItem(len(items) - idx),
			remove: func(p *position.Position) { p.RemoveItem(list, idx) },
		})
	}
	return fields
}

func interviewFields(p position.Position) []field {
	fields := make([]field, 0, len(p.InterviewQuestions))
	for i, q := range p.InterviewQuestions {
		idx := i
		fields = append(fields, field{
			label:  fmt.Sprintf("[%s]", q.Category),
			value:  q.Question,
			set:    func(p *position.Position, v string) { p.SetQuestion(idx, v) },
			remove: func(p *position.Position) { p.RemoveQuestion(idx) },
		})
	}
	return fields
}

func evaluationFields(p position.Position) []field {
	fields := make([]field, 0, len(p.EvaluationCriteria)*2)
	appendCriterion := func(offset int) func(p *position.Position) int {
		return func(p *position.Position) int {
			p.AddCriterion()
			return offset
		}
	}
	for i, c := range p.EvaluationCriteria {
		idx := i
		remaining := (len(p.EvaluationCriteria) - idx) * 2
		fields = append(fields,
			field{
				label:  fmt.Sprintf("Criterion %d", idx+1),
				value:  c.Name,
				set:    func(p *position.Position, v string) { p.SetCriterionName(idx, v) },
				add:    appendCriterion(remaining),
				remove: func(p *position.Position) { p.RemoveCriterion(idx) },
			},
			field{
				label:  "  Weight %",
				value:  strconv.Itoa(c.Weight),
				set:    func(p *position.Position, v string) { p.SetCriterionWeight(idx, v) },
				add:    appendCriterion(remaining - 1),
				remove: func(p *position.Position) { p.RemoveCriterion(idx) },
			},
		)
	}
	if len(fields) == 0 {
		fields = append(fields, field{label: "Criteria", heading: true, add: appendCriterion(0)})
	}
	return fields
}

func onboardingFields(p position.Position) []field {
	var fields []field
	for pi, phase := range p.Onboarding {
		phaseIdx := pi
		addTask := func(offset int) func(p *position.Position) int {
			return func(p *position.Position) int {
				p.AddTask(phaseIdx)
				return offset
			}
		}
		fields = append(fields, field{
			label: "Phase",
			value: phase.Phase,
			set:   func(p *position.Position, v string) { p.RenamePhase(phaseIdx, v) },
			add:   addTask(len(phase.Tasks) + 1),
		})
		for ti, task := range phase.Tasks {
			taskIdx := ti
			fields = append(fields, field{
				label:  "  [ ]",
				value:  task,
				set:    func(p *position.Position, v string) { p.SetTask(phaseIdx, taskIdx, v) },
				add:    addTask(len(phase.Tasks) - taskIdx),
				remove: func(p *position.Position) { p.RemoveTask(phaseIdx, taskIdx) },
			})
		}
	}
	return fields
}

func (a *App) clampCursor(fields []field) {
	if a.cursor >= len(fields) {
		a.cursor = len(fields) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.inputOpen {
		return a.updateInput(msg)
	}
	fields := a.editFields()
	a.clampCursor(fields)
	var current *field
	if len(fields) > 0 {
		current = &fields[a.cursor]
	}

	switch msg.String() {
	case "ctrl+s":
		return a.saveDraft()
	case "esc":
		return a.cancelDraft()
	case "tab":
		a.tab = a.tab.step(1)
		a.cursor = 0
	case "shift+tab":
		a.tab = a.tab.step(-1)
		a.cursor = 0
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(fields)-1 {
			a.cursor++
		}
	case "left", "h":
		if current != nil && current.cycle != nil {
			current.cycle(&a.draft, -1)
		}
	case "right", "l":
		if current != nil && current.cycle != nil {
			current.cycle(&a.draft, 1)
		}
	case " ", "space":
		if current != nil && current.toggle != nil {
			current.toggle(&a.draft)
		}
	case "enter":
		if current == nil {
			return a, nil
		}
		switch {
		case current.set != nil:
			a.input.SetValue(current.value)
			a.input.CursorEnd()
			a.inputOpen = true
			return a, a.input.Focus()
		case current.toggle != nil:
			current.toggle(&a.draft)
		case current.cycle != nil:
			current.cycle(&a.draft, 1)
		}
	case "a":
		if current != nil && current.add != nil {
			a.cursor += current.add(&a.draft)
			a.clampCursor(a.editFields())
		} else {
			a.statusMsg = "Nothing to add here"
		}
	case "D":
		if current != nil && current.remove != nil {
			current.remove(&a.draft)
			a.clampCursor(a.editFields())
		}
	case "g":
		if a.tab != tabInterview {
			a.statusMsg = "Switch to the Interview tab to generate questions"
			return a, nil
		}
		a.draft = a.generator.Apply(a.draft)
		a.cursor = 0
		a.statusMsg = fmt.Sprintf("Generated %d questions · ctrl+s to keep them", len(a.draft.InterviewQuestions))
	}
	return a, nil
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		fields := a.editFields()
		a.clampCursor(fields)
		if len(fields) > 0 && fields[a.cursor].set != nil {
			fields[a.cursor].set(&a.draft, a.input.Value())
		}
		a.inputOpen = false
		a.input.Blur()
		return a, nil
	case "esc":
		a.inputOpen = false
		a.input.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) saveDraft() (tea.Model, tea.Cmd) {
	saved, err := a.store.Save(a.ctx, a.draft)
	if err != nil {
		a.statusMsg = fmt.Sprintf("Save failed: %v", err)
		a.logError("Save failed for %s: %v", a.draft.DisplayTitle(), err)
		if errors.Is(err, store.ErrNotReady) {
			a.logger.WithError(err).Error("save attempted before load")
		}
		return a, nil
	}
	verb := "Saved"
	if a.draftNew {
		verb = "Created"
	}
	a.statusMsg = fmt.Sprintf("%s %s", verb, saved.DisplayTitle())
	a.draft = position.Position{}
	a.draftNew = false
	a.selectedID = saved.ID
	a.state = stateDetail
	a.refreshPositions()
	return a, nil
}

func (a *App) cancelDraft() (tea.Model, tea.Cmd) {
	wasNew := a.draftNew
	a.draft = position.Position{}
	a.draftNew = false
	a.statusMsg = "Edit cancelled"
	if wasNew {
		return a.backToList()
	}
	a.state = stateDetail
	return a, nil
}

func (a *App) renderEdit() string {
	fields := a.editFields()
	a.clampCursor(fields)

	title := a.draft.DisplayTitle()
	if a.draftNew {
		title += " (new)"
	}
	lines := []string{accentStyle.Render("Editing · " + title), a.renderTabs(), ""}

	if a.tab == tabEvaluation {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("Total weight: %d%%", a.draft.TotalWeight())))
	}
	if len(fields) == 0 && a.tab == tabInterview {
		lines = append(lines, mutedStyle.Render("No questions yet. Press g to generate them."))
	}
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#0D9488")).Bold(true)
	for i, f := range fields {
		prefix := "  "
		if i == a.cursor {
			prefix = cursorStyle.Render("▸ ")
		}
		switch {
		case f.heading:
			lines = append(lines, prefix+labelStyle.Render(f.label))
		case i == a.cursor && a.inputOpen:
			lines = append(lines, prefix+labelStyle.Render(f.label+":")+" "+a.input.View())
		case f.cycle != nil:
			lines = append(lines, fmt.Sprintf("%s%s ‹ %s ›", prefix, labelStyle.Render(f.label+":"), f.value))
		case f.toggle != nil:
			lines = append(lines, fmt.Sprintf("%s%s %s", prefix, f.label, f.value))
		default:
			lines = append(lines, fmt.Sprintf("%s%s %s", prefix, labelStyle.Render(f.label+":"), orDash(f.value)))
		}
	}

	help := "↑/↓ move    Enter edit    ←/→ cycle    Space toggle    a add    D remove    ctrl+s save    Esc cancel"
	if a.tab == tabInterview {
		help = "g generate    " + help
	}
	lines = append(lines, hint(help))
	return strings.Join(lines, "\n")
}
