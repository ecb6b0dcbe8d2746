package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/hirekit/internal/export"
	"github.com/kingrea/hirekit/internal/position"
	"github.com/kingrea/hirekit/internal/questions"
)

type tab int

const (
	tabPosition tab = iota
	tabInterview
	tabEvaluation
	tabOnboarding
	tabCount
)

func (t tab) label() string {
	switch t {
	case tabInterview:
		return "Interview"
	case tabEvaluation:
		return "Evaluation"
	case tabOnboarding:
		return "Onboarding"
	default:
		return "Position"
	}
}

func (t tab) step(delta int) tab {
	return tab((int(t) + delta + int(tabCount)) % int(tabCount))
}

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#888888"))
	accentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0D9488"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	chipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#0D9488")).Padding(0, 1)
	chipOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Padding(0, 1)
)

func (a *App) openDetail(id string) (tea.Model, tea.Cmd) {
	a.selectedID = id
	a.tab = tabPosition
	a.state = stateDetail
	a.statusMsg = ""
	return a, nil
}

func (a *App) selected() (position.Position, bool) {
	if a.selectedID == "" {
		return position.Position{}, false
	}
	return a.store.Find(a.selectedID)
}

// backToList clears the selection and shows the list.
func (a *App) backToList() (tea.Model, tea.Cmd) {
	a.state = stateList
	a.selectedID = ""
	a.refreshPositions()
	return a, nil
}

func (a *App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, ok := a.selected()
	if !ok {
		return a.backToList()
	}
	switch msg.String() {
	case "esc", "q":
		a.state = stateList
		a.statusMsg = ""
		a.refreshPositions()
		return a, nil
	case "tab", "right", "l":
		a.tab = a.tab.step(1)
	case "shift+tab", "left", "h":
		a.tab = a.tab.step(-1)
	case "e":
		a.draft = p.Clone()
		a.draftNew = false
		a.cursor = 0
		a.state = stateEdit
		a.statusMsg = "Editing · ctrl+s saves, esc cancels"
	case "x":
		a.exportSelected(p, export.FormatText)
	case "p":
		a.exportSelected(p, export.FormatPDF)
	case "s":
		a.exportSelected(p, export.FormatXLSX)
	case "d":
		return a.deleteSelected(p)
	}
	return a, nil
}

func (a *App) exportSelected(p position.Position, format export.Format) {
	if a.exporter == nil {
		a.statusMsg = "Export is not configured"
		return
	}
	path, err := a.exporter.Write(p, format)
	if err != nil {
		a.statusMsg = fmt.Sprintf("Export failed: %v", err)
		a.logError("Export %s failed for %s: %v", format, p.DisplayTitle(), err)
		a.logger.WithError(err).WithField("id", p.ID).Error("export failed")
		return
	}
	a.statusMsg = fmt.Sprintf("Exported to %s", path)
	a.logInfo("Exported %s · %s", p.DisplayTitle(), path)
}

func (a *App) deleteSelected(p position.Position) (tea.Model, tea.Cmd) {
	if _, err := a.store.Delete(a.ctx, p.ID); err != nil {
		a.statusMsg = fmt.Sprintf("Delete failed: %v", err)
		a.logError("Delete failed for %s: %v", p.DisplayTitle(), err)
		return a, nil
	}
	a.statusMsg = fmt.Sprintf("Deleted %s", p.DisplayTitle())
	return a.backToList()
}

func (a *App) renderTabs() string {
	parts := make([]string, 0, int(tabCount))
	for t := tabPosition; t < tabCount; t++ {
		if t == a.tab {
			parts = append(parts, accentStyle.Underline(true).Render(t.label()))
			continue
		}
		parts = append(parts, mutedStyle.Render(t.label()))
	}
	return strings.Join(parts, "   ")
}

func (a *App) renderDetail() string {
	p, ok := a.selected()
	if !ok {
		return "Position not found."
	}
	var body string
	switch a.tab {
	case tabPosition:
		body = renderPositionTab(p)
	case tabInterview:
		body = renderInterviewTab(p)
	case tabEvaluation:
		body = renderEvaluationTab(p)
	case tabOnboarding:
		body = renderOnboardingTab(p)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		accentStyle.Render(p.DisplayTitle()),
		a.renderTabs(),
		"",
		body,
		hint("Tab → switch    e → edit    x/p/s → export txt/pdf/xlsx    d → delete    Esc → back"),
	)
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func renderPositionTab(p position.Position) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Job Title:"), orDash(p.Title))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Department:"), p.Department)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Reports To:"), orDash(p.ReportsTo))
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Position Type:"), p.Type)

	b.WriteString(labelStyle.Render("KEY RESPONSIBILITIES") + "\n")
	for _, r := range p.Responsibilities {
		fmt.Fprintf(&b, "  › %s\n", r)
	}
	b.WriteString("\n" + labelStyle.Render("REQUIRED SKILLS") + "\n")
	for _, s := range p.RequiredSkills {
		fmt.Fprintf(&b, "  • %s\n", s)
	}
	b.WriteString("\n" + labelStyle.Render("BRAND VALUES ALIGNMENT") + "\n")
	b.WriteString(renderBrandChips(p) + "\n")
	if strings.TrimSpace(p.Notes) != "" {
		b.WriteString("\n" + labelStyle.Render("NOTES") + "\n")
		b.WriteString(p.Notes + "\n")
	}
	return b.String()
}

func renderBrandChips(p position.Position) string {
	chips := make([]string, 0, len(position.DefaultBrandValues))
	for _, v := range position.DefaultBrandValues {
		if p.HasBrandValue(v) {
			chips = append(chips, chipStyle.Render("★ "+v))
		} else {
			chips = append(chips, chipOffStyle.Render("☆ "+v))
		}
	}
	return strings.Join(chips, " ")
}

func renderInterviewTab(p position.Position) string {
	if len(p.InterviewQuestions) == 0 {
		return mutedStyle.Render("No questions yet. Press e then g to generate interview questions from the bank and your brand values.")
	}
	var b strings.Builder
	for _, group := range questions.GroupByCategory(p.InterviewQuestions) {
		b.WriteString(accentStyle.Render(group.Category+" Questions") + "\n")
		for i, q := range group.Questions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, q)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderEvaluationTab(p position.Position) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("Candidate Evaluation Scorecard") + "\n")
	fmt.Fprintf(&b, "%-32s %8s %12s %10s\n", "Criteria", "Weight", "Score (1-5)", "Weighted")
	for _, c := range p.EvaluationCriteria {
		fmt.Fprintf(&b, "%-32s %7d%% %12s %10s\n", c.Name, c.Weight, "___", "___")
	}
	fmt.Fprintf(&b, "%-32s %7d%%\n\n", "Total", p.TotalWeight())
	b.WriteString(mutedStyle.Render("Score 1-5 for each criteria, then multiply by weight."))
	return b.String()
}

func renderOnboardingTab(p position.Position) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("30/60/90 Day Onboarding Plan") + "\n")
	for _, phase := range p.Onboarding {
		b.WriteString("\n" + labelStyle.Render(phase.Phase) + "\n")
		for _, task := range phase.Tasks {
			fmt.Fprintf(&b, "  [ ] %s\n", task)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
