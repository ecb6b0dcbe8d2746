package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/hirekit/internal/position"
)

// positionItem implements list.Item for a stored position
type positionItem struct {
	pos position.Position
}

func (i positionItem) Title() string { return i.pos.DisplayTitle() }
func (i positionItem) Description() string {
	return fmt.Sprintf("%s • %s", i.pos.Department, i.pos.Type)
}
func (i positionItem) FilterValue() string { return i.pos.Title }

type templateItem struct {
	tmpl position.Template
}

func (i templateItem) Title() string { return i.tmpl.Title }
func (i templateItem) Description() string {
	return fmt.Sprintf("%s • %s • %d responsibilities", i.tmpl.Department, i.tmpl.Type, len(i.tmpl.Responsibilities))
}
func (i templateItem) FilterValue() string { return i.tmpl.Title }

func templateItems() []list.Item {
	items := make([]list.Item, len(position.Templates))
	for i, tmpl := range position.Templates {
		items[i] = templateItem{tmpl: tmpl}
	}
	return items
}

// refreshPositions rebuilds the list from the store using the current search
// query and keeps the selected position highlighted when it is still visible.
func (a *App) refreshPositions() {
	matches := a.store.List(a.search.Value())
	items := make([]list.Item, len(matches))
	selected := 0
	for i, p := range matches {
		items[i] = positionItem{pos: p}
		if p.ID == a.selectedID {
			selected = i
		}
	}
	a.positions.SetItems(items)
	if len(items) > 0 {
		a.positions.Select(selected)
	}
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch msg.String() {
		case "enter", "esc":
			a.searching = false
			a.search.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		a.refreshPositions()
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "/":
		a.searching = true
		return a, a.search.Focus()
	case "esc":
		if a.search.Value() != "" {
			a.search.SetValue("")
			a.refreshPositions()
		}
		return a, nil
	case "n":
		return a.beginDraft(a.store.Create())
	case "t":
		a.state = stateTemplates
		a.statusMsg = "Pick a template to start from"
		return a, nil
	case "enter":
		item, ok := a.positions.SelectedItem().(positionItem)
		if !ok {
			return a, nil
		}
		return a.openDetail(item.pos.ID)
	}

	var cmd tea.Cmd
	a.positions, cmd = a.positions.Update(msg)
	return a, cmd
}

func (a *App) updateTemplates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.state = stateList
		a.statusMsg = ""
		return a, nil
	case "enter":
		item, ok := a.templates.SelectedItem().(templateItem)
		if !ok {
			return a, nil
		}
		a.logInfo("Template · %s selected", item.tmpl.Title)
		return a.beginDraft(a.store.CreateFromTemplate(item.tmpl))
	}
	var cmd tea.Cmd
	a.templates, cmd = a.templates.Update(msg)
	return a, cmd
}

func (a *App) renderList() string {
	searchLine := a.search.View()
	if !a.searching && a.search.Value() == "" {
		searchLine = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render("/ Search positions...")
	}
	var body string
	if len(a.positions.Items()) == 0 {
		empty := "No positions yet."
		if a.store.Len() > 0 {
			empty = "No matches."
		}
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(1, 0).
			Render(empty)
	} else {
		body = a.positions.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		searchLine,
		body,
		hint("Enter → open    n → new    t → templates    / → search    q → quit"),
	)
}

func (a *App) renderTemplates() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.templates.View(),
		hint("Enter → start draft    Esc → back"),
	)
}
