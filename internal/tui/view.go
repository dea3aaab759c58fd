package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/petitions/internal/model"
	"github.com/idilsaglam/petitions/internal/ui"
)

const dialogWidth = 52

func (m Model) View() string {
	if m.dialog != dialogNone {
		box := m.dialogView()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	th := ui.Current()
	t := m.tabs[m.active]
	empty := len(t.list.Items()) == 0

	var body string
	switch {
	case m.detail != nil:
		body = m.detailView()
	case empty && t.phase == phaseFetching:
		body = m.spinner.View() + " Loading petitions…"
	case empty && t.phase == phaseFailed:
		body = th.Muted.Render("Could not load petitions. Press r to retry.")
	case empty && t.state.Filtered() && len(t.state.All()) > 0:
		body = th.Muted.Render(fmt.Sprintf("No petitions match %q. Press x to clear the filter.", t.state.Keyword()))
	default:
		body = t.list.View()
	}
	return ui.Box().Render(m.tabsView() + "\n\n" + body)
}

func (m Model) tabsView() string {
	th := ui.Current()
	parts := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := t.name
		switch t.phase {
		case phaseFetching:
			label += " " + m.spinner.View()
		case phaseFailed:
			label += " " + th.SymFail
		}
		if i == m.active {
			parts = append(parts, th.ActiveTab.Render(label))
		} else {
			parts = append(parts, th.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) detailView() string {
	th := ui.Current()
	p := m.detail
	return th.Title.Render(p.Title) + "\n" +
		th.Muted.Render(ui.Signatures(p.SignatureCount)+" signatures") + "\n\n" +
		m.viewport.View()
}

func detailBody(p model.Petition, width int) string {
	body := strings.TrimSpace(p.Body)
	if body == "" {
		body = "(no description)"
	}
	if width <= 0 {
		return body
	}
	return lipgloss.NewStyle().Width(width).Render(body)
}

func (m Model) dialogView() string {
	th := ui.Current()
	width := dialogWidth
	if m.width > 0 && m.width-4 < width {
		width = max(m.width-4, 10)
	}
	text := lipgloss.NewStyle().Width(width)

	var title, body, help string
	titleStyle := th.Title
	switch m.dialog {
	case dialogFilter:
		title = "Filter"
		body = text.Render("Filter the petitions") + "\n\n" + m.input.View()
		help = "enter OK · esc Cancel"
	case dialogCredits:
		title = ui.CreditsTitle
		body = text.Render(ui.CreditsMessage)
		help = "enter OK"
	case dialogError:
		title = ui.LoadingErrorTitle
		titleStyle = th.Error
		body = text.Render(ui.LoadingErrorMessage)
		help = "enter OK"
	}
	return ui.Box().Render(titleStyle.Render(title) + "\n\n" + body + "\n\n" + th.Help.Render(help))
}
