package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/petitions/internal/model"
	"github.com/idilsaglam/petitions/internal/ui"
)

// petitionItem adapts model.Petition to list.Item.
type petitionItem struct {
	p model.Petition
}

func (i petitionItem) FilterValue() string { return i.p.Title }

func toItems(petitions []model.Petition) []list.Item {
	items := make([]list.Item, 0, len(petitions))
	for _, p := range petitions {
		items = append(items, petitionItem{p: p})
	}
	return items
}

// itemDelegate renders two lines per petition: title with signature count,
// then the first line of the body.
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 2 }
func (d itemDelegate) Spacing() int                            { return 1 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(petitionItem)
	if !ok {
		return
	}
	t := ui.Current()

	width := m.Width() - 2
	if width < 20 {
		width = 20
	}
	sig := ui.Signatures(it.p.SignatureCount)
	title := ansi.Truncate(it.p.Title, width-len(sig)-2, "…")
	body := ansi.Truncate(oneLine(it.p.Body), width, "…")

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.SymCursor) + " "
		title = t.Title.Render(title)
	}
	fmt.Fprintf(w, "%s%s  %s\n  %s", prefix, title, t.Muted.Render(sig), t.Muted.Render(body))
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
