/*
Package tui is the interactive petitions browser.

Each tab (All, Top Rated) owns its petition list, its filter and its fetch
lifecycle: Idle → Fetching → Loaded | Failed. Fetches run as tea.Cmds off
the event loop and publish their result as a loadedMsg handled in Update.
A refresh cancels the fetch in flight; results carrying an outdated
generation are dropped.
*/
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/petitions/internal/feed"
	"github.com/idilsaglam/petitions/internal/filter"
	"github.com/idilsaglam/petitions/internal/model"
	"github.com/idilsaglam/petitions/internal/ui"
)

// Loader loads the petitions of one feed variant. *feed.Client satisfies it.
type Loader interface {
	Load(ctx context.Context, mode feed.Mode) ([]model.Petition, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, mode feed.Mode) ([]model.Petition, error)

func (f LoaderFunc) Load(ctx context.Context, mode feed.Mode) ([]model.Petition, error) {
	return f(ctx, mode)
}

// Options tune the browser at start.
type Options struct {
	Mode    feed.Mode // tab shown first
	Keyword string    // initial filter for that tab
	Logger  *slog.Logger

	// Context is the parent of every fetch; cancelling it stops them all.
	// Nil means context.Background().
	Context context.Context
}

type phase int

const (
	phaseIdle phase = iota
	phaseFetching
	phaseLoaded
	phaseFailed
)

func (p phase) String() string {
	switch p {
	case phaseFetching:
		return "fetching"
	case phaseLoaded:
		return "loaded"
	case phaseFailed:
		return "failed"
	}
	return "idle"
}

type dialog int

const (
	dialogNone dialog = iota
	dialogFilter
	dialogCredits
	dialogError
)

// loadedMsg is the single result of one fetch.
type loadedMsg struct {
	tab       int
	gen       uint64
	petitions []model.Petition
	err       error
}

type tab struct {
	name   string
	mode   feed.Mode
	phase  phase
	state  filter.State
	list   list.Model
	gen    uint64
	cancel context.CancelFunc
}

// Model implements tea.Model.
type Model struct {
	ctx    context.Context
	loader Loader
	log    *slog.Logger
	keys   keyMap

	tabs   []tab
	active int

	dialog dialog
	input  textinput.Model

	detail   *model.Petition
	viewport viewport.Model

	spinner       spinner.Model
	width, height int

	initCmd tea.Cmd
}

// New builds the browser and prepares the first fetch, started by Init.
func New(loader Loader, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	keys := defaultKeyMap()

	m := Model{
		ctx:    ctx,
		loader: loader,
		log:    logger,
		keys:   keys,
		tabs: []tab{
			newTab("All", feed.ModeAll, keys),
			newTab("Top Rated", feed.ModeTopRated, keys),
		},
		viewport: viewport.New(0, 0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for i := range m.tabs {
		if m.tabs[i].mode == opts.Mode {
			m.active = i
		}
	}

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "keyword"
	m.input.CharLimit = 200

	if opts.Keyword != "" {
		m.applyKeyword(m.active, opts.Keyword)
	}
	m.initCmd = m.startFetch(m.active)
	return m
}

func newTab(name string, mode feed.Mode, keys keyMap) tab {
	th := ui.Current()
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("petition", "petitions")
	l.Styles.Title = th.Title
	l.Styles.HelpStyle = th.Help
	l.Styles.PaginationStyle = th.Help
	l.AdditionalShortHelpKeys = keys.listKeys
	l.AdditionalFullHelpKeys = keys.listKeys

	t := tab{name: name, mode: mode, list: l}
	t.syncTitle()
	return t
}

func (t *tab) syncTitle() {
	label := "Filter"
	if t.state.Filtered() {
		label = fmt.Sprintf("Filter (current: %s)", t.state.Keyword())
	}
	t.list.Title = ui.AppTitle + " · " + label
}

func (m Model) Init() tea.Cmd { return tea.Batch(m.spinner.Tick, m.initCmd) }

// startFetch cancels any fetch in flight for tab i and starts a new one.
func (m *Model) startFetch(i int) tea.Cmd {
	t := &m.tabs[i]
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	t.cancel = cancel
	t.gen++
	t.phase = phaseFetching

	gen, mode, loader := t.gen, t.mode, m.loader
	m.log.Debug("fetch started", "tab", mode.String(), "generation", gen)
	return func() tea.Msg {
		petitions, err := loader.Load(ctx, mode)
		return loadedMsg{tab: i, gen: gen, petitions: petitions, err: err}
	}
}

func (m *Model) handleLoaded(msg loadedMsg) tea.Cmd {
	if msg.tab < 0 || msg.tab >= len(m.tabs) {
		return nil
	}
	t := &m.tabs[msg.tab]
	if msg.gen != t.gen || t.phase != phaseFetching {
		m.log.Debug("dropping stale feed result", "tab", t.mode.String(), "generation", msg.gen, "current", t.gen, "phase", t.phase.String())
		return nil
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}

	if msg.err != nil {
		t.phase = phaseFailed
		m.log.Warn("feed load failed", "tab", t.mode.String(), "error", msg.err)
		if msg.tab == m.active {
			m.closeDialog()
			m.dialog = dialogError
		}
		return nil
	}

	t.phase = phaseLoaded
	t.state.SetAll(msg.petitions)
	visible := t.state.Visible()
	m.log.Info("feed loaded", "tab", t.mode.String(), "petitions", len(msg.petitions), "visible", len(visible))
	cmd := t.list.SetItems(toItems(visible))
	// A refresh may return fewer petitions than the cursor position.
	if t.list.Index() >= len(visible) {
		t.list.Select(max(len(visible)-1, 0))
	}
	return cmd
}

func (m *Model) applyKeyword(i int, keyword string) tea.Cmd {
	t := &m.tabs[i]
	t.state.SetKeyword(keyword)
	t.syncTitle()
	t.list.ResetSelected()
	return t.list.SetItems(toItems(t.state.Visible()))
}

func (m *Model) switchTab(i int) tea.Cmd {
	m.active = (i + len(m.tabs)) % len(m.tabs)
	if m.tabs[m.active].phase == phaseIdle {
		return m.startFetch(m.active)
	}
	return nil
}

func (m *Model) openDetail(p model.Petition) {
	m.detail = &p
	m.viewport.SetContent(detailBody(p, m.viewport.Width))
	m.viewport.GotoTop()
}

func (m *Model) closeDialog() {
	m.dialog = dialogNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) quit() tea.Cmd {
	for i := range m.tabs {
		if m.tabs[i].cancel != nil {
			m.tabs[i].cancel()
			m.tabs[i].cancel = nil
		}
	}
	return tea.Quit
}

// layout sizes the lists and the detail viewport to fit inside the frame.
func (m *Model) layout() {
	innerW := m.width - 4  // border + padding
	innerH := m.height - 4 // border + tab bar
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	for i := range m.tabs {
		m.tabs[i].list.SetSize(innerW, innerH)
	}
	m.viewport.Width = innerW
	m.viewport.Height = max(innerH-3, 0) // title, signatures, blank line
	if m.detail != nil {
		m.viewport.SetContent(detailBody(*m.detail, innerW))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		cmd = m.handleLoaded(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			cmd = m.quit()
			return m, cmd
		}
		switch {
		case m.dialog != dialogNone:
			return m.updateDialog(msg)
		case m.detail != nil:
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	if m.dialog == dialogFilter {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	t := &m.tabs[m.active]
	t.list, cmd = t.list.Update(msg)
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.dialog != dialogFilter {
		if key.Matches(msg, m.keys.Confirm, m.keys.Cancel) {
			m.closeDialog()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		keyword := m.input.Value()
		m.closeDialog()
		cmd = m.applyKeyword(m.active, keyword)
		m.log.Debug("filter applied", "tab", m.tabs[m.active].mode.String(), "keyword", keyword)
		return m, cmd
	case key.Matches(msg, m.keys.Cancel):
		m.closeDialog()
		return m, nil
	}
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.detail = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t := &m.tabs[m.active]

	switch {
	case key.Matches(msg, m.keys.Quit):
		cmd = m.quit()
		return m, cmd
	case key.Matches(msg, m.keys.NextTab):
		cmd = m.switchTab(m.active + 1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevTab):
		cmd = m.switchTab(m.active - 1)
		return m, cmd
	case key.Matches(msg, m.keys.Filter):
		m.dialog = dialogFilter
		m.input.SetValue(t.state.Keyword())
		m.input.CursorEnd()
		cmd = m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ClearFilter):
		if t.state.Filtered() {
			cmd = m.applyKeyword(m.active, "")
		}
		return m, cmd
	case key.Matches(msg, m.keys.Refresh):
		cmd = m.startFetch(m.active)
		return m, cmd
	case key.Matches(msg, m.keys.Credits):
		m.dialog = dialogCredits
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if it, ok := t.list.SelectedItem().(petitionItem); ok {
			m.openDetail(it.p)
		}
		return m, nil
	}

	t.list, cmd = t.list.Update(msg)
	return m, cmd
}
