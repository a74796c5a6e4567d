package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/noticias/internal/config"
	"github.com/henri123lemoine/noticias/internal/content"
	"github.com/henri123lemoine/noticias/internal/debug"
	"github.com/henri123lemoine/noticias/internal/ui"
)

// State represents the current input mode.
type State int

const (
	StateBrowse State = iota
	StateSearch
)

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config

	// Data
	featured         []content.FeaturedCard
	grid             []content.GridCard
	filteredFeatured []content.FeaturedCard
	filteredGrid     []content.GridCard

	// State
	state          State
	tab            content.Tab
	query          string
	featuredOffset int

	// Search
	searchInput textinput.Model

	// UI
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	gridView viewport.Model

	shouldQuit bool
}

// New creates a new Model.
func New(cfg *config.Config) Model {
	m := Model{
		config:      cfg,
		featured:    content.Featured(),
		grid:        content.Grid(),
		state:       StateBrowse,
		tab:         content.TabNoticias,
		searchInput: ui.NewSearchInput(),
		keys:        KeyMapFromConfig(&cfg.Keys),
		help:        help.New(),
		gridView:    viewport.New(0, 0),
	}
	m.resize(ui.DefaultWidth, ui.DefaultHeight)
	m.applyFilter()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		debug.Log("resized to %dx%d", msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.shouldQuit = true
			return m, tea.Quit
		}
		if m.state == StateSearch {
			return m.handleSearchKeys(msg)
		}
		return m.handleBrowseKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blink and other input messages
	if m.state == StateSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleBrowseKeys handles key presses while the search field is blurred.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m, m.focusSearch()
	case key.Matches(msg, m.keys.Tab1):
		m.selectTab(content.TabNoticias)
	case key.Matches(msg, m.keys.Tab2):
		m.selectTab(content.TabEventos)
	case key.Matches(msg, m.keys.Tab3):
		m.selectTab(content.TabClima)
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab((m.tab + 1) % content.Tab(content.TabCount))
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab((m.tab + content.Tab(content.TabCount) - 1) % content.Tab(content.TabCount))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitGrid()
	}

	if m.tab != content.TabNoticias {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.scrollFeatured(-1)
	case key.Matches(msg, m.keys.Right):
		m.scrollFeatured(1)
	case key.Matches(msg, m.keys.Up):
		m.gridView.SetYOffset(m.gridView.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.gridView.SetYOffset(m.gridView.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.gridView.SetYOffset(m.gridView.YOffset - m.gridView.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.gridView.SetYOffset(m.gridView.YOffset + m.gridView.Height)
	case key.Matches(msg, m.keys.Home):
		m.gridView.GotoTop()
	case key.Matches(msg, m.keys.End):
		m.gridView.GotoBottom()
	}
	return m, nil
}

// handleSearchKeys handles key presses while the search field is focused.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		m.blurSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.setQuery(m.searchInput.Value())
	return m, cmd
}

// handleMouse handles clicks on the search field and tabs, and wheel
// scrolling over the card sections.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	metrics := m.metrics()
	x := msg.X - metrics.PaddingX

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case msg.Y >= metrics.TabsY && msg.Y <= metrics.TabsY+1:
			if t, ok := ui.TabAt(x, metrics.ContentWidth); ok {
				m.selectTab(t)
			}
		case msg.Y >= metrics.SearchY && msg.Y < metrics.SearchY+3:
			return m, m.focusSearch()
		default:
			m.blurSearch()
		}
		return m, nil
	}

	if m.tab != content.TabNoticias {
		return m, nil
	}

	inRow := metrics.ShowFeatured &&
		msg.Y >= metrics.FeaturedY && msg.Y < metrics.FeaturedY+metrics.FeaturedHeight
	inGrid := metrics.ShowGrid &&
		msg.Y >= metrics.GridY && msg.Y < metrics.GridY+metrics.GridHeight
	switch {
	case inRow && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft):
		m.scrollFeatured(-1)
	case inRow && (msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight):
		m.scrollFeatured(1)
	case inGrid:
		var cmd tea.Cmd
		m.gridView, cmd = m.gridView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectTab makes t the active tab. Selecting the active tab is a no-op.
func (m *Model) selectTab(t content.Tab) {
	if !t.Valid() || t == m.tab {
		return
	}
	debug.Log("tab %s -> %s", m.tab, t)
	m.tab = t
	m.featuredOffset = 0
	m.refreshGrid()
	m.gridView.GotoTop()
}

func (m *Model) focusSearch() tea.Cmd {
	m.state = StateSearch
	return m.searchInput.Focus()
}

func (m *Model) blurSearch() {
	m.state = StateBrowse
	m.searchInput.Blur()
}

// setQuery stores the full input value unchanged.
func (m *Model) setQuery(q string) {
	if q == m.query {
		return
	}
	m.query = q
	debug.Log("query updated (%d bytes)", len(q))
	if m.config.Search.Filter {
		m.applyFilter()
	}
}

func (m *Model) scrollFeatured(delta int) {
	m.featuredOffset = ui.ClampOffset(m.featuredOffset+delta, len(m.filteredFeatured))
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	metrics := ui.Measure(width, height, 0)
	m.searchInput.Width = ui.SearchInputWidth(metrics.ContentWidth)
	m.help.Width = metrics.ContentWidth
	m.gridView.Width = metrics.ContentWidth
	m.fitGrid()
	m.refreshGrid()
}

// fitGrid sizes the grid viewport to the rows left above the help footer.
func (m *Model) fitGrid() {
	m.gridView.Height = max(m.metrics().GridHeight, 1)
}

// metrics measures the screen with the rows taken by the current footer.
func (m Model) metrics() ui.Metrics {
	return ui.Measure(m.width, m.height, ui.FooterRows(m.helpView()))
}

// helpView renders the help footer. Full help falls back to short help,
// and short help to none, when it would not fit below the header.
func (m Model) helpView() string {
	if !m.config.UI.ShowHelp {
		return ""
	}
	h := m.help
	view := h.View(m.keys)
	if h.ShowAll && !ui.FooterFits(m.height, ui.FooterRows(view)) {
		h.ShowAll = false
		view = h.View(m.keys)
	}
	if !ui.FooterFits(m.height, ui.FooterRows(view)) {
		return ""
	}
	return view
}

// refreshGrid re-renders the grid content for the current width.
func (m *Model) refreshGrid() {
	for _, s := range m.screen().Sections {
		if s.Layout == ui.LayoutGrid {
			m.gridView.SetContent(ui.RenderGrid(s.Cards))
			return
		}
	}
	m.gridView.SetContent("")
}

// featuredSource implements fuzzy.Source for featured cards.
type featuredSource []content.FeaturedCard

func (f featuredSource) String(i int) string {
	return f[i].Title + " " + f[i].Date
}

func (f featuredSource) Len() int {
	return len(f)
}

// gridSource implements fuzzy.Source for grid cards.
type gridSource []content.GridCard

func (g gridSource) String(i int) string {
	return g[i].Title
}

func (g gridSource) Len() int {
	return len(g)
}

// applyFilter narrows both card collections by the query when filtering is
// enabled. Matches keep their declared order.
func (m *Model) applyFilter() {
	if !m.config.Search.Filter || m.query == "" {
		m.filteredFeatured = m.featured
		m.filteredGrid = m.grid
	} else {
		m.filteredFeatured = nil
		for _, i := range matchedIndexes(m.query, featuredSource(m.featured)) {
			m.filteredFeatured = append(m.filteredFeatured, m.featured[i])
		}
		m.filteredGrid = nil
		for _, i := range matchedIndexes(m.query, gridSource(m.grid)) {
			m.filteredGrid = append(m.filteredGrid, m.grid[i])
		}
	}

	m.featuredOffset = ui.ClampOffset(m.featuredOffset, len(m.filteredFeatured))
	m.refreshGrid()
}

// matchedIndexes returns the indexes of src matching pattern in ascending
// order.
func matchedIndexes(pattern string, src fuzzy.Source) []int {
	hit := make([]bool, src.Len())
	for _, match := range fuzzy.FindFrom(pattern, src) {
		hit[match.Index] = true
	}
	var out []int
	for i, ok := range hit {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func (m Model) screen() ui.Screen {
	return ui.Compose(ui.ComposeParams{
		Width:    m.width,
		Tab:      m.tab,
		Query:    m.query,
		Filtered: m.config.Search.Filter,
		Featured: m.filteredFeatured,
		Grid:     m.filteredGrid,
	})
}

// View renders the UI.
func (m Model) View() string {
	return ui.Render(ui.RenderParams{
		Screen:         m.screen(),
		Height:         m.height,
		SearchView:     m.searchInput.View(),
		SearchFocused:  m.state == StateSearch,
		FeaturedOffset: m.featuredOffset,
		GridView:       m.gridView.View(),
		HelpView:       m.helpView(),
	})
}

// Tab returns the active tab.
func (m Model) Tab() content.Tab {
	return m.tab
}

// Query returns the current search query.
func (m Model) Query() string {
	return m.query
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Snapshot composes and renders a single frame without a terminal. The
// frame has no help footer.
func Snapshot(cfg *config.Config, tab content.Tab, query string, width, height int) (ui.Screen, string) {
	c := *cfg
	c.UI.ShowHelp = false

	m := New(&c)
	m.resize(width, height)
	m.selectTab(tab)
	m.searchInput.SetValue(query)
	m.setQuery(m.searchInput.Value())

	return m.screen(), m.View()
}
