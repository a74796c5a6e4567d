package app

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/noticias/internal/config"
	"github.com/henri123lemoine/noticias/internal/content"
	"github.com/henri123lemoine/noticias/internal/ui"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func sectionTitles(s ui.Screen, layout ui.Layout) []string {
	for _, sec := range s.Sections {
		if sec.Layout == layout {
			titles := []string{}
			for _, c := range sec.Cards {
				titles = append(titles, c.Title)
			}
			return titles
		}
	}
	return nil
}

func declaredFeaturedTitles() []string {
	var out []string
	for _, c := range content.Featured() {
		out = append(out, c.Title)
	}
	return out
}

func declaredGridTitles() []string {
	var out []string
	for _, c := range content.Grid() {
		out = append(out, c.Title)
	}
	return out
}

func TestNewModel(t *testing.T) {
	cfg := config.DefaultConfig()
	model := New(cfg)

	if model.state != StateBrowse {
		t.Errorf("Expected initial state StateBrowse, got %d", model.state)
	}
	if model.Tab() != content.TabNoticias {
		t.Errorf("Expected Noticias tab initially, got %v", model.Tab())
	}
	if model.Query() != "" {
		t.Errorf("Expected empty query, got %q", model.Query())
	}
	if model.config != cfg {
		t.Error("Config not set correctly")
	}
}

func TestInitialScreen(t *testing.T) {
	model := New(config.DefaultConfig())
	screen := model.screen()

	if len(screen.Sections) != 2 {
		t.Fatalf("Expected 2 sections on Noticias, got %d", len(screen.Sections))
	}
	if screen.Tabs.Active != 0 {
		t.Errorf("Expected active tab 0, got %d", screen.Tabs.Active)
	}

	featured := sectionTitles(screen, ui.LayoutRow)
	if !reflect.DeepEqual(featured, declaredFeaturedTitles()) {
		t.Errorf("Featured titles = %v", featured)
	}
	grid := sectionTitles(screen, ui.LayoutGrid)
	if !reflect.DeepEqual(grid, declaredGridTitles()) {
		t.Errorf("Grid titles = %v", grid)
	}
	if featured[2] != "Gigantes tecnológicos" || grid[3] != "El rover de Marte envía" {
		t.Errorf("Unexpected literal titles: %v / %v", featured, grid)
	}
}

func TestSelectTabFromAnyState(t *testing.T) {
	keys := []string{"1", "2", "3"}

	for prior := range keys {
		for target := range keys {
			model := New(config.DefaultConfig())
			model = press(t, model, keyRunes(keys[prior]), keyRunes(keys[target]))
			if int(model.Tab()) != target {
				t.Errorf("From tab %d, selecting %d gave %d", prior, target, model.Tab())
			}
		}
	}
}

func TestTabCycle(t *testing.T) {
	model := New(config.DefaultConfig())

	model = press(t, model, tea.KeyMsg{Type: tea.KeyTab})
	if model.Tab() != content.TabEventos {
		t.Errorf("Expected Eventos after tab, got %v", model.Tab())
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	if model.Tab() != content.TabNoticias {
		t.Errorf("Expected wrap to Noticias, got %v", model.Tab())
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeyShiftTab})
	if model.Tab() != content.TabClima {
		t.Errorf("Expected Clima after shift+tab, got %v", model.Tab())
	}
}

func TestTabIndexStaysInRange(t *testing.T) {
	model := New(config.DefaultConfig())
	inputs := []tea.Msg{
		keyRunes("3"), tea.KeyMsg{Type: tea.KeyTab}, keyRunes("9"), keyRunes("0"),
		tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab},
		keyRunes("2"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab},
	}

	for i, msg := range inputs {
		model = press(t, model, msg)
		if !model.Tab().Valid() {
			t.Fatalf("Tab out of range after input %d: %d", i, model.Tab())
		}
	}
}

func TestReselectingActiveTabIsIdempotent(t *testing.T) {
	for _, k := range []string{"1", "2", "3"} {
		model := press(t, New(config.DefaultConfig()), keyRunes(k))
		before := model.View()

		model = press(t, model, keyRunes(k))
		if after := model.View(); after != before {
			t.Errorf("Re-selecting tab %s changed the rendered output", k)
		}
	}
}

func TestOtherTabsHideContent(t *testing.T) {
	model := New(config.DefaultConfig())
	initial := model.screen()
	initialView := model.View()

	for _, k := range []string{"2", "3"} {
		m := press(t, model, keyRunes(k))
		if n := len(m.screen().Sections); n != 0 {
			t.Errorf("Expected no sections on tab %s, got %d", k, n)
		}
		view := m.View()
		if strings.Contains(view, content.HeadingLatest) || strings.Contains(view, content.HeadingWorld) {
			t.Errorf("Tab %s should not render card sections", k)
		}
	}

	// Eventos, then back to Noticias
	model = press(t, model, keyRunes("2"), keyRunes("1"))
	if !reflect.DeepEqual(model.screen(), initial) {
		t.Error("Returning to Noticias should restore the original cards")
	}
	if model.View() != initialView {
		t.Error("Returning to Noticias should restore the original view")
	}
}

func TestSearchStoresExactQuery(t *testing.T) {
	inputs := []string{
		"hola",
		"Bañarse en la piscina",
		"  espacios  ",
		"EE.UU. ...",
		"🙂",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			model := press(t, New(config.DefaultConfig()), keyRunes("/"))
			if model.state != StateSearch {
				t.Fatalf("Expected StateSearch after '/', got %d", model.state)
			}
			model = press(t, model, keyRunes(in))
			if model.Query() != in {
				t.Errorf("Query() = %q, want %q", model.Query(), in)
			}
		})
	}
}

func TestSearchIsSingleLine(t *testing.T) {
	// Tabs and newlines in pasted text become spaces in the input
	tests := []struct{ in, want string }{
		{"a\tb", "a b"},
		{"a\nb", "a b"},
	}

	for _, tt := range tests {
		model := press(t, New(config.DefaultConfig()), keyRunes("/"), keyRunes(tt.in))
		if model.Query() != tt.want {
			t.Errorf("Query() = %q, want %q", model.Query(), tt.want)
		}
		if model.Query() != model.searchInput.Value() {
			t.Errorf("Query %q should match the field value %q", model.Query(), model.searchInput.Value())
		}
	}
}

func TestSearchReplacesWithFullValue(t *testing.T) {
	model := press(t, New(config.DefaultConfig()), keyRunes("/"), keyRunes("clima"))
	model = press(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	if model.Query() != "clim" {
		t.Errorf("Expected 'clim' after backspace, got %q", model.Query())
	}

	model = press(t, model, keyRunes("a!"))
	if model.Query() != "clima!" {
		t.Errorf("Expected 'clima!', got %q", model.Query())
	}
}

func TestSearchFocusAndBlur(t *testing.T) {
	model := press(t, New(config.DefaultConfig()), keyRunes("/"))

	// Keys go to the input while focused
	model = press(t, model, keyRunes("q2"))
	if model.ShouldQuit() {
		t.Error("'q' should be typed, not quit, while searching")
	}
	if model.Tab() != content.TabNoticias {
		t.Error("'2' should be typed, not switch tabs, while searching")
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if model.state != StateBrowse {
		t.Errorf("Expected StateBrowse after esc, got %d", model.state)
	}
	if model.Query() != "q2" {
		t.Errorf("Blurring should keep the query, got %q", model.Query())
	}
}

func TestSearchDoesNotFilterByDefault(t *testing.T) {
	model := press(t, New(config.DefaultConfig()), keyRunes("/"), keyRunes("rover"))
	screen := model.screen()

	if screen.Search.Functional {
		t.Error("Search should be flagged as non-functional by default")
	}
	if n := len(sectionTitles(screen, ui.LayoutRow)); n != 3 {
		t.Errorf("Expected 3 featured cards, got %d", n)
	}
	if n := len(sectionTitles(screen, ui.LayoutGrid)); n != 4 {
		t.Errorf("Expected 4 grid cards, got %d", n)
	}
}

func TestSearchFilterWhenEnabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.Filter = true

	model := press(t, New(cfg), keyRunes("/"), keyRunes("rover"))
	screen := model.screen()

	if !screen.Search.Functional {
		t.Error("Search should be flagged functional when filtering is enabled")
	}
	if got := sectionTitles(screen, ui.LayoutGrid); !reflect.DeepEqual(got, []string{"El rover de Marte envía"}) {
		t.Errorf("Expected only the rover card, got %v", got)
	}
	if n := len(sectionTitles(screen, ui.LayoutRow)); n != 0 {
		t.Errorf("Expected no featured matches, got %d", n)
	}

	// Clearing the query restores everything in declared order
	for range "rover" {
		model = press(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	screen = model.screen()
	if got := sectionTitles(screen, ui.LayoutGrid); !reflect.DeepEqual(got, declaredGridTitles()) {
		t.Errorf("Expected all grid cards after clearing, got %v", got)
	}
	if got := sectionTitles(screen, ui.LayoutRow); !reflect.DeepEqual(got, declaredFeaturedTitles()) {
		t.Errorf("Expected all featured cards after clearing, got %v", got)
	}
}

func TestFeaturedScroll(t *testing.T) {
	model := New(config.DefaultConfig())

	model = press(t, model, tea.KeyMsg{Type: tea.KeyRight})
	if model.featuredOffset != 1 {
		t.Errorf("Expected offset 1 after right, got %d", model.featuredOffset)
	}

	model = press(t, model, keyRunes("l"), keyRunes("l"))
	if model.featuredOffset != 2 {
		t.Errorf("Expected offset clamped at 2, got %d", model.featuredOffset)
	}

	model = press(t, model, keyRunes("h"))
	if model.featuredOffset != 1 {
		t.Errorf("Expected offset 1 after 'h', got %d", model.featuredOffset)
	}

	// Switching tabs resets the row
	model = press(t, model, keyRunes("2"), tea.KeyMsg{Type: tea.KeyRight}, keyRunes("1"))
	if model.featuredOffset != 0 {
		t.Errorf("Expected offset 0 after tab switch, got %d", model.featuredOffset)
	}
}

func TestGridScroll(t *testing.T) {
	model := press(t, New(config.DefaultConfig()), tea.WindowSizeMsg{Width: 80, Height: 30})

	model = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	if model.gridView.YOffset != 1 {
		t.Errorf("Expected grid offset 1 after down, got %d", model.gridView.YOffset)
	}

	model = press(t, model, keyRunes("G"))
	if !model.gridView.AtBottom() {
		t.Error("Expected grid at bottom after 'G'")
	}

	model = press(t, model, keyRunes("g"))
	if model.gridView.YOffset != 0 {
		t.Errorf("Expected grid offset 0 after 'g', got %d", model.gridView.YOffset)
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeyUp})
	if model.gridView.YOffset != 0 {
		t.Errorf("Grid offset should not go negative, got %d", model.gridView.YOffset)
	}
}

func TestMouseSelectsTab(t *testing.T) {
	model := press(t, New(config.DefaultConfig()), tea.WindowSizeMsg{Width: 80, Height: 40})
	metrics := ui.Measure(80, 40, 1)
	spans := ui.TabSpans(metrics.ContentWidth)

	click := tea.MouseMsg{
		X:      metrics.PaddingX + spans[2].Start + 1,
		Y:      metrics.TabsY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	model = press(t, model, click)
	if model.Tab() != content.TabClima {
		t.Errorf("Expected Clima after click, got %v", model.Tab())
	}

	// Clicking the indicator row works too
	click.X = metrics.PaddingX + spans[0].Start
	click.Y = metrics.TabsY + 1
	model = press(t, model, click)
	if model.Tab() != content.TabNoticias {
		t.Errorf("Expected Noticias after click, got %v", model.Tab())
	}
}

func TestMouseFocusesSearch(t *testing.T) {
	model := press(t, New(config.DefaultConfig()), tea.WindowSizeMsg{Width: 80, Height: 40})
	metrics := ui.Measure(80, 40, 1)

	model = press(t, model, tea.MouseMsg{
		X:      metrics.PaddingX + 4,
		Y:      metrics.SearchY + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if model.state != StateSearch {
		t.Errorf("Expected StateSearch after clicking the field, got %d", model.state)
	}

	model = press(t, model, tea.MouseMsg{
		X:      metrics.PaddingX,
		Y:      metrics.GridY + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if model.state != StateBrowse {
		t.Errorf("Expected StateBrowse after clicking elsewhere, got %d", model.state)
	}
}

func TestWindowSizeMessage(t *testing.T) {
	model := New(config.DefaultConfig())

	model = press(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})
	if model.width != 120 {
		t.Errorf("Expected width 120, got %d", model.width)
	}
	if model.height != 40 {
		t.Errorf("Expected height 40, got %d", model.height)
	}
	if want := ui.Measure(120, 40, 1).GridHeight; model.gridView.Height != want {
		t.Errorf("Expected grid viewport height %d, got %d", want, model.gridView.Height)
	}
}

func TestQuit(t *testing.T) {
	model := New(config.DefaultConfig())

	next, cmd := model.Update(keyRunes("q"))
	if !next.(Model).ShouldQuit() {
		t.Error("Expected ShouldQuit after 'q'")
	}
	if cmd == nil {
		t.Error("Expected quit command")
	}

	// ctrl+c quits even while searching
	model = press(t, model, keyRunes("/"))
	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).ShouldQuit() {
		t.Error("Expected ShouldQuit after ctrl+c in search")
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keys.NextTab = "n"
	cfg.Keys.Quit = "x"

	model := press(t, New(cfg), keyRunes("n"))
	if model.Tab() != content.TabEventos {
		t.Errorf("Expected custom next_tab to select Eventos, got %v", model.Tab())
	}

	model = press(t, model, keyRunes("q"))
	if model.ShouldQuit() {
		t.Error("'q' should no longer quit")
	}
	model = press(t, model, keyRunes("x"))
	if !model.ShouldQuit() {
		t.Error("Expected custom quit key to quit")
	}
}

func TestHelpToggle(t *testing.T) {
	model := New(config.DefaultConfig())
	short := model.gridView.Height

	model = press(t, model, keyRunes("?"))
	if !model.help.ShowAll {
		t.Error("Expected full help after '?'")
	}
	if model.gridView.Height >= short {
		t.Errorf("Expected grid viewport to shrink under full help, got %d (was %d)", model.gridView.Height, short)
	}

	model = press(t, model, keyRunes("?"))
	if model.help.ShowAll {
		t.Error("Expected short help after second '?'")
	}
	if model.gridView.Height != short {
		t.Errorf("Expected grid viewport height %d, got %d", short, model.gridView.Height)
	}
}

func TestViewFitsTerminal(t *testing.T) {
	sizes := []struct{ width, height int }{
		{80, 40}, {120, 50}, {80, 24}, {40, 20}, {100, 14}, {30, 8}, {30, 3},
	}

	for _, sz := range sizes {
		for _, full := range []bool{false, true} {
			model := press(t, New(config.DefaultConfig()), tea.WindowSizeMsg{Width: sz.width, Height: sz.height})
			if full {
				model = press(t, model, keyRunes("?"))
			}

			lines := strings.Split(model.View(), "\n")
			if len(lines) > sz.height {
				t.Errorf("%dx%d full=%v: %d lines exceed the terminal height", sz.width, sz.height, full, len(lines))
			}

			metrics := ui.Measure(sz.width, sz.height, 0)
			if sz.height > metrics.TabsY && !strings.Contains(lines[metrics.TabsY], "Noticias") {
				t.Errorf("%dx%d full=%v: tab row not on line %d", sz.width, sz.height, full, metrics.TabsY)
			}
		}
	}
}

func TestFullHelpFallsBackWhenTooTall(t *testing.T) {
	model := press(t, New(config.DefaultConfig()), tea.WindowSizeMsg{Width: 80, Height: 14}, keyRunes("?"))
	view := model.View()
	if strings.Contains(view, "page up") {
		t.Error("Full help should not be shown when it does not fit")
	}
	if !strings.Contains(view, "next tab") {
		t.Error("Expected short help as the fallback")
	}

	model = press(t, model, tea.WindowSizeMsg{Width: 80, Height: 40})
	if !strings.Contains(model.View(), "page up") {
		t.Error("Expected full help once the terminal is tall enough")
	}
}

func TestMouseWheelOutsideHiddenRow(t *testing.T) {
	// At 80x24 with full help only the grid section fits
	model := press(t, New(config.DefaultConfig()), tea.WindowSizeMsg{Width: 80, Height: 24}, keyRunes("?"))
	metrics := model.metrics()
	if metrics.ShowFeatured || !metrics.ShowGrid {
		t.Fatalf("Expected only the grid to fit: %+v", metrics)
	}

	model = press(t, model, tea.MouseMsg{
		X:      metrics.PaddingX + 1,
		Y:      metrics.GridY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	})
	if model.featuredOffset != 0 {
		t.Errorf("Wheel over the grid should not scroll the featured row, offset %d", model.featuredOffset)
	}
	if model.gridView.YOffset == 0 {
		t.Error("Expected wheel over the grid to scroll it")
	}
}

func TestSnapshot(t *testing.T) {
	screen, view := Snapshot(config.DefaultConfig(), content.TabEventos, "hola", 80, 40)

	if screen.Tabs.Active != int(content.TabEventos) {
		t.Errorf("Expected Eventos active, got %d", screen.Tabs.Active)
	}
	if len(screen.Sections) != 0 {
		t.Errorf("Expected no sections, got %d", len(screen.Sections))
	}
	if screen.Search.Query != "hola" {
		t.Errorf("Expected query 'hola', got %q", screen.Search.Query)
	}
	if !strings.Contains(view, "Eventos") {
		t.Error("Expected tab labels in snapshot view")
	}

	screen, view = Snapshot(config.DefaultConfig(), content.TabNoticias, "", 80, 40)
	if len(screen.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(screen.Sections))
	}
	if !strings.Contains(view, content.HeadingWorld) {
		t.Error("Expected grid heading in snapshot view")
	}
}
