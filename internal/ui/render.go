package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/noticias/internal/content"
)

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	Screen         Screen
	Height         int
	SearchView     string
	SearchFocused  bool
	FeaturedOffset int
	// GridView is the windowed grid content. When empty the grid is drawn
	// from its first row.
	GridView string
	HelpView string
}

// FooterRows returns the rows taken by a rendered help footer.
func FooterRows(helpView string) int {
	if helpView == "" {
		return 0
	}
	return lipgloss.Height(HelpStyle.Render(helpView))
}

// Render renders the full screen. The output never has more than Height
// lines: sections that do not fit are left out and the header stays on
// top.
func Render(p RenderParams) string {
	m := Measure(p.Screen.Width, p.Height, FooterRows(p.HelpView))

	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}
	blank := func(n int) {
		for i := 0; i < n; i++ {
			lines = append(lines, "")
		}
	}

	blank(Rows(topSpacerDP))
	add(RenderSearchField(p.SearchView, p.SearchFocused, m.ContentWidth))
	blank(Rows(searchSpacerDP))
	add(RenderTabs(content.Tab(p.Screen.Tabs.Active), m.ContentWidth))
	blank(Rows(tabsSpacerDP))

	for _, s := range p.Screen.Sections {
		switch {
		case s.Layout == LayoutRow && m.ShowFeatured:
			add(renderHeading(s.Heading, rowHint(p.FeaturedOffset, len(s.Cards))))
			add(RenderFeaturedRow(s.Cards, p.FeaturedOffset, m.ContentWidth))
			blank(m.WorldY - m.FeaturedY - m.FeaturedHeight)
		case s.Layout == LayoutGrid && m.ShowGrid:
			add(renderHeading(s.Heading, ""))
			grid := p.GridView
			if grid == "" {
				grid = RenderGrid(s.Cards)
			}
			add(clipLines(grid, m.GridHeight))
		}
	}

	if p.HelpView != "" {
		helpView := HelpStyle.Render(p.HelpView)
		blank(m.Height - lipgloss.Height(helpView) - len(lines))
		add(helpView)
	}

	if len(lines) > m.Height {
		lines = lines[:m.Height]
	}

	pad := strings.Repeat(" ", m.PaddingX)
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// clipLines keeps at most n lines of s.
func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

func renderHeading(heading, hint string) string {
	out := HeadingStyle.Render(heading)
	if hint != "" {
		out += "  " + HintStyle.Render(hint)
	}
	return out
}

// rowHint shows the featured row position when it can scroll.
func rowHint(offset, n int) string {
	if n < 2 {
		return ""
	}
	offset = ClampOffset(offset, n)
	left, right := " ", " "
	if offset > 0 {
		left = SymbolLeft
	}
	if offset < n-1 {
		right = SymbolRight
	}
	return fmt.Sprintf("%s %d/%d %s", left, offset+1, n, right)
}
