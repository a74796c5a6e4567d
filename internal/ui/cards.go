package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapText word-wraps s to limit columns, hard-breaking words that do not
// fit on a line of their own.
func wrapText(s string, limit int) string {
	if limit < 1 {
		limit = 1
	}
	return wrap.String(wordwrap.String(s, limit), limit)
}

// RenderFeaturedCard renders an accent-filled card with the title anchored
// to the bottom and the date below it.
func RenderFeaturedCard(title, date string) string {
	width, height := Cols(featuredWidthDP), Rows(featuredHeightDP)
	padX, padY := Cols(featuredPaddingDP), Rows(featuredPaddingDP)
	inner := width - 2 - 2*padX

	var b strings.Builder
	b.WriteString(FeaturedTitleStyle.Render(wrapText(title, inner)))
	b.WriteString(strings.Repeat("\n", Rows(featuredGapDP)+1))
	b.WriteString(FeaturedDateStyle.Render(wrapText(date, inner)))

	return FeaturedCardStyle.
		Width(width - 2).
		Height(height - 2).
		MaxWidth(width).
		MaxHeight(height).
		Padding(padY, padX).
		Render(b.String())
}

// RenderGridCard renders a gray card of the given width with a caption
// chip pinned to its bottom-left corner.
func RenderGridCard(title string, width int) string {
	height := GridCardHeight(width)
	insetX, insetY := Cols(chipInsetDP), Rows(chipInsetDP)
	padX, padY := Cols(chipPadXDP), Rows(chipPadYDP)

	chipWidth := width - 2 - 2*insetX - 2*padX
	chip := ChipStyle.
		Padding(padY, padX).
		Render(wrapText(title, chipWidth))

	return GridCardStyle.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		MaxWidth(width).
		MaxHeight(height).
		Padding(0, insetX, insetY, insetX).
		Render(chip)
}

// RenderFeaturedRow renders the featured cards side by side starting at
// card offset, clipped to width. The row never wraps.
func RenderFeaturedRow(cards []Card, offset, width int) string {
	height := Rows(featuredHeightDP)
	if len(cards) == 0 {
		return strings.Repeat("\n", height-1)
	}
	offset = ClampOffset(offset, len(cards))

	trailing := lipgloss.NewStyle().PaddingRight(Cols(featuredTrailingDP))
	var parts []string
	used := 0
	for _, c := range cards[offset:] {
		if used >= width {
			break
		}
		card := trailing.Render(RenderFeaturedCard(c.Title, c.Date))
		parts = append(parts, card)
		used += lipgloss.Width(card)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	lines := strings.Split(row, "\n")
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(width))
	}
	return strings.Join(lines, "\n")
}

// ClampOffset keeps a featured row offset within [0, n-1].
func ClampOffset(offset, n int) int {
	if offset >= n {
		offset = n - 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// RenderGrid renders placed grid cards as the full scrollable content of
// the grid section, including the bottom content padding.
func RenderGrid(cards []Card) string {
	if len(cards) == 0 {
		return ""
	}

	gap := strings.Repeat(" ", Cols(gridGapDP))

	var rows []string
	for start := 0; start < len(cards); start += gridColumns {
		end := min(start+gridColumns, len(cards))
		var parts []string
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, gap)
			}
			parts = append(parts, RenderGridCard(cards[i].Title, cards[i].Width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	sep := strings.Repeat("\n", Rows(gridGapDP)+1)
	return strings.Join(rows, sep) + strings.Repeat("\n", Rows(gridBottomDP))
}
