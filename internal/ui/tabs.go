package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/noticias/internal/content"
)

// RenderTabs renders the tab labels with an indicator segment under the
// active tab's span.
func RenderTabs(active content.Tab, width int) string {
	spans := TabSpans(width)

	var labels, indicator strings.Builder
	for i, span := range spans {
		style := InactiveTabStyle
		if content.Tab(i) == active {
			style = ActiveTabStyle
		}
		labels.WriteString(style.
			Width(span.Width()).
			MaxHeight(1).
			Align(lipgloss.Center).
			Render(content.Tab(i).Label()))

		if content.Tab(i) == active {
			indicator.WriteString(IndicatorStyle.Render(strings.Repeat(SymbolIndicator, span.Width())))
		} else {
			indicator.WriteString(strings.Repeat(" ", span.Width()))
		}
	}

	return labels.String() + "\n" + indicator.String()
}
