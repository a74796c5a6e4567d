package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewSearchInput returns the single-line input backing the search field.
// It has no character limit.
func NewSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = SymbolSearch + " "
	ti.PromptStyle = SearchIconStyle
	ti.TextStyle = SearchTextStyle
	ti.PlaceholderStyle = SearchIconStyle
	ti.CharLimit = 0
	return ti
}

// RenderSearchField wraps the input view in the rounded search box.
func RenderSearchField(inputView string, focused bool, width int) string {
	style := SearchStyle
	if focused {
		style = SearchFocusedStyle
	}
	return style.Width(width - 2).MaxHeight(3).Render(inputView)
}

// SearchInputWidth is the text width available inside a search field of
// the given outer width.
func SearchInputWidth(width int) int {
	// border, padding, prompt, cursor
	w := width - 2 - 2 - lipgloss.Width(SymbolSearch+" ") - 1
	if w < 1 {
		w = 1
	}
	return w
}
