// Package content holds the fixed tabs and card tables shown on the screen.
package content

import (
	"strconv"
	"strings"
)

// Tab identifies one of the three category tabs.
type Tab int

const (
	TabNoticias Tab = iota
	TabEventos
	TabClima
)

// tabLabels is indexed by Tab.
var tabLabels = [...]string{"Noticias", "Eventos", "Clima"}

// Section headings shown under the Noticias tab.
const (
	HeadingLatest = "Ultimas noticias"
	HeadingWorld  = "Alrededor del mundo"
)

// Tabs returns all tabs in display order.
func Tabs() []Tab {
	return []Tab{TabNoticias, TabEventos, TabClima}
}

// TabCount is the number of tabs.
const TabCount = len(tabLabels)

// Valid reports whether t is one of the fixed tabs.
func (t Tab) Valid() bool {
	return t >= 0 && int(t) < TabCount
}

// Label returns the tab's display label, or "" for an invalid tab.
func (t Tab) Label() string {
	if !t.Valid() {
		return ""
	}
	return tabLabels[t]
}

func (t Tab) String() string {
	return t.Label()
}

// ParseTab resolves a tab from its label (case-insensitive) or its
// 1-based position.
func ParseTab(s string) (Tab, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		t := Tab(n - 1)
		return t, t.Valid()
	}
	for i, label := range tabLabels {
		if strings.EqualFold(label, s) {
			return Tab(i), true
		}
	}
	return TabNoticias, false
}

// FeaturedCard is a highlighted card in the horizontal row.
type FeaturedCard struct {
	Title string
	Date  string
}

// GridCard is a caption-only card in the two-column grid.
type GridCard struct {
	Title string
}

var featured = [...]FeaturedCard{
	{Title: "El presidente de EE.UU. no muestra signos de arrepentimiento...", Date: "febrero 08 – 2024"},
	{Title: "Bañarse en la piscina del desierto de Cleopatra", Date: "febrero 10 – 2024"},
	{Title: "Gigantes tecnológicos", Date: "febrero 12 – 2024"},
}

var grid = [...]GridCard{
	{Title: "El presidente de EE.UU. no muestra signos de arrepentimiento..."},
	{Title: "Bañarse en la piscina del desierto de Cleopatra"},
	{Title: "Gigantes tecnológicos"},
	{Title: "El rover de Marte envía"},
}

// Featured returns a copy of the featured cards in declared order.
func Featured() []FeaturedCard {
	out := make([]FeaturedCard, len(featured))
	copy(out, featured[:])
	return out
}

// Grid returns a copy of the grid cards in declared order.
func Grid() []GridCard {
	out := make([]GridCard, len(grid))
	copy(out, grid[:])
	return out
}
