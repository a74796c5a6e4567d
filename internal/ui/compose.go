package ui

import (
	"github.com/henri123lemoine/noticias/internal/content"
)

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// Size used before the terminal reports its dimensions.
const (
	DefaultWidth  = 80
	DefaultHeight = 40
)

const (
	searchRows  = 3 // bordered single line
	tabRows     = 2 // labels + indicator
	headingRows = 1
)

// Layout identifies how a section arranges its cards.
type Layout string

const (
	LayoutRow  Layout = "row"
	LayoutGrid Layout = "grid"
)

// Metrics holds the vertical placement of every region for a given
// terminal size. Y values are absolute rows; X offsets inside the content
// area start at PaddingX. A section that does not fit between the header
// and the footer is hidden rather than pushing the header off screen.
type Metrics struct {
	Width          int
	Height         int
	PaddingX       int
	ContentWidth   int
	SearchY        int
	TabsY          int
	ShowFeatured   bool
	LatestY        int
	FeaturedY      int
	FeaturedHeight int
	ShowGrid       bool
	WorldY         int
	GridY          int
	GridHeight     int
}

// HeaderRows is the number of rows taken by the search field and the tab
// row, including their spacers.
func HeaderRows() int {
	return Rows(topSpacerDP) + searchRows + Rows(searchSpacerDP) + tabRows + Rows(tabsSpacerDP)
}

// FooterFits reports whether a footer of the given rows fits below the
// header of a terminal of the given height.
func FooterFits(height, rows int) bool {
	return height-HeaderRows() >= rows
}

// Measure computes region placement for a terminal of the given size with
// footer rows reserved at the bottom. The featured row is dropped first
// when space runs out, the grid section after it.
func Measure(width, height, footer int) Metrics {
	if width < MinWidth {
		width = MinWidth
	}
	if height < 0 {
		height = 0
	}

	m := Metrics{
		Width:    width,
		Height:   height,
		PaddingX: Cols(pagePaddingDP),
	}
	m.ContentWidth = width - 2*m.PaddingX

	y := Rows(topSpacerDP)
	m.SearchY = y
	y += searchRows + Rows(searchSpacerDP)
	m.TabsY = y
	y += tabRows + Rows(tabsSpacerDP)

	featuredBlock := headingRows + Rows(featuredHeightDP)
	gridBlock := headingRows + 1
	avail := height - footer - y

	m.ShowFeatured = avail >= featuredBlock
	if m.ShowFeatured {
		m.LatestY = y
		m.FeaturedY = y + headingRows
		m.FeaturedHeight = Rows(featuredHeightDP)
		y += featuredBlock + Rows(sectionSpacerDP)
		avail = height - footer - y
	}

	m.ShowGrid = avail >= gridBlock
	if m.ShowGrid {
		m.WorldY = y
		m.GridY = y + headingRows
		m.GridHeight = height - footer - m.GridY
	}
	return m
}

// Span is a half-open column range [Start, End).
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether column x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// Width returns the span's width in columns.
func (s Span) Width() int {
	return s.End - s.Start
}

// TabSpans splits the tab row width evenly between the tabs. The last tab
// absorbs the remainder.
func TabSpans(width int) []Span {
	n := content.TabCount
	each := width / n
	spans := make([]Span, n)
	for i := range spans {
		spans[i] = Span{Start: i * each, End: (i + 1) * each}
	}
	spans[n-1].End = width
	return spans
}

// TabAt returns the tab under column x of a tab row of the given width.
func TabAt(x, width int) (content.Tab, bool) {
	for i, s := range TabSpans(width) {
		if s.Contains(x) {
			return content.Tab(i), true
		}
	}
	return content.TabNoticias, false
}

// Cell is one placed grid card.
type Cell struct {
	Index  int
	Row    int
	Col    int
	X      int
	Y      int
	Width  int
	Height int
}

const gridColumns = 2

// GridColumnWidth returns the width of one grid column.
func GridColumnWidth(width int) int {
	w := (width - Cols(gridGapDP)*(gridColumns-1)) / gridColumns
	if w < 1 {
		w = 1
	}
	return w
}

// GridCardHeight returns the card height that keeps the 0.8 aspect ratio
// for a card of the given width.
func GridCardHeight(width int) int {
	h := Rows(int(float64(width*dpPerColumn) / gridAspect))
	if h < 1 {
		h = 1
	}
	return h
}

// GridLayout places n cards in a two-column grid, filling rows left to
// right, top to bottom.
func GridLayout(n, width int) []Cell {
	colWidth := GridColumnWidth(width)
	height := GridCardHeight(colWidth)
	gapX := Cols(gridGapDP)
	gapY := Rows(gridGapDP)

	cells := make([]Cell, n)
	for i := range cells {
		row, col := i/gridColumns, i%gridColumns
		cells[i] = Cell{
			Index:  i,
			Row:    row,
			Col:    col,
			X:      col * (colWidth + gapX),
			Y:      row * (height + gapY),
			Width:  colWidth,
			Height: height,
		}
	}
	return cells
}

// Card is a placed card in the composed screen. Coordinates are relative
// to the section's scroll container.
type Card struct {
	Title  string `json:"title" yaml:"title"`
	Date   string `json:"date,omitempty" yaml:"date,omitempty"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// Section is a heading followed by a scrolling collection of cards.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Layout  Layout `json:"layout" yaml:"layout"`
	Cards   []Card `json:"cards" yaml:"cards"`
}

// SearchBox describes the search field.
type SearchBox struct {
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Query       string `json:"query" yaml:"query"`
	// Functional is false while the query has no consumer.
	Functional bool `json:"functional" yaml:"functional"`
}

// TabRow describes the tab selector.
type TabRow struct {
	Labels []string `json:"labels" yaml:"labels"`
	Active int      `json:"active" yaml:"active"`
	Spans  []Span   `json:"spans" yaml:"spans"`
}

// Screen is the composed view tree for one frame.
type Screen struct {
	Width    int       `json:"width" yaml:"width"`
	Search   SearchBox `json:"search" yaml:"search"`
	Tabs     TabRow    `json:"tabs" yaml:"tabs"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// ComposeParams contains everything Compose needs.
type ComposeParams struct {
	Width    int
	Tab      content.Tab
	Query    string
	Filtered bool
	Featured []content.FeaturedCard
	Grid     []content.GridCard
}

// SearchPlaceholder is shown while the query is empty.
const SearchPlaceholder = "Buscar"

// Compose builds the screen tree. Card sections are only present while the
// Noticias tab is active.
func Compose(p ComposeParams) Screen {
	m := Measure(p.Width, DefaultHeight, 0)

	labels := make([]string, 0, content.TabCount)
	for _, t := range content.Tabs() {
		labels = append(labels, t.Label())
	}

	s := Screen{
		Width: m.Width,
		Search: SearchBox{
			Placeholder: SearchPlaceholder,
			Query:       p.Query,
			Functional:  p.Filtered,
		},
		Tabs: TabRow{
			Labels: labels,
			Active: int(p.Tab),
			Spans:  TabSpans(m.ContentWidth),
		},
		Sections: []Section{},
	}

	if p.Tab != content.TabNoticias {
		return s
	}

	stride := Cols(featuredWidthDP) + Cols(featuredTrailingDP)
	row := Section{Heading: content.HeadingLatest, Layout: LayoutRow, Cards: []Card{}}
	for i, c := range p.Featured {
		row.Cards = append(row.Cards, Card{
			Title:  c.Title,
			Date:   c.Date,
			X:      i * stride,
			Width:  Cols(featuredWidthDP),
			Height: Rows(featuredHeightDP),
		})
	}

	grid := Section{Heading: content.HeadingWorld, Layout: LayoutGrid, Cards: []Card{}}
	for i, cell := range GridLayout(len(p.Grid), m.ContentWidth) {
		grid.Cards = append(grid.Cards, Card{
			Title:  p.Grid[i].Title,
			X:      cell.X,
			Y:      cell.Y,
			Width:  cell.Width,
			Height: cell.Height,
		})
	}

	s.Sections = append(s.Sections, row, grid)
	return s
}
