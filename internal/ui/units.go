package ui

// A terminal cell is roughly twice as tall as it is wide, so one column
// carries 8dp and one row carries 16dp.
const (
	dpPerColumn = 8
	dpPerRow    = 16
)

// Cols converts a horizontal dp measure to terminal columns.
func Cols(dp int) int {
	return (dp + dpPerColumn/2) / dpPerColumn
}

// Rows converts a vertical dp measure to terminal rows.
func Rows(dp int) int {
	return (dp + dpPerRow/2) / dpPerRow
}

// Design measures in dp.
const (
	pagePaddingDP      = 16
	topSpacerDP        = 12
	searchSpacerDP     = 14
	tabsSpacerDP       = 10
	sectionSpacerDP    = 10
	featuredWidthDP    = 280
	featuredHeightDP   = 160
	featuredTrailingDP = 14
	featuredPaddingDP  = 16
	featuredGapDP      = 8
	gridGapDP          = 16
	gridBottomDP       = 24
	gridAspect         = 0.80
	chipInsetDP        = 10
	chipPadXDP         = 12
	chipPadYDP         = 10
)
