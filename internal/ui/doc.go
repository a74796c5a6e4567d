// Package ui provides rendering functions for the news screen.
//
// Compose builds the screen tree (search box, tab row and card sections)
// for a terminal width, Measure places each region vertically, and Render
// turns the tree into terminal output. Card and tab renderers are pure
// functions of their inputs. Styles and the color palette live in
// styles.go.
package ui
