// Package app provides the Bubble Tea application model for noticias.
//
// Model owns the two pieces of screen state, the active tab and the search
// query, plus scroll positions for the featured row and the grid. Input
// arrives as key and mouse messages; rendering is delegated to package ui.
package app
