// Package viz holds the visual vocabulary shared by the frontends.
//
//   - [Theme]: colour schemes, usable as lipgloss colours or RGBA
//   - [Canvas]: braille sub-pixel canvas with per-cell ink and a shaded band
//   - [Plot]: rasterizes a chart frame onto a canvas
//   - [Styles]: lipgloss styles derived from a theme
package viz
