// Package terminal hosts a render tree on a tcell screen.
//
// Every terminal cell stands for a CellWidth by CellHeight block of surface
// units, the size of one glyph of the default bitmap face, so text laid out
// by the graphics package lands one rune per cell. Shapes are sampled at
// cell centers and blended into the cell background.
package terminal
