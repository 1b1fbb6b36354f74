// Package viz renders the joystick in a terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: mouse-driven joystick feeding a [joystick.Engine]
//   - [Canvas]: Braille-based dot canvas for the bound and handle discs
//   - [StylesFor]: per-theme Lip Gloss styles, installed once and shared
//
// # Key Bindings
//
//	Mouse - press on the handle and drag
//	R     - Release the handle
//	C     - Clear the coordinate history
//	T     - Cycle color themes
//	Q     - Quit
//
// Mouse reporting uses cell motion, so moves arrive only while a button is
// held. Each cell is mapped to the centre of its 2x4 braille block.
package viz
