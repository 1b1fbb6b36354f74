// Package gui hosts the joystick in a raylib window, driven by the mouse or
// the first touch point.
package gui
