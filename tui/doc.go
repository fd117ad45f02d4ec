// Package tui provides a Bubble Tea component that renders an editor
// session and maps key and mouse input to its commands.
package tui
