// Package view contains pure rendering helpers for the flowdeck TUI.
// Every function takes a plain state struct and returns a string, so the
// rendering logic is testable without a terminal.
package view
