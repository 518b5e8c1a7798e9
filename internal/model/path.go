// Package model defines the data structures shared by the snippet scanner,
// the documentation locator and the sync workflow.
package model

// Path represents a file system path, slash separated and relative to the
// filesystem root the run operates on.
type Path string

// Location points at a line in a file.
type Location struct {
	Path Path `json:"path" yaml:"path"`
	Line int  `json:"line" yaml:"line"`
}
