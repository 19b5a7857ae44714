// Package models defines the data structures for the notebook relay service.
package models

// SourceStatus represents the processing lifecycle state of a source document.
type SourceStatus string

const (
	SourceStatusPending    SourceStatus = "pending"
	SourceStatusProcessing SourceStatus = "processing"
	SourceStatusCompleted  SourceStatus = "completed"
	SourceStatusFailed     SourceStatus = "failed"
)

// IsValid checks if the status is one of the known lifecycle states.
func (s SourceStatus) IsValid() bool {
	switch s {
	case SourceStatusPending, SourceStatusProcessing, SourceStatusCompleted, SourceStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the processing lifecycle.
func (s SourceStatus) IsTerminal() bool {
	return s == SourceStatusCompleted || s == SourceStatusFailed
}
