// Package store owns the in-memory task list and its on-disk formats:
// a markdown checklist for persistence and a JSON array for export.
package store

import (
	"errors"
	"strings"
)

// ErrEmptyDescription is returned when a task would be created or edited
// with an empty or whitespace-only description.
var ErrEmptyDescription = errors.New("task description is empty")

// Status represents a task's current status.
type Status string

const (
	StatusPending Status = "Pending"
	StatusWorking Status = "Working"
	StatusDone    Status = "Done"
)

// Cycle advances the status one step in the fixed cycle
// Pending -> Done -> Working -> Pending.
func (s Status) Cycle() Status {
	switch s {
	case StatusPending:
		return StatusDone
	case StatusDone:
		return StatusWorking
	case StatusWorking:
		return StatusPending
	default:
		return StatusPending
	}
}

// Marker returns the checklist marker used for this status in the task file.
func (s Status) Marker() string {
	switch s {
	case StatusDone:
		return "- [x]"
	case StatusWorking:
		return "- [~]"
	default:
		return "- [ ]"
	}
}

// Task is a single task. Identity is positional within a List.
type Task struct {
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// NewTask creates a pending task, rejecting empty descriptions.
func NewTask(desc string) (Task, error) {
	if strings.TrimSpace(desc) == "" {
		return Task{}, ErrEmptyDescription
	}
	return Task{Description: desc, Status: StatusPending}, nil
}

// List is an ordered sequence of tasks. Insertion order is preserved in
// memory; persistence groups by status (see Save).
type List []Task

// Add validates desc and appends a new pending task.
func (l *List) Add(desc string) error {
	t, err := NewTask(desc)
	if err != nil {
		return err
	}
	*l = append(*l, t)
	return nil
}

// Edit replaces the description of the task at i, keeping its status.
// Rejects empty descriptions, leaving the task unchanged.
func (l List) Edit(i int, desc string) error {
	if strings.TrimSpace(desc) == "" {
		return ErrEmptyDescription
	}
	l[i].Description = desc
	return nil
}

// Remove deletes the task at i.
func (l *List) Remove(i int) {
	*l = append((*l)[:i], (*l)[i+1:]...)
}

// CycleStatus advances the status of the task at i.
func (l List) CycleStatus(i int) {
	l[i].Status = l[i].Status.Cycle()
}
