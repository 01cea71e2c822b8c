package sched

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTask      = errors.New("invalid task")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNoTasks          = errors.New("no tasks to schedule")
	ErrScheduling       = errors.New("scheduling failed")
)

// InvalidTaskError reports the offending field of a rejected task.
type InvalidTaskError struct {
	TaskID TaskID
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidTaskError) Error() string {
	return fmt.Sprintf("invalid task %d: %s=%g %s", e.TaskID, e.Field, e.Value, e.Reason)
}

func (e *InvalidTaskError) Is(target error) bool { return target == ErrInvalidTask }

// InvalidParameterError reports a bad run parameter such as the time quantum.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }

// SchedulingError is returned when a run exceeds its iteration ceiling.
type SchedulingError struct {
	Policy Policy
	Limit  int
	Clock  float64
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: iteration ceiling %d exceeded at t=%g", e.Policy, e.Limit, e.Clock)
}

func (e *SchedulingError) Is(target error) bool { return target == ErrScheduling }
