// internal/job/taskfile.go

package job

import (
	"bytes"
	"fmt"
	"io"
	"os"

	yaml "github.com/goccy/go-yaml"

	"ecosched/internal/sched"
)

// TaskFile is the on-disk layout of a task set.
type TaskFile struct {
	Tasks []sched.Task `yaml:"tasks"`
}

// LoadTasks reads a task set from a YAML file.
func LoadTasks(path string) ([]sched.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks %s: %w", path, err)
	}
	tasks, err := ParseTasks(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}

// ReadTasks reads a task set from r.
func ReadTasks(r io.Reader) ([]sched.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseTasks(data)
}

// ParseTasks decodes and validates a YAML task set. Ids must be unique.
func ParseTasks(data []byte) ([]sched.Task, error) {
	var f TaskFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}

	seen := make(map[sched.TaskID]bool, len(f.Tasks))
	for i, t := range f.Tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("task #%d: %w", i+1, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("task #%d: %w", i+1, &sched.InvalidTaskError{
				TaskID: t.ID, Field: "id", Value: float64(t.ID), Reason: "is duplicated",
			})
		}
		seen[t.ID] = true
	}
	return f.Tasks, nil
}

// WriteTasks encodes tasks as YAML.
func WriteTasks(w io.Writer, tasks []sched.Task) error {
	data, err := yaml.Marshal(TaskFile{Tasks: tasks})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}
