package tasksync

import (
	"fmt"

	"tasksync/internal/service"
)

// Level classifies a Notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Notice is a user-facing outcome of one action.
type Notice struct {
	Level Level
	Text  string
}

// EmptyListText is shown when there is nothing to display.
const EmptyListText = "No tasks available."

// Messages builds notices for controller outcomes.
//
// By default only update failures carry the store's error text; create,
// delete and list failures are generic. DetailAll appends the detail to
// every failure.
type Messages struct {
	DetailAll bool
}

// Create returns the notice for a create outcome.
func (m Messages) Create(err error) Notice {
	if err == nil {
		return Notice{Level: LevelSuccess, Text: "Task added successfully!"}
	}
	return m.failure("Failed to add task!", err)
}

// Update returns the notice for an update outcome.
func (m Messages) Update(id string, err error) Notice {
	if err == nil {
		return Notice{Level: LevelSuccess, Text: fmt.Sprintf("Task %s updated successfully!", id)}
	}
	return Notice{
		Level: LevelError,
		Text:  fmt.Sprintf("Failed to update task %s! Error: %s", id, service.Detail(err)),
	}
}

// UpdateNotices returns every notice shown for an update outcome. A failed
// update shows the detailed notice followed by the generic one; with
// DetailAll the generic one would repeat the detail and is left out.
func (m Messages) UpdateNotices(id string, err error) []Notice {
	notices := []Notice{m.Update(id, err)}
	if err != nil && !m.DetailAll {
		notices = append(notices, Notice{Level: LevelError, Text: fmt.Sprintf("Failed to update task %s!", id)})
	}
	return notices
}

// Delete returns the notice for a delete outcome.
func (m Messages) Delete(id string, err error) Notice {
	if err == nil {
		return Notice{Level: LevelSuccess, Text: fmt.Sprintf("Task %s deleted successfully!", id)}
	}
	return m.failure(fmt.Sprintf("Failed to delete task %s!", id), err)
}

// List returns the notice for a list outcome, if any.
// An empty store and a failed fetch look the same unless DetailAll is set.
func (m Messages) List(tasks []service.Task, err error) (Notice, bool) {
	if err != nil && m.DetailAll {
		return m.failure("Failed to load tasks!", err), true
	}
	if len(tasks) == 0 {
		return Notice{Level: LevelWarning, Text: EmptyListText}, true
	}
	return Notice{}, false
}

func (m Messages) failure(text string, err error) Notice {
	if m.DetailAll {
		text = fmt.Sprintf("%s Error: %s", text, service.Detail(err))
	}
	return Notice{Level: LevelError, Text: text}
}
