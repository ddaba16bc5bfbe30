package tasksync_test

import (
	"errors"
	"testing"

	"tasksync/internal/service"
	"tasksync/internal/tasksync"
)

func TestMessages_Default(t *testing.T) {
	msgs := tasksync.Messages{}
	storeErr := &service.StoreError{Op: "x", Code: 404, Text: "not found"}

	tests := []struct {
		name string
		got  tasksync.Notice
		want tasksync.Notice
	}{
		{"create ok", msgs.Create(nil), tasksync.Notice{Level: tasksync.LevelSuccess, Text: "Task added successfully!"}},
		{"create failed", msgs.Create(storeErr), tasksync.Notice{Level: tasksync.LevelError, Text: "Failed to add task!"}},
		{"update ok", msgs.Update("42", nil), tasksync.Notice{Level: tasksync.LevelSuccess, Text: "Task 42 updated successfully!"}},
		{"update failed", msgs.Update("42", storeErr), tasksync.Notice{Level: tasksync.LevelError, Text: "Failed to update task 42! Error: not found"}},
		{"delete ok", msgs.Delete("7", nil), tasksync.Notice{Level: tasksync.LevelSuccess, Text: "Task 7 deleted successfully!"}},
		{"delete failed", msgs.Delete("7", storeErr), tasksync.Notice{Level: tasksync.LevelError, Text: "Failed to delete task 7!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, tt.got)
			}
		})
	}
}

func TestMessages_DetailAll(t *testing.T) {
	msgs := tasksync.Messages{DetailAll: true}
	err := errors.New("connection refused")

	if got := msgs.Create(err).Text; got != "Failed to add task! Error: connection refused" {
		t.Errorf("unexpected create text %q", got)
	}
	if got := msgs.Delete("7", err).Text; got != "Failed to delete task 7! Error: connection refused" {
		t.Errorf("unexpected delete text %q", got)
	}
	n, ok := msgs.List(nil, err)
	if !ok || n.Level != tasksync.LevelError || n.Text != "Failed to load tasks! Error: connection refused" {
		t.Errorf("unexpected list notice %+v", n)
	}
}

func TestMessages_List(t *testing.T) {
	msgs := tasksync.Messages{}

	if _, ok := msgs.List([]service.Task{{ID: "1"}}, nil); ok {
		t.Error("expected no notice for a non-empty list")
	}
	n, ok := msgs.List(nil, nil)
	if !ok || n.Level != tasksync.LevelWarning || n.Text != tasksync.EmptyListText {
		t.Errorf("unexpected empty-list notice %+v", n)
	}
}

func TestMessages_UpdateNotices(t *testing.T) {
	storeErr := &service.StoreError{Op: "update", Code: 404, Text: "not found"}

	got := tasksync.Messages{}.UpdateNotices("42", storeErr)
	want := []tasksync.Notice{
		{Level: tasksync.LevelError, Text: "Failed to update task 42! Error: not found"},
		{Level: tasksync.LevelError, Text: "Failed to update task 42!"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d notices, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notice %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	if got := (tasksync.Messages{DetailAll: true}).UpdateNotices("42", storeErr); len(got) != 1 {
		t.Errorf("expected a single detailed notice with DetailAll, got %+v", got)
	}
	if got := (tasksync.Messages{}).UpdateNotices("42", nil); len(got) != 1 || got[0].Level != tasksync.LevelSuccess {
		t.Errorf("expected a single success notice, got %+v", got)
	}
}
