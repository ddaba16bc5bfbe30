package commands_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasksync/internal/commands"
	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/service"
	"tasksync/internal/tasksync"
	"tasksync/internal/testutil"
)

// runCommand is a helper to run a command against a FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	var ctrl *tasksync.Controller
	if svc != nil {
		ctrl = tasksync.New(svc, nil)
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, ctrl, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "tasksync 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "tasksync serve", "Pending, Completed", "--url <url>"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

// Tests for list command
func TestListCommand_WithTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.StatusPending)
	svc.AddTask("File taxes", service.StatusCompleted)

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "   1  Pending    Buy milk  (1)\n   2  Completed  File taxes  (2)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, testutil.NewFakeService(), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks available\n" {
		t.Errorf("expected empty message, got %q", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, testutil.NewFakeService(), nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = errors.New("connection refused")

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: backend error: connection refused\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestListCommand_JSON(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.StatusPending)

	cmd := &commands.ListCmd{}
	cmd.SetFormat("json")
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, `"description": "Buy milk"`) {
		t.Errorf("expected JSON output, got %q", stdout)
	}
}

func TestListCommand_UnknownFormat(t *testing.T) {
	cmd := &commands.ListCmd{}
	cmd.SetFormat("csv")
	_, stderr, code := runCommand(t, cmd, testutil.NewFakeService(), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr == "" {
		t.Error("expected error message")
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	cmd.SetStatus("pending")
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	tasks := svc.Snapshot()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Description != "Buy milk" || tasks[0].Status != service.StatusPending {
		t.Errorf("unexpected task %+v", tasks[0])
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	cmd := &commands.AddCmd{}
	cmd.SetStatus("Completed")
	stdout, _, code := runCommand(t, cmd, testutil.NewFakeService(), []string{"Buy milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommand_EmptyDescription(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	_, _, code := runCommand(t, cmd, svc, []string{""}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if tasks := svc.Snapshot(); len(tasks) != 1 || tasks[0].Description != "" {
		t.Errorf("expected one untitled task, got %+v", tasks)
	}
}

func TestAddCommand_NoDescription(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: description required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Calls["create"] != 0 {
		t.Error("store should not be called")
	}
}

func TestAddCommand_InvalidStatus(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	cmd.SetStatus("Archived")
	_, stderr, code := runCommand(t, cmd, svc, []string{"x"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid status: Archived (want Pending or Completed)\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Calls["create"] != 0 {
		t.Error("store should not be called")
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = &service.StoreError{Op: "create", Code: http.StatusInternalServerError, Text: "Internal server error"}

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"x"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: Internal server error\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for show command
func TestShowCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", service.StatusCompleted)

	cmd := &commands.ShowCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{id}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "id:          1\ndescription: Buy milk\nstatus:      Completed\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestShowCommand_NotFound(t *testing.T) {
	cmd := &commands.ShowCmd{}
	_, stderr, code := runCommand(t, cmd, testutil.NewFakeService(), []string{"42"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 42\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestShowCommand_NoID(t *testing.T) {
	cmd := &commands.ShowCmd{}
	_, stderr, code := runCommand(t, cmd, testutil.NewFakeService(), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task id required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for update command
func TestUpdateCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", service.StatusPending)

	cmd := &commands.UpdateCmd{}
	cmd.SetStatus("Completed")
	stdout, _, code := runCommand(t, cmd, svc, []string{id, "Buy", "oat", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	want := service.Task{ID: id, Description: "Buy oat milk", Status: service.StatusCompleted}
	if got := svc.Snapshot()[0]; got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestUpdateCommand_StatusRequired(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("Buy milk", service.StatusPending)

	cmd := &commands.UpdateCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{id, "Buy milk"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: --status required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Calls["update"] != 0 {
		t.Error("store should not be called")
	}
}

func TestUpdateCommand_StoreText(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.UpdateTaskErr = &service.StoreError{Op: "update", Code: http.StatusBadRequest, Text: "Bad request"}

	cmd := &commands.UpdateCmd{}
	cmd.SetStatus("Pending")
	_, stderr, code := runCommand(t, cmd, svc, []string{"1", "x"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: Bad request\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for done command
func TestDoneCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.StatusPending)
	id := svc.AddTask("Buy eggs", service.StatusPending)

	cmd := &commands.DoneCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{id}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	tasks := svc.Snapshot()
	if tasks[0].Status != service.StatusPending {
		t.Error("first task should still be pending")
	}
	if tasks[1].Status != service.StatusCompleted || tasks[1].Description != "Buy eggs" {
		t.Errorf("unexpected task %+v", tasks[1])
	}
}

func TestDoneCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"5"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 5\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Calls["update"] != 0 {
		t.Error("update should not be attempted")
	}
}

func TestDoneCommand_ExtraArgs(t *testing.T) {
	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, testutil.NewFakeService(), []string{"1", "2"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: 2\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for rm command
func TestRmCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.StatusPending)
	svc.AddTask("Buy eggs", service.StatusPending)

	cmd := &commands.RmCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	tasks := svc.Snapshot()
	if len(tasks) != 1 || tasks[0].Description != "Buy eggs" {
		t.Errorf("unexpected remaining tasks %+v", tasks)
	}
}

func TestRmCommand_StoreNotFound(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.DeleteTaskErr = &service.StoreError{Op: "delete", Code: http.StatusNotFound, Text: "not found"}

	cmd := &commands.RmCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"9"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 9\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for export command
func TestExportCommand_YAMLToStdout(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.StatusPending)

	cmd := &commands.ExportCmd{}
	cmd.SetFormat("yaml")
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "description: Buy milk") {
		t.Errorf("expected YAML output, got %q", stdout)
	}
}

func TestExportCommand_PDFToFile(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.StatusPending)
	path := filepath.Join(t.TempDir(), "tasks.pdf")

	cmd := &commands.ExportCmd{}
	cmd.SetFormat("pdf")
	cmd.SetOut(path)
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	if stdout != "exported 1 tasks to "+path+"\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("expected a PDF file")
	}
}

func TestExportCommand_PDFNeedsOut(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ExportCmd{}
	cmd.SetFormat("pdf")
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: pdf export requires --out <file>\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Calls["list"] != 0 {
		t.Error("store should not be called")
	}
}

// Tests for the registry
func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.DoneCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.DoneCmd{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestRegistry_Aliases(t *testing.T) {
	for alias, name := range map[string]string{"ls": "list", "delete": "rm", "edit": "update", "web": "serve"} {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %q not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolves to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestRegistry_AliasCollision(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.RmCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "delete" is taken by rm's alias
	if err := r.Register(&namedCmd{name: "delete"}); err == nil {
		t.Error("expected name colliding with an alias to fail")
	}
}

func TestHelpCommand_MentionsEveryCommand(t *testing.T) {
	stdout, _, _ := runCommand(t, &commands.HelpCmd{}, nil, nil, false)

	for _, cmd := range commands.DefaultRegistry.All() {
		if !strings.Contains(stdout, "tasksync "+cmd.Name()) {
			t.Errorf("help does not mention %q", cmd.Name())
		}
	}
}

// namedCmd is a no-op command used to probe the registry.
type namedCmd struct {
	commands.HelpCmd
	name string
}

func (c *namedCmd) Name() string { return c.name }
