package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/hirekit/internal/config"
	"github.com/kingrea/hirekit/internal/position"
	"github.com/kingrea/hirekit/internal/store"
)

func run(t *testing.T, projectDir string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.RedisURLEnv, "")
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--project", projectDir}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommandsLifecycle(t *testing.T) {
	projectDir := t.TempDir()

	out, _, err := run(t, projectDir, "new", "--template", "head instructor", "--title", "Lead Instructor")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	id := strings.TrimSpace(out)
	if id == "" {
		t.Fatalf("new should print the id")
	}
	if _, err := os.Stat(filepath.Join(projectDir, ".hirekit", "state", store.DefaultKey+".json")); err != nil {
		t.Fatalf("expected file backend to write state: %v", err)
	}

	if _, _, err := run(t, projectDir, "new", "--title", "Front Desk Associate"); err != nil {
		t.Fatalf("second new: %v", err)
	}

	out, _, err = run(t, projectDir, "list", "instructor")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := id + "\tLead Instructor\tInstruction\tFull-Time\n"
	if out != want {
		t.Fatalf("list output %q, want %q", out, want)
	}

	out, _, err = run(t, projectDir, "show", id)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasPrefix(out, "POSITION: Lead Instructor\n") {
		t.Fatalf("unexpected show output: %q", out)
	}

	out, _, err = run(t, projectDir, "questions", id)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if !strings.Contains(out, "[Values] Tell me about a time you demonstrated") {
		t.Fatalf("expected values questions, got %q", out)
	}

	out, _, err = run(t, projectDir, "export", id, "--format", "pdf")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	path := strings.TrimSpace(out)
	if path != filepath.Join(projectDir, ".hirekit", "exports", "Position-Lead-Instructor.pdf") {
		t.Fatalf("unexpected export path %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	if _, _, err := run(t, projectDir, "delete", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	out, _, err = run(t, projectDir, "list")
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if strings.Contains(out, id) || !strings.Contains(out, "Front Desk Associate") {
		t.Fatalf("unexpected list after delete: %q", out)
	}

	journal, err := os.ReadFile(filepath.Join(projectDir, ".hirekit", "logs", "activity.log"))
	if err != nil {
		t.Fatalf("activity log: %v", err)
	}
	if !strings.Contains(string(journal), `Deleted position "Lead Instructor"`) {
		t.Fatalf("expected delete in activity log:\n%s", journal)
	}
}

func TestDeleteUnknownIsNotAnError(t *testing.T) {
	_, stderr, err := run(t, t.TempDir(), "delete", "missing")
	if err != nil {
		t.Fatalf("delete of an unknown id should succeed: %v", err)
	}
	if !strings.Contains(stderr, "no position with id missing") {
		t.Fatalf("expected a notice, got %q", stderr)
	}
}

func TestCommandErrorsCarryExitCodes(t *testing.T) {
	projectDir := t.TempDir()

	_, _, err := run(t, projectDir, "show", "missing")
	if code := exitCode(err); code != exitNotFound {
		t.Fatalf("show missing: exit %d (%v)", code, err)
	}
	_, _, err = run(t, projectDir, "new")
	if code := exitCode(err); code != exitUsage {
		t.Fatalf("new without title: exit %d (%v)", code, err)
	}
	_, _, err = run(t, projectDir, "new", "--template", "janitor")
	if code := exitCode(err); code != exitUsage {
		t.Fatalf("unknown template: exit %d (%v)", code, err)
	}

	out, _, err := run(t, projectDir, "new", "--title", "Coach")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = run(t, projectDir, "export", strings.TrimSpace(out), "--format", "docx")
	if code := exitCode(err); code != exitUsage {
		t.Fatalf("bad format: exit %d (%v)", code, err)
	}
}

func TestCorruptStateWarnsAndStartsEmpty(t *testing.T) {
	projectDir := t.TempDir()
	if err := config.InitHirekitDir(projectDir); err != nil {
		t.Fatal(err)
	}
	state := filepath.Join(projectDir, ".hirekit", "state", store.DefaultKey+".json")
	if err := os.WriteFile(state, []byte("[{]"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, stderr, err := run(t, projectDir, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "" {
		t.Fatalf("expected an empty list, got %q", out)
	}
	if !strings.Contains(stderr, "warning:") {
		t.Fatalf("expected a corruption warning, got %q", stderr)
	}
	matches, _ := filepath.Glob(filepath.Join(projectDir, ".hirekit", "state", "*corrupt*"))
	if len(matches) != 1 {
		t.Fatalf("expected the unreadable blob to be kept aside, got %v", matches)
	}
}

func TestTemplateNamesListsBuiltins(t *testing.T) {
	names := templateNames()
	for _, tmpl := range position.Templates {
		if !strings.Contains(names, tmpl.Title) {
			t.Fatalf("missing %q in %q", tmpl.Title, names)
		}
	}
}
