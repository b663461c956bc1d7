package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/plan"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/project"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/script"
)

func TestLogger_LogAndEvents(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventPlan, Folder: "/src/a", ProjectType: "go", Commands: 1},
		{Timestamp: now.Add(time.Second), Type: EventScript, Folder: "/src/a", Script: "f1", Commands: 1},
		{Timestamp: now.Add(2 * time.Second), Type: EventScript, Folder: "/src/b", Script: "f2", Commands: 3},
	}

	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := logger.Events("")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}

	for i, e := range result {
		if e.Type != events[i].Type {
			t.Errorf("event %d: type = %q, want %q", i, e.Type, events[i].Type)
		}
		if e.Folder != events[i].Folder {
			t.Errorf("event %d: folder = %q, want %q", i, e.Folder, events[i].Folder)
		}
		if e.Script != events[i].Script {
			t.Errorf("event %d: script = %q, want %q", i, e.Script, events[i].Script)
		}
	}

	filtered, err := logger.Events("/src/b")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Script != "f2" {
		t.Errorf("Events(/src/b) = %+v", filtered)
	}
}

func TestLogger_EventsEmpty(t *testing.T) {
	logger := NewLogger(t.TempDir())

	result, err := logger.Events("")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != 0 {
		t.Errorf("got %d events, want 0", len(result))
	}
}

func TestLogger_SkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	if err := logger.Log(Event{Type: EventScript, Folder: "/src/a", Script: "f1"}); err != nil {
		t.Fatal(err)
	}

	f, err := os.OpenFile(logger.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("not json\n\n")
	f.Close()

	if err := logger.Log(Event{Type: EventScript, Folder: "/src/a", Script: "f2"}); err != nil {
		t.Fatal(err)
	}

	events, err := logger.Events("")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestLogger_LogScript(t *testing.T) {
	logger := NewLogger(t.TempDir())

	f := folder.NewMockFolder("/src/app")
	w := script.NewWriter(script.WithSuffixSource(func() uint64 { return 7 }))
	artifact, err := w.Write([]string{"npm ci", "tsc"}, f)
	if err != nil {
		t.Fatal(err)
	}

	if err := logger.LogScript(artifact); err != nil {
		t.Fatalf("LogScript failed: %v", err)
	}

	events, err := logger.Events("/src/app")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e := events[0]
	if e.Type != EventScript || e.Script != "f7" || e.Commands != 2 {
		t.Errorf("event = %+v", e)
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp should be set automatically")
	}
}

func TestLogger_LogPlan(t *testing.T) {
	logger := NewLogger(t.TempDir())
	dir := t.TempDir()

	p := &plan.Plan{
		Folder:        dir,
		Type:          project.Rust,
		BuildCommands: []string{"cargo build --release"},
		Script:        &script.Artifact{Name: "f3"},
	}
	if err := logger.LogPlan(p); err != nil {
		t.Fatalf("LogPlan failed: %v", err)
	}

	events, err := logger.Events(dir)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].ProjectType != "rust" || events[0].Script != "f3" {
		t.Errorf("event = %+v", events[0])
	}
}

func TestLogger_RelativeFolder(t *testing.T) {
	logger := NewLogger(t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := logger.Log(Event{Type: EventScript, Folder: filepath.Join(wd, "proj"), Script: "f1"}); err != nil {
		t.Fatal(err)
	}

	events, err := logger.Events("proj")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("relative folder should match the absolute path, got %d events", len(events))
	}
}

func TestLogger_Clear(t *testing.T) {
	logger := NewLogger(t.TempDir())

	logger.Log(Event{Type: EventScript, Folder: "/src/a", Script: "f1"})

	if err := logger.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	events, err := logger.Events("")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after clear, want 0", len(events))
	}

	// Should not error when already cleared
	if err := logger.Clear(); err != nil {
		t.Errorf("Clear should not error for a missing history: %v", err)
	}
}
