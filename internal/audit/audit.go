// Package audit records the build scripts forage-build writes.
// Events are stored as JSON Lines (JSONL) in a single history file, so
// scripts left behind in project folders can be found again.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/plan"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/script"
)

// EventType classifies a history event.
type EventType string

const (
	EventScript EventType = "script"
	EventPlan   EventType = "plan"
)

// Event represents a single history entry.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
	Folder      string    `json:"folder"`
	ProjectType string    `json:"projectType,omitempty"`
	Script      string    `json:"script,omitempty"`
	Commands    int       `json:"commands,omitempty"`
}

// Logger appends and reads events in {dir}/history.jsonl.
type Logger struct {
	dir string
}

// FileName is the history file inside the logger directory
const FileName = "history.jsonl"

// NewLogger creates a new history logger rooted at dir.
func NewLogger(dir string) *Logger {
	return &Logger{dir: dir}
}

// Path returns the history file path.
func (l *Logger) Path() string {
	return filepath.Join(l.dir, FileName)
}

// Log appends an event to the history.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(l.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogScript records a written build script.
func (l *Logger) LogScript(a *script.Artifact) error {
	return l.Log(Event{
		Type:     EventScript,
		Folder:   absFolder(a.Folder.Path()),
		Script:   a.Name,
		Commands: len(a.Commands()),
	})
}

// LogPlan records a computed plan, including its script if one was written.
func (l *Logger) LogPlan(p *plan.Plan) error {
	event := Event{
		Type:        EventPlan,
		Folder:      absFolder(p.Folder),
		ProjectType: p.Type.String(),
		Commands:    len(p.BuildCommands),
	}
	if p.Script != nil {
		event.Script = p.Script.Name
	}
	return l.Log(event)
}

// Events reads all events in chronological order.
// A non-empty folder keeps only the events for that folder.
func (l *Logger) Events(folder string) ([]Event, error) {
	f, err := os.Open(l.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	if folder != "" {
		folder = absFolder(folder)
	}

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		if folder != "" && event.Folder != folder {
			continue
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading history: %w", err)
	}

	return events, nil
}

// Clear deletes the history file.
func (l *Logger) Clear() error {
	if err := os.Remove(l.Path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func absFolder(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
