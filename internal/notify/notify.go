// Package notify delivers short-lived user-facing messages: the terminal
// counterpart of toast notifications. Every failure a screen swallows is
// reported through a Notifier.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Level classifies a notification.
type Level string

// Notification levels.
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarn    Level = "warn"
	LevelInfo    Level = "info"
)

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warn(msg string)
	Info(msg string)
}

// Console writes one line per notification.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

var markers = map[Level]string{
	LevelSuccess: "✓",
	LevelError:   "✗",
	LevelWarn:    "!",
	LevelInfo:    "·",
}

func (c *Console) write(l Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s %s\n", markers[l], msg)
}

func (c *Console) Success(msg string) { c.write(LevelSuccess, msg) }
func (c *Console) Error(msg string)   { c.write(LevelError, msg) }
func (c *Console) Warn(msg string)    { c.write(LevelWarn, msg) }
func (c *Console) Info(msg string)    { c.write(LevelInfo, msg) }

// Entry is a recorded notification.
type Entry struct {
	Level   Level
	Message string
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) add(l Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: l, Message: msg})
}

func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *Recorder) Error(msg string)   { r.add(LevelError, msg) }
func (r *Recorder) Warn(msg string)    { r.add(LevelWarn, msg) }
func (r *Recorder) Info(msg string)    { r.add(LevelInfo, msg) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Last returns the most recent entry, or false if none.
func (r *Recorder) Last() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Count returns how many entries have the given level.
func (r *Recorder) Count(l Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Level == l {
			n++
		}
	}
	return n
}
