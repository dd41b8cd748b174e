package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Clipboard is the host clipboard collaborator. Writes may fail; callers
// report the failure and move on, the marker data is never at risk.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}

// System writes through the platform clipboard tool. The first tool found
// on PATH is used.
type System struct {
	once sync.Once
	tool []string
}

var tools = [][]string{
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"pbcopy"},
	{"clip.exe"},
}

// NewSystem creates a system clipboard.
func NewSystem() *System {
	return &System{}
}

func (s *System) lookup() []string {
	s.once.Do(func() {
		for _, t := range tools {
			if _, err := exec.LookPath(t[0]); err == nil {
				s.tool = t
				return
			}
		}
	})
	return s.tool
}

// Write copies text to the system clipboard, bounded by ctx.
func (s *System) Write(ctx context.Context, text string) error {
	tool := s.lookup()
	if tool == nil {
		return fmt.Errorf("no clipboard tool available")
	}

	cmd := exec.CommandContext(ctx, tool[0], tool[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", tool[0], err)
	}
	return nil
}

// Memory is an in-process clipboard for tests and demo mode.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Fail makes subsequent writes return err.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Write stores the text.
func (m *Memory) Write(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
