// Package terminal runs an interactive shell on a pseudo-terminal and keeps a
// rolling buffer of its output. It does not emulate a terminal: escape
// sequences are left in the buffer and stripped at render time.
package terminal

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

const (
	DefaultRows         = 20
	DefaultCols         = 200
	DefaultRestartDelay = 250 * time.Millisecond

	// selfInvocationReply is echoed when the user tries to run vuit inside
	// its own terminal panel.
	selfInvocationReply = "Nice Try"
)

// SendResult tells the caller what to do with the UI after Send.
type SendResult int

const (
	// StayInTerminal keeps the terminal context active.
	StayInTerminal SendResult = iota
	// LeaveTerminal asks the caller to return to the file viewer.
	LeaveTerminal
)

// Options configure the shell sessions a Manager starts.
type Options struct {
	Shell        string
	Dir          string
	Rows         uint16
	Cols         uint16
	MaxLines     int
	RestartDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Shell == "" {
		o.Shell = ResolveShell("")
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.MaxLines <= 0 {
		o.MaxLines = MaxLines
	}
	if o.RestartDelay < 0 {
		o.RestartDelay = 0
	}
	return o
}

// ResolveShell picks the shell binary: the configured value, then $SHELL,
// then bash from PATH, then /bin/sh.
func ResolveShell(configured string) string {
	if configured != "" {
		return configured
	}
	if env := os.Getenv("SHELL"); env != "" {
		return env
	}
	if bash, err := exec.LookPath("bash"); err == nil {
		return bash
	}
	return "/bin/sh"
}

// Manager owns the current shell session and replaces it on restart.
type Manager struct {
	opts Options

	mu      sync.Mutex
	current *session
}

// NewManager returns a manager; no shell runs until Start.
func NewManager(opts Options) *Manager {
	return &Manager{opts: opts.withDefaults()}
}

// Start spawns the shell. Failing to open the PTY or spawn the shell is
// returned to the caller, which treats it as fatal.
func (m *Manager) Start() error {
	s, err := startSession(m.opts)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	log.Printf("terminal: started %s (pid %d)", m.opts.Shell, s.cmd.Process.Pid)
	return nil
}

func (m *Manager) session() *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Send interprets cmd. Leading semicolons are ignored. exit and quit restart
// the shell and ask the caller to leave the terminal; restart and clear only
// restart it. Anything else is written to the shell followed by a newline.
// Only a failed restart is reported as an error.
func (m *Manager) Send(cmd string) (SendResult, error) {
	cmd = strings.TrimLeft(cmd, ";")

	switch cmd {
	case "exit", "quit":
		if err := m.Restart(); err != nil {
			return StayInTerminal, err
		}
		return LeaveTerminal, nil
	case "restart", "clear":
		return StayInTerminal, m.Restart()
	case "vuit":
		if s := m.session(); s != nil {
			s.buf.AppendLine(selfInvocationReply)
		}
		return StayInTerminal, nil
	}

	s := m.session()
	if s == nil {
		return StayInTerminal, nil
	}
	if err := s.write([]byte(cmd + "\n")); err != nil {
		log.Printf("terminal: write %q: %v", cmd, err)
	}
	return StayInTerminal, nil
}

// Interrupt delivers Ctrl-C to the foreground job.
func (m *Manager) Interrupt() {
	s := m.session()
	if s == nil {
		return
	}
	if err := s.write([]byte{0x03}); err != nil {
		log.Printf("terminal: interrupt: %v", err)
	}
}

// Restart kills the shell, closes its PTY and starts a new session with an
// empty buffer after the restart delay.
func (m *Manager) Restart() error {
	if s := m.session(); s != nil {
		if err := s.kill(); err != nil {
			return err
		}
		s.close()
	}

	time.Sleep(m.opts.RestartDelay)

	if err := m.Start(); err != nil {
		return fmt.Errorf("restart shell: %w", err)
	}
	log.Printf("terminal: restarted")
	return nil
}

// Snapshot returns the buffered output joined by newlines.
func (m *Manager) Snapshot() string {
	s := m.session()
	if s == nil {
		return ""
	}
	return s.buf.String()
}

// Clear empties the current session's buffer.
func (m *Manager) Clear() {
	if s := m.session(); s != nil {
		s.buf.Reset()
	}
}

// Close stops the shell without starting another one.
func (m *Manager) Close() {
	m.mu.Lock()
	s := m.current
	m.current = nil
	m.mu.Unlock()
	if s == nil {
		return
	}
	if err := s.kill(); err != nil {
		log.Printf("terminal: %v", err)
	}
	s.close()

	select {
	case <-s.exited:
	case <-time.After(time.Second):
	}
}
