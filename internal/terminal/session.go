package terminal

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
)

// session is one shell process attached to a PTY.
type session struct {
	cmd    *exec.Cmd
	master *os.File
	buf    *lineBuffer

	writeMu sync.Mutex
	exited  chan struct{}
}

func startSession(opts Options) (*session, error) {
	cmd := exec.Command(opts.Shell)
	cmd.Dir = opts.Dir
	cmd.Env = append(os.Environ(), "TERM=dumb")

	master, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: opts.Rows, Cols: opts.Cols})
	if err != nil {
		return nil, fmt.Errorf("start %s on pty: %w", opts.Shell, err)
	}

	s := &session{
		cmd:    cmd,
		master: master,
		buf:    newLineBuffer(opts.MaxLines),
		exited: make(chan struct{}),
	}
	go s.readLoop()
	go s.reap()
	return s, nil
}

// readLoop copies PTY output into the buffer until the master is closed or
// the child goes away.
func (s *session) readLoop() {
	chunk := make([]byte, 4096)
	for {
		n, err := s.master.Read(chunk)
		if n > 0 {
			_, _ = s.buf.Write(chunk[:n])
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
				log.Printf("terminal: reader stopped: %v", err)
			}
			return
		}
	}
}

func (s *session) reap() {
	err := s.cmd.Wait()
	if err != nil {
		log.Printf("terminal: shell exited: %v", err)
	}
	close(s.exited)
}

func (s *session) write(p []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, err := s.master.Write(p)
	return err
}

// kill terminates the shell. A process that already exited is not an error.
func (s *session) kill() error {
	if s.cmd.Process == nil {
		return nil
	}
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill shell: %w", err)
	}
	return nil
}

func (s *session) close() {
	if err := s.master.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		log.Printf("terminal: close pty: %v", err)
	}
}
