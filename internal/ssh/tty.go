// Package ssh bridges gliderlabs SSH sessions to tcell screens so each
// connection can drive its own game.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH session channel.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	onSize func()
	once   sync.Once
}

// NewSessionTty wraps s. pty carries the initial window; winCh delivers
// later window changes until the session ends.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{session: s, window: pty.Window, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and
// flushed by the SSH server.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the most recent terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// watcher, which lives until the window channel closes or the session ends.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()
	t.once.Do(func() { go t.watch() })
}

func (t *SessionTty) watch() {
	done := t.session.Context().Done()
	for {
		select {
		case <-done:
			return
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.window = win
			cb := t.onSize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}
}
