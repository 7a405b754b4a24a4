package tty

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/ssh"
	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/terminfo"
)

// sessionTty exposes an SSH session as a tcell.Tty.
type sessionTty struct {
	ssh.Session

	mu     sync.Mutex
	width  int
	height int
	resize func()
}

var _ tcell.Tty = (*sessionTty)(nil)

func (t *sessionTty) Start() error { return nil }
func (t *sessionTty) Stop() error  { return nil }
func (t *sessionTty) Drain() error { return nil }

// Close leaves the channel to the SSH server, which closes it when the
// handler returns.
func (t *sessionTty) Close() error { return nil }

func (t *sessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resize = cb
}

func (t *sessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.width, Height: t.height}, nil
}

func (t *sessionTty) setSize(width, height int) {
	t.mu.Lock()
	t.width, t.height = width, height
	cb := t.resize
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// NewSSHScreen builds a tcell screen that renders into sess. The session must
// have a PTY.
func NewSSHScreen(sess ssh.Session) (tcell.Screen, error) {
	pty, winCh, ok := sess.Pty()
	if !ok {
		return nil, fmt.Errorf("tty: session has no pty")
	}

	ti, err := terminfo.LookupTerminfo(pty.Term)
	if err != nil {
		return nil, fmt.Errorf("tty: terminal %q: %w", pty.Term, err)
	}

	t := &sessionTty{Session: sess, width: pty.Window.Width, height: pty.Window.Height}
	go func() {
		for win := range winCh {
			t.setSize(win.Width, win.Height)
		}
	}()

	screen, err := tcell.NewTerminfoScreenFromTtyTerminfo(t, ti)
	if err != nil {
		return nil, fmt.Errorf("tty: new screen: %w", err)
	}
	return screen, nil
}
