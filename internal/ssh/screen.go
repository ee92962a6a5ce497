package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client's TERM is missing or not allowed.
const DefaultTerm = "xterm-256color"

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no PTY")

// allowedTerms is the TERM whitelist; anything else falls back to
// DefaultTerm so clients cannot steer terminfo lookups.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

// TermFor picks the terminal type for a session environment.
func TermFor(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return DefaultTerm
}

// termMu serializes the TERM environment swap around screen creation.
var termMu sync.Mutex

// NewScreen creates and initializes a tcell screen backed by s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	tty := NewSessionTty(s, pty, winCh)

	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", TermFor(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

// maxNameBytes caps how much of a client-supplied name is echoed back.
const maxNameBytes = 16

// SanitizeName strips control characters from a client-supplied user name
// and truncates it to whole runes within maxNameBytes.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
