// shadow-leap-server serves the game over SSH. Every connection gets its own
// independent run. Build:
//
//	go build -o shadow-leap-server ./cmd/server
//
// Usage:
//
//	./shadow-leap-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"shadow-leap/internal/audio"
	"shadow-leap/internal/config"
	"shadow-leap/internal/game"
	internalssh "shadow-leap/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// maxSessions caps concurrent games; later connections are turned away.
const maxSessions = 16

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load(os.Args[0], os.Args[1:], ".env")
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(cfg.HostKey, logger)
	if err != nil {
		return err
	}
	h := &host{cfg: cfg, logger: logger, slots: make(chan struct{}, maxSessions)}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr)
	logger.Info("connect with", "cmd", fmt.Sprintf("ssh -t -p %d localhost", cfg.Port))
	return srv.ListenAndServe()
}

// host runs one game per SSH session.
type host struct {
	cfg    config.Config
	logger *slog.Logger
	slots  chan struct{}
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// until the game ends or the client disconnects.
func (h *host) handleSession(s gossh.Session) {
	name := internalssh.SanitizeName(s.User())
	log := h.logger.With("user", name, "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintf(s, "This game requires a PTY. Connect with: ssh -t -p %d <host>\n", h.cfg.Port)
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Warn("screen setup failed", "err", err)
		return
	}

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		showMessage(screen, "The pond is full, try again later.", "")
		time.Sleep(2 * time.Second)
		screen.Fini()
		return
	}

	cfg := h.cfg
	cfg.Seed = 0 // every session gets its own traffic
	g, err := game.New(screen, cfg, audio.Nop{}, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Game setup failed: %v\n", err)
		log.Error("game setup failed", "err", err)
		return
	}

	showMessage(screen, fmt.Sprintf("Welcome, %s!", displayName(name)), "Arrows or WASD to hop, q to quit")
	time.Sleep(time.Second)

	log.Info("session started")
	g.Run(s.Context())
	log.Info("session ended", "state", g.State().String(), "level", g.LevelNumber()+1)
}

func displayName(name string) string {
	if name == "" {
		return "frog"
	}
	return name
}

// showMessage centers msg, and sub below it, on the given screen.
func showMessage(screen tcell.Screen, msg, sub string) {
	screen.Clear()
	w, h := screen.Size()
	y := h / 2
	drawCentered(screen, w, y, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	if sub != "" {
		drawCentered(screen, w, y+2, sub, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	screen.Show()
}

func drawCentered(screen tcell.Screen, w, y int, text string, style tcell.Style) {
	x := (w - len([]rune(text))) / 2
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; the key still works for this run.
	if block, err := xssh.MarshalPrivateKey(key, "shadow-leap server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			logger.Warn("host key not saved", "path", path, "err", err)
		}
	}
	return signer, nil
}
