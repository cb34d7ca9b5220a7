// Package game hosts the animated background in a desktop window.
package game

import (
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/sharmila1320/Kawaiifolio/internal/config"
	"github.com/sharmila1320/Kawaiifolio/internal/session"
	"github.com/sharmila1320/Kawaiifolio/internal/storage"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	prefs *storage.Prefs

	viewport *session.ResizableViewport
	frames   *session.FrameQueue
	canvas   *canvas
	bg       *session.Background

	theme theme.Theme

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	paused       bool
	snapshotPath string
	lastErr      error
}

// New builds the game in the theme resolved from the stored preference.
func New(cfg *config.Config, prefs *storage.Prefs, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	system, err := theme.Parse(cfg.SystemTheme)
	if err != nil {
		log.Warn("unknown system theme, using light", zap.String("value", cfg.SystemTheme))
		system = theme.Light
	}

	g := &Game{
		cfg:      cfg,
		log:      log,
		prefs:    prefs,
		viewport: session.NewResizableViewport(cfg.Window.Width, cfg.Window.Height),
		frames:   session.NewFrameQueue(),
		canvas:   newCanvas(),
		theme:    prefs.ThemeMode().Resolve(system),
		prevKey:  map[ebiten.Key]bool{},
	}
	g.bg = session.NewBackground(g.canvas, g.viewport, g.frames, session.WithLogger(log))
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.bg.Close()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyT) {
		g.toggleTheme()
	}
	if justPressed(ebiten.KeyS) {
		if err := g.chooseSnapshotPath(); err != nil {
			g.lastErr = err
		}
	}

	// mounts on the first tick and remounts after a theme change
	if g.bg.Session() == nil || g.bg.Theme() != g.theme {
		g.bg.SetTheme(g.theme)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.paused {
		g.frames.Flush()
	} else if g.canvas.stale {
		// resized while paused
		if s := g.bg.Session(); s != nil {
			s.Redraw()
		}
	}
	if g.canvas.img != nil {
		screen.DrawImage(g.canvas.img, nil)
	}

	if g.snapshotPath != "" {
		if err := g.saveSnapshot(g.snapshotPath); err != nil {
			g.lastErr = err
		}
		g.snapshotPath = ""
	}

	if g.cfg.Window.HUD {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.viewport.Resize(outsideWidth, outsideHeight)
	}
	return g.viewport.Size()
}

func (g *Game) status() string {
	var frames uint64
	if s := g.bg.Session(); s != nil {
		frames = s.Frames()
	}
	status := fmt.Sprintf("%s | %s", g.theme, formatDuration(frameDuration(frames, ebiten.TPS())))
	if g.paused {
		status += " | Paused - Space to resume"
	}
	status += " | T: theme  S: snapshot  Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) toggleTheme() {
	g.theme = g.theme.Toggle()
	if err := g.prefs.SetThemeMode(g.theme.Mode()); err != nil {
		g.lastErr = err
		g.log.Warn("failed to persist theme", zap.Error(err))
	}
	g.log.Info("theme changed", zap.String("theme", string(g.theme)))
}

func (g *Game) chooseSnapshotPath() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Background Snapshot"),
		zenity.Filename("kawaiifolio.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.snapshotPath = filename
	return nil
}

func (g *Game) saveSnapshot(path string) error {
	img := g.canvas.snapshot()
	if img == nil {
		return errors.New("nothing rendered yet")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	g.log.Info("snapshot saved", zap.String("path", path))
	return nil
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config, prefs *storage.Prefs, log *zap.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := New(cfg, prefs, log)
	defer g.bg.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
