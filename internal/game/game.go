package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"k8s.io/klog/v2"

	"github.com/iburimskiy/hero-particles/internal/config"
	"github.com/iburimskiy/hero-particles/internal/particles"
	"github.com/iburimskiy/hero-particles/internal/window"
)

// Game hosts one particle field in an ebiten window. The window plays the
// part of the hero container: its size drives resizes and minimizing it
// hides the field.
type Game struct {
	settings   config.Settings
	background color.RGBA

	canvas     *imageCanvas
	frames     *window.FrameQueue
	size       *window.LayoutSize
	visibility *window.Visibility
	field      *particles.Field

	// overlay
	debug   bool
	ticks   *window.TickRing
	started time.Time

	lastErr error
}

func NewGame(s config.Settings) (*Game, error) {
	bg, err := config.ParseHex(s.Background)
	if err != nil {
		return nil, err
	}
	return &Game{
		settings:   s,
		background: bg,
		canvas:     newImageCanvas(),
		frames:     window.NewFrameQueue(),
		size:       window.NewLayoutSize(),
		visibility: &window.Visibility{},
		debug:      s.Debug,
		ticks:      window.NewTickRing(config.FrameRingSize),
		started:    time.Now(),
	}, nil
}

// mount creates the field once the first layout has given the window a
// size.
func (g *Game) mount() {
	opts := []particles.Option{}
	if g.settings.Seed != 0 {
		opts = append(opts, particles.WithSeed(g.settings.Seed))
	}
	g.field = particles.Mount(particles.Host{
		Canvas:     g.canvas,
		Frames:     g.frames,
		Resize:     g.size,
		Visibility: g.visibility,
	}, opts...)
	st := g.field.Stats()
	klog.V(1).Infof("Mounted particle field: %d particles, %dx%d device pixels", st.Particles, st.DevWidth, st.DevHeight)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshot(); err != nil {
			klog.Errorf("Snapshot failed: %v", err)
			g.lastErr = err
		}
	}

	g.size.Flush()
	if g.field == nil {
		if !g.size.Known() {
			return nil
		}
		g.mount()
	}
	g.visibility.Poll(!ebiten.IsWindowMinimized())

	start := time.Now()
	if g.frames.Run() > 0 {
		g.ticks.Add(time.Since(start))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if buf := g.canvas.Image(); buf != nil {
		screen.DrawImage(buf, nil)
	}
	if g.debug {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	if g.field == nil {
		ebitenutil.DebugPrintAt(screen, "waiting for layout", 12, 12)
		return
	}
	st := g.field.Stats()
	status := fmt.Sprintf(
		"ticks %d | links %d | visible %t\nlogical %.0fx%.0f | device %dx%d @%.2gx\ntick avg %s | up %s",
		st.Ticks, st.Links, st.Visible,
		st.Width, st.Height, st.DevWidth, st.DevHeight, st.Scale,
		window.FormatTick(g.ticks.Average()), window.FormatDuration(time.Since(g.started)),
	)
	if g.lastErr != nil {
		status += "\nError: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout reports a device-pixel screen so the buffer maps 1:1 onto it. The
// size is only recorded here and applied on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	g.size.Record(outsideWidth, outsideHeight, scale)
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Close tears the field down. The game must not be run again afterwards.
func (g *Game) Close() {
	if g.field != nil {
		g.field.Dispose()
	}
}
