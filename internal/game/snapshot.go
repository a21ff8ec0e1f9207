package game

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/iburimskiy/hero-particles/internal/window"
)

// saveSnapshot composites the background and the particle buffer and writes
// it as PNG. Without a snapshot directory the user picks the file.
func (g *Game) saveSnapshot() error {
	buf := g.canvas.Image()
	if buf == nil {
		return errors.New("nothing to snapshot: container has no area")
	}

	path := ""
	if g.settings.SnapshotDir != "" {
		path = window.SnapshotPath(g.settings.SnapshotDir, time.Now())
	} else {
		p, err := zenity.SelectFileSave(
			zenity.Title("Save particle snapshot"),
			zenity.Filename(window.SnapshotPath("", time.Now())),
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
			return errors.Wrap(err, "select snapshot file")
		}
		path = p
	}

	b := buf.Bounds()
	frame := ebiten.NewImage(b.Dx(), b.Dy())
	defer frame.Deallocate()
	frame.Fill(g.background)
	frame.DrawImage(buf, nil)

	img := image.NewRGBA(b)
	frame.ReadPixels(img.Pix)
	if err := window.WritePNG(path, img); err != nil {
		return err
	}
	klog.Infof("Saved snapshot %s", path)
	return nil
}
