package sapling

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// Export queues a labeled PNG export of the tree canvas. The file is written
// to RunConfig.ExportDir at the end of the current frame's Draw, when pixels
// can be read back.
func (a *App) Export(label string) {
	a.exportQueue = append(a.exportQueue, label)
}

// flushExports writes every queued export. Called at the end of App.Draw.
func (a *App) flushExports() {
	if len(a.exportQueue) == 0 {
		return
	}
	defer func() { a.exportQueue = a.exportQueue[:0] }()

	if err := os.MkdirAll(a.cfg.ExportDir, 0o755); err != nil {
		Logger().Error("export: mkdir", "dir", a.cfg.ExportDir, "error", err)
		return
	}

	img := readImage(a.canvas.Image())
	stamp := time.Now().Format("20060102_150405")
	for _, label := range a.exportQueue {
		path := exportPath(a.cfg.ExportDir, stamp, label)
		if err := writePNG(path, img); err != nil {
			Logger().Error("export failed", "error", err)
			continue
		}
		Logger().Info("exported canvas", "path", path)
	}
}

// readImage copies the canvas into a straight-alpha NRGBA image. Only valid
// while the game loop is running.
func readImage(src *ebiten.Image) *image.NRGBA {
	b := src.Bounds()
	premul := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src.ReadPixels(premul.Pix)
	return straightAlpha(premul)
}

// straightAlpha converts premultiplied pixels to NRGBA.
func straightAlpha(src *image.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func exportPath(dir, stamp, label string) string {
	return filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
}

// writePNG encodes img next to path and renames it into place, so a reader
// never sees a half-written file.
func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.png")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', maps every other
// rune to '_' and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
