package easel

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderImage rasterizes the canvas into a fresh offscreen image at 1:1
// scale, independent of the editor's cached surface and viewport.
func (c *Canvas) RenderImage() *ebiten.Image {
	img := ebiten.NewImage(c.width, c.height)
	c.Draw(img)
	return img
}

// EncodePNG renders the canvas and writes it to w as PNG. Must be called
// from inside the game loop: reading pixels requires a live graphics context.
func (c *Canvas) EncodePNG(w io.Writer) error {
	img := c.RenderImage()
	defer img.Deallocate()

	nrgba := readPixels(img)
	if err := png.Encode(w, nrgba); err != nil {
		return fmt.Errorf("easel: encode png: %w", err)
	}
	return nil
}

// ExportPNG renders the canvas and writes it to the given file path.
func (c *Canvas) ExportPNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("easel: export %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("easel: export %s: %w", path, err)
	}
	return nil
}

// ExportPNG renders the editor's canvas to a PNG file.
func (e *Editor) ExportPNG(path string) error {
	return e.Canvas.ExportPNG(path)
}

// readPixels copies an ebiten image into a straight-alpha NRGBA image.
// Ebiten stores premultiplied RGBA; PNG wants straight alpha.
func readPixels(src *ebiten.Image) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// sanitizeName replaces characters that are unsafe in file names with
// underscores and falls back to "untitled" for empty strings. Used when
// deriving export file names from document or layer names.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "untitled"
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ExportName derives a file-system-safe PNG name from the document name and
// its short ID, e.g. "poster_1a2b3c4d.png".
func (e *Editor) ExportName() string {
	id := e.doc.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s_%s.png", sanitizeName(e.doc.Name), id)
}
