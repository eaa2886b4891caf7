// Package bigtext renders words as large block art using half-block characters.
package bigtext

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	faceSize  = 48
	padding   = 4
	threshold = uint8(40)
)

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error

	cache sync.Map
)

func loadFace() (font.Face, error) {
	faceOnce.Do(func() {
		fnt, err := opentype.Parse(gobold.TTF)
		if err != nil {
			faceErr = fmt.Errorf("parsing Go Bold: %w", err)
			return
		}
		face, faceErr = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    faceSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

// Width returns how many terminal columns Render uses for text at the given
// number of rows.
func Width(text string, rows int) int {
	f, err := loadFace()
	if err != nil || text == "" || rows <= 0 {
		return 0
	}
	srcW, srcH := canvasSize(f, text)
	return cols(srcW, srcH, rows)
}

// Render draws text rows cells tall. Each cell holds two vertical pixels.
func Render(text string, rows int) string {
	if text == "" || rows <= 0 {
		return ""
	}
	key := fmt.Sprintf("%s\x00%d", text, rows)
	if cached, ok := cache.Load(key); ok {
		return cached.(string)
	}

	f, err := loadFace()
	if err != nil {
		return ""
	}

	srcW, srcH := canvasSize(f, text)
	src := image.NewGray(image.Rect(0, 0, srcW, srcH))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(padding, padding+f.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	w := cols(srcW, srcH, rows)
	out := halfBlocks(scaleDown(src, w, rows*2), w, rows)
	cache.Store(key, out)
	return out
}

func canvasSize(f font.Face, text string) (int, int) {
	m := f.Metrics()
	adv := font.MeasureString(f, text).Ceil()
	return adv + padding*2, m.Ascent.Ceil() + m.Descent.Ceil() + padding*2
}

// cols keeps the glyph aspect ratio: half-block pixels are roughly square.
func cols(srcW, srcH, rows int) int {
	w := srcW * rows * 2 / srcH
	if w < 1 {
		w = 1
	}
	return w
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1, sy1 := int(float64(dx)*xRatio), int(float64(dy)*yRatio)
			sx2, sy2 := int(float64(dx+1)*xRatio), int(float64(dy+1)*yRatio)
			sx2 = min(max(sx2, sx1+1), srcWidth)
			sy2 = min(max(sy2, sy1+1), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

func halfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	b := img.Bounds()
	if x < 0 || y < 0 || x >= b.Max.X || y >= b.Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
