package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Bar is one region row in an impact chart.
type Bar struct {
	Label string
	Value float64
	Level string
}

const (
	width      = 720
	rowHeight  = 28
	padding    = 16
	labelWidth = 220
	titleSpace = 36
)

var levelColors = map[string]color.NRGBA{
	"high":     {R: 0xD6, G: 0x45, B: 0x45, A: 0xFF},
	"moderate": {R: 0xF2, G: 0x9E, B: 0x38, A: 0xFF},
	"mild":     {R: 0xE8, G: 0xD4, B: 0x4D, A: 0xFF},
}

var defaultBarColor = color.NRGBA{R: 0x7A, G: 0x8C, B: 0xA3, A: 0xFF}

var (
	faceOnce sync.Once
	faces    map[float64]font.Face
	faceErr  error
)

func loadFaces() (map[float64]font.Face, error) {
	faceOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("parse font: %w", err)
			return
		}
		faces = map[float64]font.Face{
			13: truetype.NewFace(f, &truetype.Options{Size: 13}),
			16: truetype.NewFace(f, &truetype.Options{Size: 16}),
		}
	})
	return faces, faceErr
}

// RenderImpactBars draws a horizontal bar chart of region impacts and returns
// it PNG encoded. Values are clamped to [0,1]; bars keep the given order.
func RenderImpactBars(title string, bars []Bar) ([]byte, error) {
	ff, err := loadFaces()
	if err != nil {
		return nil, err
	}
	rows := len(bars)
	if rows == 0 {
		rows = 1
	}
	height := padding*2 + titleSpace + rows*rowHeight

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetFontFace(ff[16])
	dc.SetColor(color.Black)
	dc.DrawString(title, padding, padding+16)

	dc.SetFontFace(ff[13])
	if len(bars) == 0 {
		dc.SetColor(color.Gray{Y: 0x80})
		dc.DrawString("No significant regional impact", padding, float64(padding+titleSpace+18))
	}

	barMax := float64(width - labelWidth - padding*2 - 48)
	for i, b := range bars {
		y := float64(padding + titleSpace + i*rowHeight)
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(b.Label, float64(padding+labelWidth-8), y+rowHeight/2, 1, 0.35)

		v := clamp01(b.Value)
		c, ok := levelColors[b.Level]
		if !ok {
			c = defaultBarColor
		}
		dc.SetColor(c)
		dc.DrawRectangle(float64(padding+labelWidth), y+4, barMax*v, rowHeight-8)
		dc.Fill()

		dc.SetColor(color.Gray{Y: 0x40})
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", v), float64(padding+labelWidth)+barMax*v+6, y+rowHeight/2, 0, 0.35)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
