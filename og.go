package pubfolio

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ogWidth   = 1200
	ogHeight  = 630
	ogPadding = 80
	ogGap     = 40

	ogTitleScale = 5
	ogDescScale  = 2
	ogMaxLines   = 3
)

var (
	ogBackground  = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	ogTitleColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ogDescription = color.RGBA{0xa0, 0xa0, 0xa0, 0xff}
)

// RenderOGImage writes a 1200x630 PNG Open Graph card with title and
// description centred vertically on a dark background.
func RenderOGImage(w io.Writer, title, description string) error {
	return png.Encode(w, drawOGImage(title, description))
}

func drawOGImage(title, description string) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(ogBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	inner := ogWidth - 2*ogPadding
	titleLines := wrapText(title, inner/ogTitleScale/face.Advance, ogMaxLines)
	descLines := wrapText(description, inner/ogDescScale/face.Advance, ogMaxLines)

	titleH := len(titleLines) * face.Height * ogTitleScale
	descH := len(descLines) * face.Height * ogDescScale
	total := titleH + descH
	if len(titleLines) > 0 && len(descLines) > 0 {
		total += ogGap
	}

	y := (ogHeight - total) / 2
	y = drawTextBlock(dst, titleLines, ogTitleColor, ogTitleScale, y)
	if len(titleLines) > 0 {
		y += ogGap
	}
	drawTextBlock(dst, descLines, ogDescription, ogDescScale, y)
	return dst
}

// drawTextBlock draws lines with the 7x13 bitmap face on a small canvas and
// scales it up onto dst at the left padding. It returns the y below the block.
func drawTextBlock(dst *image.RGBA, lines []string, col color.Color, scale, y int) int {
	if len(lines) == 0 {
		return y
	}
	face := basicfont.Face7x13
	w := (ogWidth - 2*ogPadding) / scale
	h := len(lines) * face.Height
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: layer, Src: image.NewUniform(col), Face: face}
	for i, line := range lines {
		d.Dot = fixed.P(0, i*face.Height+face.Ascent)
		d.DrawString(line)
	}
	r := image.Rect(ogPadding, y, ogPadding+w*scale, y+h*scale)
	draw.NearestNeighbor.Scale(dst, r, layer, layer.Bounds(), draw.Over, nil)
	return y + h*scale
}

// wrapText breaks s into at most maxLines lines of at most width runes,
// ending with "..." when text is cut off.
func wrapText(s string, width, maxLines int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	for i := 0; i < len(words); i++ {
		word := []rune(words[i])
		for len(word) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(word[:width]))
			word = word[width:]
		}
		switch {
		case len(cur) == 0:
			cur = word
		case len(cur)+1+len(word) <= width:
			cur = append(append(cur, ' '), word...)
		default:
			lines = append(lines, string(cur))
			cur = word
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last)+3 > width {
			last = last[:max(width-3, 0)]
		}
		lines[maxLines-1] = strings.TrimRight(string(last), " ") + "..."
	}
	return lines
}
