package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes, largest to smallest: document title, section headers,
// field labels, grid body text.
const (
	titleFontSize  = 64
	headerFontSize = 34
	labelFontSize  = 28
	textFontSize   = 30
)

// FontSet holds the four faces the renderer draws with.
type FontSet struct {
	Title  font.Face
	Header font.Face
	Label  font.Face
	Text   font.Face
}

// LoadFonts builds the font set from the preferred typeface at path. A
// missing or unreadable typeface is never fatal: the set falls back to the
// Go regular font embedded in the binary.
func LoadFonts(path string, logger *zap.Logger) FontSet {
	ttf, err := loadTTF(path)
	if err != nil {
		logger.Warn("preferred typeface unavailable, using embedded fallback",
			zap.String("path", path),
			zap.Error(err),
		)
		// goregular ships with the binary; parsing it cannot fail
		ttf, _ = truetype.Parse(goregular.TTF)
	}

	face := func(size float64) font.Face {
		return truetype.NewFace(ttf, &truetype.Options{Size: size})
	}
	return FontSet{
		Title:  face(titleFontSize),
		Header: face(headerFontSize),
		Label:  face(labelFontSize),
		Text:   face(textFontSize),
	}
}

func loadTTF(path string) (*truetype.Font, error) {
	if path == "" {
		return nil, fmt.Errorf("no typeface configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ttf, nil
}
