package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/hubastard/grove-dialogs/engine/assets"
)

// Font is a rasterizable face with its pixel metrics resolved.
type Font struct {
	SizePx                   float64
	Ascent, Descent, LineGap int
	Face                     font.Face
}

func (f *Font) Close() {
	if f != nil && f.Face != nil {
		_ = f.Face.Close()
	}
}

// LoadTTF parses TrueType/OpenType data into a Font of the given pixel size.
func LoadTTF(ttfData []byte, sizePx float64) (*Font, error) {
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := m.Ascent.Round()
	descent := m.Descent.Round()
	return &Font{
		SizePx:  sizePx,
		Ascent:  ascent,
		Descent: descent,
		LineGap: m.Height.Round() - ascent - descent,
		Face:    face,
	}, nil
}

// LoadFile loads a font from assets/fonts.
func LoadFile(relPath string, sizePx float64) (*Font, error) {
	data, err := assets.Read("fonts", relPath)
	if err != nil {
		return nil, err
	}
	return LoadTTF(data, sizePx)
}

// Default returns the bundled Go Regular face.
func Default(sizePx float64) (*Font, error) {
	return LoadTTF(goregular.TTF, sizePx)
}
