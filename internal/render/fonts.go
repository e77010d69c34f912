package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the embedded Go font sources. Faces are built per size on demand.
type Fonts struct {
	regular *text.GoTextFaceSource
	medium  *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	medium bool
	size   float64
}

// LoadFonts parses the embedded Go Regular and Go Medium fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load go regular: %w", err)
	}
	medium, err := text.NewGoTextFaceSource(bytes.NewReader(gomedium.TTF))
	if err != nil {
		return nil, fmt.Errorf("load go medium: %w", err)
	}
	return &Fonts{
		regular: regular,
		medium:  medium,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

// Face returns a cached face of the given pixel size.
func (f *Fonts) Face(size float64, medium bool) *text.GoTextFace {
	k := faceKey{medium: medium, size: size}
	if face, ok := f.faces[k]; ok {
		return face
	}
	src := f.regular
	if medium {
		src = f.medium
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[k] = face
	return face
}
