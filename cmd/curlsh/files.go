package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"dasa.cc/curl/card"
	"dasa.cc/curl/layout"
	"dasa.cc/curl/view"
)

// files provides pages from decoded images, scaled to the page size.
type files struct {
	front, back image.Image
}

func (f *files) UpdatePage(req view.PageRequest) (front, back image.Image) {
	return fit(f.front, req), fit(f.back, req)
}

func (f *files) CurlCompleted()                   {}
func (f *files) RotateBegan(o layout.Orientation) {}

// fit scales m upright to the page and turns it for the page orientation.
func fit(m image.Image, req view.PageRequest) image.Image {
	if m == nil || req.Width <= 0 || req.Height <= 0 {
		return nil
	}
	w, h := req.Width, req.Height
	if req.Orientation.Landscape() {
		w, h = h, w
	}
	scaled := resize.Resize(uint(w), uint(h), m, resize.Lanczos3)
	rgba, ok := scaled.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	}
	return card.Rotate(rgba, req.Orientation)
}

// decoders by file extension. Targa files carry no signature so formats are
// not sniffed.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".tga":  tga.Decode,
	".webp": webp.Decode,
	".bmp":  bmp.Decode,
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
}

// open decodes an image file.
func open(name string) (image.Image, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("%s: unknown image format", name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return m, nil
}

// save encodes m as lossless webp.
func save(name string, m image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, m, nil); err != nil {
		f.Close()
		return fmt.Errorf("%s: %v", name, err)
	}
	return f.Close()
}
