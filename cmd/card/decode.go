package main

import (
	"bytes"
	"image"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

func decode(b []byte) (image.Image, error) {
	m, _, err := image.Decode(bytes.NewReader(b))
	return m, err
}
