package deflate

import (
	"bytes"
	"image"
	"image/png"
	"math/rand"
	"testing"
)

func TestEncodePNGGray(t *testing.T) {
	const w, h = 31, 17
	pixels := make([]byte, w*h)
	for i := range pixels {
		pixels[i] = byte(i * 5)
	}
	data, err := EncodePNG(pixels, w, h, 1)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded to %T, want *image.Gray", img)
	}
	if !bytes.Equal(gray.Pix, pixels) {
		t.Fatal("decoded pixels don't match")
	}
}

func TestEncodePNGRGBA(t *testing.T) {
	const w, h = 64, 48
	r := rand.New(rand.NewSource(5))
	pixels := make([]byte, w*h*4)
	r.Read(pixels)
	data, err := EncodePNG(pixels, w, h, 4)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("decoded to %T, want *image.NRGBA", img)
	}
	if !bytes.Equal(nrgba.Pix, pixels) {
		t.Fatal("decoded pixels don't match")
	}
}

func TestEncodePNGBadArgs(t *testing.T) {
	if _, err := EncodePNG(nil, 4, 4, 4); err == nil {
		t.Error("expected an error for short pixel data")
	}
	if _, err := EncodePNG(make([]byte, 16), 0, 4, 1); err == nil {
		t.Error("expected an error for zero width")
	}
	if _, err := EncodePNG(make([]byte, 16), 2, 2, 5); err == nil {
		t.Error("expected an error for five channels")
	}
}
