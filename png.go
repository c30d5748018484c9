package deflate

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

// pngColorType maps channel counts to PNG color types: gray, gray+alpha,
// RGB, RGBA.
var pngColorType = [5]byte{0, 0, 4, 2, 6}

// EncodePNG encodes packed 8-bit pixel data as a complete PNG file. comps
// is the number of channels per pixel (1, 2, 3, or 4) and pixels must hold
// width*height*comps bytes in row-major order. Rows are written unfiltered.
func EncodePNG(pixels []byte, width, height, comps int) ([]byte, error) {
	if width < 1 || height < 1 || comps < 1 || comps > 4 {
		return nil, errors.New("deflate: bad image dimensions")
	}
	rowBytes := width * comps
	if len(pixels) < rowBytes*height {
		return nil, errors.New("deflate: not enough pixel data")
	}

	var c Compressor
	var idat growBuffer
	if err := c.Init(&idat, DefaultMaxProbes|WriteZlibHeader); err != nil {
		return nil, err
	}
	filter := [1]byte{0}
	for y := 0; y < height; y++ {
		if _, err := c.Write(filter[:]); err != nil {
			return nil, err
		}
		if _, err := c.Write(pixels[y*rowBytes : (y+1)*rowBytes]); err != nil {
			return nil, err
		}
	}
	if err := c.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(idat.buf)+57)
	out = append(out, 0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n')
	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = pngColorType[comps]
	out = appendChunk(out, "IHDR", ihdr[:])
	out = appendChunk(out, "IDAT", idat.buf)
	out = appendChunk(out, "IEND", nil)
	return out, nil
}

func appendChunk(dst []byte, typ string, data []byte) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(len(data)))
	dst = append(dst, b[:]...)
	start := len(dst)
	dst = append(dst, typ...)
	dst = append(dst, data...)
	binary.BigEndian.PutUint32(b[:], crc32.ChecksumIEEE(dst[start:]))
	return append(dst, b[:]...)
}
