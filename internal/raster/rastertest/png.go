// Package rastertest builds image files that the standard encoders cannot
// produce, for use in tests.
package rastertest

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
)

// PNG color types.
const (
	Gray      = 0
	TrueColor = 2
	GrayAlpha = 4
)

// PNG encodes an 8-bit, non-interlaced PNG of the given color type. pix
// holds the samples row by row without filter bytes. A non-nil trns is
// written as a tRNS chunk.
func PNG(width, height int, colorType byte, pix, trns []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8
	ihdr[9] = colorType
	writeChunk(&buf, "IHDR", ihdr)

	if trns != nil {
		writeChunk(&buf, "tRNS", trns)
	}

	stride := len(pix) / height
	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	for y := 0; y < height; y++ {
		zw.Write([]byte{0}) // filter: none
		zw.Write(pix[y*stride : (y+1)*stride])
	}
	zw.Close()
	writeChunk(&buf, "IDAT", idat.Bytes())
	writeChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	buf.Write(n[:])

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	buf.WriteString(typ)
	buf.Write(data)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	buf.Write(n[:])
}
