package model

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// ImageFormat identifies a decoded image's container format.
type ImageFormat int

const (
	FormatUnknown ImageFormat = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatWEBP
	FormatTIFF
)

// String returns the lowercase format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatWEBP:
		return "webp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// MIME returns the media type for the format. Unknown data is served as
// application/octet-stream so a data URL can always be built.
func (f ImageFormat) MIME() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	case FormatWEBP:
		return "image/webp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}

var (
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	gif87a    = []byte("GIF87a")
	gif89a    = []byte("GIF89a")
	bmpMagic  = []byte("BM")
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
	tiffLE    = []byte{0x49, 0x49, 0x2A, 0x00}
	tiffBE    = []byte{0x4D, 0x4D, 0x00, 0x2A}
)

// DetectImageFormat sniffs the format from leading magic bytes. The original
// file extension is deliberately ignored; media parts inside presentation
// archives are routinely misnamed.
func DetectImageFormat(data []byte) ImageFormat {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return FormatPNG
	case bytes.HasPrefix(data, jpegMagic):
		return FormatJPEG
	case bytes.HasPrefix(data, gif87a), bytes.HasPrefix(data, gif89a):
		return FormatGIF
	case bytes.HasPrefix(data, riffMagic) && len(data) >= 12 && bytes.Equal(data[8:12], webpMagic):
		return FormatWEBP
	case bytes.HasPrefix(data, tiffLE), bytes.HasPrefix(data, tiffBE):
		return FormatTIFF
	case bytes.HasPrefix(data, bmpMagic):
		return FormatBMP
	default:
		return FormatUnknown
	}
}

// ImageData is the decoded payload of one media part. Width and Height are
// pixel dimensions when the format could be decoded, zero otherwise. Hash is
// the lowercase hex SHA-256 of Bytes, usable for de-duplication.
type ImageData struct {
	Bytes  []byte
	Format ImageFormat
	MIME   string
	Size   int
	Hash   string
	Width  int
	Height int
}

// DataURL renders the payload as a base64 data URL suitable for direct use
// in an <img> src or CSS url().
func (d *ImageData) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", d.MIME, base64.StdEncoding.EncodeToString(d.Bytes))
}
