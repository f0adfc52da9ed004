package rasterizer

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
)

// Writer encodes a rasterized image.
type Writer func(w io.Writer, img image.Image) error

// PNGWriter writes the image as a PNG file
func PNGWriter() Writer {
	return func(w io.Writer, img image.Image) error {
		return png.Encode(w, img)
	}
}

// JPGWriter writes the image as a JPG file
func JPGWriter(opts *jpeg.Options) Writer {
	return func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, opts)
	}
}

// GIFWriter writes the image as a GIF file
func GIFWriter(opts *gif.Options) Writer {
	return func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, opts)
	}
}

// WriterFor returns the writer for a file extension (png, jpg, jpeg or gif), or nil if the extension is unknown.
func WriterFor(ext string) Writer {
	switch ext {
	case "png":
		return PNGWriter()
	case "jpg", "jpeg":
		return JPGWriter(nil)
	case "gif":
		return GIFWriter(nil)
	}
	return nil
}
