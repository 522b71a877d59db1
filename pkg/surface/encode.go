package surface

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for a format name or value with no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an image file format a frame can be written as.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

var formatNames = [...]string{
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Extension is the file name extension for f, including the dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat returns the format with the given name. "tif" is accepted for
// TIFF.
func ParseFormat(name string) (Format, error) {
	if name == "tif" {
		return TIFF, nil
	}
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// Encode writes img to w as f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// WriteFile writes img to path as f, creating parent directories as needed.
// If encoding fails the partly written file is removed.
func WriteFile(path string, img image.Image, f Format) error {
	if dir := filepath.Dir(path); dir != "." {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Encode(file, img, f)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := os.Remove(path); removeErr != nil {
			return errors.Join(fmt.Errorf("encoding %s: %w", path, err), removeErr)
		}
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return nil
}
