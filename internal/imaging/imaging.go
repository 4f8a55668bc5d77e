// Package imaging stores uploaded product images. Uploads are decoded
// and re-encoded as JPEG so the catalog only ever serves one format.
package imaging

import (
	"fmt"
	"image"
	_ "image/gif" // register decoders for the accepted upload formats
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"time"
)

const jpegQuality = 90

// SaveAsJPEG decodes an uploaded image and writes it under dir as a
// quality-90 JPEG, returning the generated filename. A reader that does
// not decode as an image is an error.
func SaveAsJPEG(dir string, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decoding uploaded image: %w", err)
	}

	filename := fmt.Sprintf("product-%d.jpeg", time.Now().UnixMilli())
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return filename, nil
}
