package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAsJPEG_ConvertsPNG(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	dir := t.TempDir()
	name, err := SaveAsJPEG(dir, buf)
	if err != nil {
		t.Fatalf("SaveAsJPEG error: %v", err)
	}
	if !strings.HasPrefix(name, "product-") || !strings.HasSuffix(name, ".jpeg") {
		t.Fatalf("unexpected filename %q", name)
	}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("opening stored file: %v", err)
	}
	defer f.Close()

	if _, err := jpeg.Decode(f); err != nil {
		t.Fatalf("stored file is not a valid jpeg: %v", err)
	}
}

func TestSaveAsJPEG_RejectsNonImage(t *testing.T) {
	t.Parallel()

	_, err := SaveAsJPEG(t.TempDir(), strings.NewReader("not an image"))
	if err == nil {
		t.Fatal("expected error for non-image input, got nil")
	}
}
