package mediatype

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectByExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/tmp/art.png", "image/png"},
		{"/tmp/art.PNG", "image/png"},
		{"/tmp/art.jpg", "image/jpeg"},
		{"/tmp/art.gif", "image/gif"},
		{"/tmp/model.glb", "model/gltf-binary"},
		{"/tmp/clip.MP4", "video/mp4"},
		{"/tmp/song.mp3", "audio/mpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Detect(tt.path); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestDetectByContent(t *testing.T) {
	dir := t.TempDir()

	png := filepath.Join(dir, "artwork")
	if err := os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if got := Detect(png); got != "image/png" {
		t.Errorf("expected image/png from content, got %s", got)
	}

	if got := Detect(filepath.Join(dir, "missing")); got != Default {
		t.Errorf("expected %s for unreadable file, got %s", Default, got)
	}
}
