// Package mediatype resolves the Content-Type an uploaded media file is stored with.
package mediatype

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const Default = "application/octet-stream"

// NFT media the standard library table does not know on every platform.
var extensions = map[string]string{
	".glb":  "model/gltf-binary",
	".gltf": "model/gltf+json",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".usdz": "model/vnd.usdz+zip",
}

// Detect looks the type up by file extension and falls back to sniffing the
// file content. Unreadable files without a known extension get Default.
func Detect(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		if contentType, ok := extensions[strings.ToLower(ext)]; ok {
			return contentType
		}
		if contentType := mime.TypeByExtension(ext); contentType != "" {
			return contentType
		}
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return Default
	}

	return detected.String()
}
