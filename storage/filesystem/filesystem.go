package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/finch-technologies/media-publisher/storage/types"
)

// LocalStorage mirrors the bucket layout under BasePath. Used for dry runs.
type LocalStorage struct {
	BasePath string
}

type LocalStorageOptions struct {
	BasePath string
}

func Init(options ...LocalStorageOptions) (*LocalStorage, error) {
	if len(options) > 0 && options[0].BasePath != "" {
		return &LocalStorage{BasePath: options[0].BasePath}, nil
	}

	basePath, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return &LocalStorage{BasePath: filepath.Join(basePath, ".storage")}, nil
}

func (s *LocalStorage) getPath(bucket, key string) (string, error) {
	base := filepath.Clean(s.BasePath)
	path := filepath.Join(base, bucket, key)

	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("object %s/%s resolves outside %s", bucket, key, s.BasePath)
	}

	return path, nil
}

func (s *LocalStorage) PutObject(ctx context.Context, obj types.Object) error {
	filePath, err := s.getPath(obj.Bucket, obj.Key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to write directory %q: %v", filepath.Dir(filePath), err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file %q: %v", filePath, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, obj.Body); err != nil {
		return fmt.Errorf("failed to write file %q: %v", filePath, err)
	}

	return file.Close()
}

// ObjectURL returns a file:// URL. Keys that escape the base path yield an empty string.
func (s *LocalStorage) ObjectURL(bucket, key string) string {
	filePath, err := s.getPath(bucket, key)
	if err != nil {
		return ""
	}

	if abs, err := filepath.Abs(filePath); err == nil {
		filePath = abs
	}

	return "file://" + filepath.ToSlash(filePath)
}
