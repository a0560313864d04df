// Package manifest rewrites asset metadata documents to point at uploaded media.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	ImageField     = "image"
	AnimationField = "animation_url"
)

var ErrNotObject = errors.New("metadata document is not a JSON object")

// Patch parses document and points its image (and, when animationURL is set,
// its animation_url) at the given URLs. Entries of properties.files whose uri
// matched the replaced value are rewritten too. With a nil animationURL the
// animation_url field is left as it was. Every other field is kept, numbers
// included, as decoded json.Number values.
func Patch(document string, imageURL string, animationURL *string) (map[string]any, error) {
	doc, err := decode(document)
	if err != nil {
		return nil, err
	}

	replace(doc, ImageField, imageURL)

	if animationURL != nil {
		replace(doc, AnimationField, *animationURL)
	}

	return doc, nil
}

func decode(document string) (map[string]any, error) {
	decoder := json.NewDecoder(strings.NewReader(document))
	decoder.UseNumber()

	var doc map[string]any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata document: %w", err)
	}

	if doc == nil {
		return nil, ErrNotObject
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("failed to parse metadata document: unexpected data after the top-level object")
	}

	return doc, nil
}

func replace(doc map[string]any, field, url string) {
	original, hadOriginal := doc[field].(string)
	doc[field] = url

	if !hadOriginal {
		return
	}

	for _, file := range files(doc) {
		if entry, ok := file.(map[string]any); ok {
			if uri, ok := entry["uri"].(string); ok && uri == original {
				entry["uri"] = url
			}
		}
	}
}

func files(doc map[string]any) []any {
	properties, ok := doc["properties"].(map[string]any)
	if !ok {
		return nil
	}

	list, _ := properties["files"].([]any)
	return list
}
