package manifest

import (
	"encoding/json"
	"errors"
	"testing"
)

func ptr(s string) *string {
	return &s
}

func TestPatch(t *testing.T) {
	const imageURL = "https://my-bucket.s3.amazonaws.com/img?ext=png"
	const animationURL = "https://my-bucket.s3.amazonaws.com/anim?ext=mp4"

	tests := []struct {
		name         string
		document     string
		animationURL *string
		expected     string
	}{
		{
			name:     "minimal document",
			document: `{"name":"x"}`,
			expected: `{"image":"` + imageURL + `","name":"x"}`,
		},
		{
			name:     "image and matching file entry",
			document: `{"name":"x","image":"0.png","properties":{"files":[{"uri":"0.png","type":"image/png"},{"uri":"other.png"}]}}`,
			expected: `{"image":"` + imageURL + `","name":"x","properties":{"files":[{"type":"image/png","uri":"` + imageURL + `"},{"uri":"other.png"}]}}`,
		},
		{
			name:         "image and animation",
			document:     `{"image":"0.png","animation_url":"0.mp4","properties":{"files":[{"uri":"0.png"},{"uri":"0.mp4","type":"video/mp4"}]}}`,
			animationURL: ptr(animationURL),
			expected:     `{"animation_url":"` + animationURL + `","image":"` + imageURL + `","properties":{"files":[{"uri":"` + imageURL + `"},{"type":"video/mp4","uri":"` + animationURL + `"}]}}`,
		},
		{
			name:     "absent animation leaves field untouched",
			document: `{"image":"0.png","animation_url":"0.mp4"}`,
			expected: `{"animation_url":"0.mp4","image":"` + imageURL + `"}`,
		},
		{
			name:         "animation added when missing",
			document:     `{"name":"x"}`,
			animationURL: ptr(animationURL),
			expected:     `{"animation_url":"` + animationURL + `","image":"` + imageURL + `","name":"x"}`,
		},
		{
			name:     "numbers kept verbatim",
			document: `{"seller_fee_basis_points":500,"edition":12345678901234567890,"attributes":[{"trait_type":"bg","value":"blue"}]}`,
			expected: `{"attributes":[{"trait_type":"bg","value":"blue"}],"edition":12345678901234567890,"image":"` + imageURL + `","seller_fee_basis_points":500}`,
		},
		{
			name:     "files without properties object",
			document: `{"image":"0.png","properties":"n/a"}`,
			expected: `{"image":"` + imageURL + `","properties":"n/a"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Patch(tt.document, imageURL, tt.animationURL)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			encoded, err := json.Marshal(doc)
			if err != nil {
				t.Fatalf("failed to encode patched document: %v", err)
			}

			if string(encoded) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, encoded)
			}
		})
	}
}

func TestPatchInvalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
		notObj   bool
	}{
		{name: "empty", document: ""},
		{name: "malformed", document: `{"name":`},
		{name: "array", document: `[1,2]`},
		{name: "null", document: `null`, notObj: true},
		{name: "trailing data", document: `{"name":"x"} {"name":"y"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Patch(tt.document, "https://a", nil)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if tt.notObj && !errors.Is(err, ErrNotObject) {
				t.Errorf("expected ErrNotObject, got %v", err)
			}
		})
	}
}
