package imagedata

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	enc := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name     string
		input    string
		wantMIME string
		want     []byte
		wantErr  error
	}{
		{
			name:     "jpeg data url",
			input:    "data:image/jpeg;base64," + enc,
			wantMIME: MIMEJPEG,
			want:     raw,
		},
		{
			name:     "png data url",
			input:    "data:image/png;base64,iVBORw0KGgo=",
			wantMIME: MIMEPNG,
			want:     []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
		},
		{
			name:     "other data url falls back to comma",
			input:    "data:image/webp;base64," + enc,
			wantMIME: "image/webp",
			want:     raw,
		},
		{
			name:  "bare comma prefix",
			input: "anything," + enc,
			want:  raw,
		},
		{
			name:  "empty payload",
			input: "data:image/png;base64,",
			want:  []byte{},
		},
		{
			name:    "no prefix no comma",
			input:   enc,
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "invalid base64 after prefix",
			input:   "data:image/jpeg;base64,not*base64!",
			wantErr: ErrInvalidBase64,
		},
		{
			name:    "url-safe alphabet rejected",
			input:   "data:image/jpeg;base64,-_-_",
			wantErr: ErrInvalidBase64,
		},
		{
			name:    "missing padding rejected",
			input:   "data:image/png;base64,iVBORw0KGgo",
			wantErr: ErrInvalidBase64,
		},
		{
			name:    "everything after first comma is the payload",
			input:   "x," + enc + "," + enc,
			wantErr: ErrInvalidBase64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.MIME != tt.wantMIME {
				t.Fatalf("expected mime %q, got %q", tt.wantMIME, img.MIME)
			}
			if !bytes.Equal(img.Data, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, img.Data)
			}
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	raw := make([]byte, 1024)
	for i := range raw {
		raw[i] = byte(i * 7)
	}

	for _, prefix := range []string{jpegPrefix, pngPrefix} {
		got, err := Decode(prefix + base64.StdEncoding.EncodeToString(raw))
		if err != nil {
			t.Fatalf("%s: decode: %v", prefix, err)
		}
		if !bytes.Equal(got, raw) {
			t.Fatalf("%s: round trip mismatch", prefix)
		}
	}
}

func TestExtension(t *testing.T) {
	if got := Extension(MIMEPNG, ".jpg"); got != ".png" {
		t.Fatalf("expected .png, got %s", got)
	}
	if got := Extension("IMAGE/JPEG", ".bin"); got != ".jpg" {
		t.Fatalf("expected .jpg, got %s", got)
	}
	if got := Extension("", ".jpg"); got != ".jpg" {
		t.Fatalf("expected fallback, got %s", got)
	}
}
