// Package imagedata decodes base64 data URLs sent by the front-end.
package imagedata

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"

	jpegPrefix = "data:" + MIMEJPEG + ";base64,"
	pngPrefix  = "data:" + MIMEPNG + ";base64,"
)

var (
	ErrInvalidFormat = errors.New("invalid image data format")
	ErrInvalidBase64 = errors.New("invalid base64 payload")
)

type Image struct {
	// MIME is empty when the payload was found by a bare comma split.
	MIME string
	Data []byte
}

// Decode returns the raw bytes carried by a data URL or comma-prefixed
// base64 string.
func Decode(s string) ([]byte, error) {
	img, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return img.Data, nil
}

// Parse extracts the payload with the first matching rule: the JPEG data URL
// prefix, the PNG data URL prefix, then everything after the first comma.
// The payload must be standard padded base64.
func Parse(s string) (Image, error) {
	mime, payload, ok := extract(s)
	if !ok {
		return Image{}, ErrInvalidFormat
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}

	return Image{MIME: mime, Data: data}, nil
}

func extract(s string) (mime, payload string, ok bool) {
	if rest, found := strings.CutPrefix(s, jpegPrefix); found {
		return MIMEJPEG, rest, true
	}
	if rest, found := strings.CutPrefix(s, pngPrefix); found {
		return MIMEPNG, rest, true
	}

	header, rest, found := strings.Cut(s, ",")
	if !found {
		return "", "", false
	}
	return headerMIME(header), rest, true
}

// headerMIME reads the media type out of a "data:<mime>;base64" header.
func headerMIME(header string) string {
	rest, ok := strings.CutPrefix(header, "data:")
	if !ok {
		return ""
	}
	mime, _, _ := strings.Cut(rest, ";")
	return strings.ToLower(strings.TrimSpace(mime))
}

var extensions = map[string]string{
	MIMEJPEG:     ".jpg",
	MIMEPNG:      ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// Extension maps a MIME type to a file extension. Unknown types get fallback.
func Extension(mime, fallback string) string {
	if ext, ok := extensions[strings.ToLower(mime)]; ok {
		return ext
	}
	return fallback
}
