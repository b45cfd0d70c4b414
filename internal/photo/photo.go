// Package photo turns uploaded images into data URIs the gateway can send
// upstream. Only png, jpeg, gif and webp images up to MaxBytes are accepted.
package photo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
)

// MaxBytes is the largest accepted image payload.
const MaxBytes = 4 << 20

// FormField is the multipart field carrying the upload.
const FormField = "photo"

var (
	ErrMissing  = fmt.Errorf("%w: no photo supplied", domain.ErrInvalidInput)
	ErrTooLarge = fmt.Errorf("%w: image larger than 4MB", domain.ErrInvalidInput)
	ErrNotImage = fmt.Errorf("%w: not a supported image", domain.ErrInvalidInput)
)

// Info describes an accepted image.
type Info struct {
	MIMEType string
	Width    int
	Height   int
	Size     int
}

// FromReader reads at most MaxBytes from r and returns the image as a data URI.
func FromReader(r io.Reader) (string, Info, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return "", Info{}, fmt.Errorf("photo: read upload: %w", err)
	}
	return fromBytes(data)
}

// FromRequest extracts the multipart photo field from r.
func FromRequest(r *http.Request) (string, Info, error) {
	// Leave headroom for the multipart envelope around the file.
	const limit = MaxBytes + 1<<20
	if r.ContentLength > limit {
		return "", Info{}, ErrTooLarge
	}
	r.Body = http.MaxBytesReader(nil, r.Body, limit)
	if err := r.ParseMultipartForm(MaxBytes); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return "", Info{}, ErrTooLarge
		}
		return "", Info{}, fmt.Errorf("%w: malformed multipart form", domain.ErrInvalidInput)
	}
	file, _, err := r.FormFile(FormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", Info{}, ErrMissing
		}
		return "", Info{}, fmt.Errorf("photo: open upload: %w", err)
	}
	defer file.Close()
	return FromReader(file)
}

// FromDataURI validates a caller-supplied data URI and returns it normalized.
func FromDataURI(s string) (string, Info, error) {
	if strings.TrimSpace(s) == "" {
		return "", Info{}, ErrMissing
	}
	uri, err := domain.ParseDataURI(s)
	if err != nil {
		return "", Info{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return fromBytes(uri.Data)
}

func fromBytes(data []byte) (string, Info, error) {
	if len(data) == 0 {
		return "", Info{}, ErrMissing
	}
	if len(data) > MaxBytes {
		return "", Info{}, ErrTooLarge
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return "", Info{}, ErrNotImage
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", Info{}, ErrNotImage
	}

	info := Info{
		MIMEType: "image/" + format,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Size:     len(data),
	}
	return domain.NewDataURI(info.MIMEType, data).String(), info, nil
}
