package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURI is a decoded `data:<mimetype>;base64,<data>` image reference.
type DataURI struct {
	MIMEType string
	Data     []byte
}

// NewDataURI wraps raw bytes with their MIME type.
func NewDataURI(mimeType string, data []byte) DataURI {
	return DataURI{MIMEType: mimeType, Data: data}
}

// ParseDataURI splits and decodes a base64 data URI.
func ParseDataURI(s string) (DataURI, error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: missing payload separator", ErrInvalidDataURI)
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURI)
	}
	if mimeType == "" {
		return DataURI{}, fmt.Errorf("%w: missing MIME type", ErrInvalidDataURI)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return DataURI{}, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	if len(data) == 0 {
		return DataURI{}, fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}
	return DataURI{MIMEType: mimeType, Data: data}, nil
}

// Base64 returns the payload without the data URI header.
func (d DataURI) Base64() string {
	return base64.StdEncoding.EncodeToString(d.Data)
}

func (d DataURI) String() string {
	return "data:" + d.MIMEType + ";base64," + d.Base64()
}
