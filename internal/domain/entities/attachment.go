package entities

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxAttachmentBytes caps invoices and receipts (decoded size).
const MaxAttachmentBytes = 5 * 1024 * 1024

var (
	ErrAttachmentEncoding = errors.New("attachment must be a base64 data URI")
	ErrAttachmentTooLarge = errors.New("attachment exceeds 5MB")
	ErrAttachmentType     = errors.New("attachment must be a PDF, PNG or JPEG")
)

var allowedAttachmentTypes = []string{"application/pdf", "image/png", "image/jpeg"}

var allowedAttachmentExts = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true,
}

// Attachment is a file embedded in a row as a data URI
// ("data:<mime>;base64,<payload>").
type Attachment struct {
	Name    string `json:"nome"`
	DataURI string `json:"base64"`
	MIME    string `json:"mime"`
	Size    int    `json:"size"`
}

func (a *Attachment) IsEmpty() bool {
	return a == nil || a.DataURI == ""
}

// ParseAttachment decodes and validates a data URI. The declared media type
// is ignored; the content is sniffed.
func ParseAttachment(name, dataURI string) (*Attachment, error) {
	dataURI = strings.TrimSpace(dataURI)
	if dataURI == "" {
		return nil, nil
	}
	if !strings.HasPrefix(dataURI, "data:") {
		return nil, ErrAttachmentEncoding
	}
	comma := strings.Index(dataURI, ",")
	if comma < 0 || !strings.HasSuffix(dataURI[:comma], ";base64") {
		return nil, ErrAttachmentEncoding
	}
	payload := dataURI[comma+1:]
	// Cheap bound before decoding.
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxAttachmentBytes+2 {
		return nil, ErrAttachmentTooLarge
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrAttachmentEncoding
	}
	if len(raw) > MaxAttachmentBytes {
		return nil, ErrAttachmentTooLarge
	}

	mt := mimetype.Detect(raw)
	if !mimetype.EqualsAny(mt.String(), allowedAttachmentTypes...) {
		return nil, ErrAttachmentType
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "arquivo" + mt.Extension()
	} else if !allowedAttachmentExts[strings.ToLower(filepath.Ext(name))] {
		return nil, ErrAttachmentType
	}

	return &Attachment{Name: name, DataURI: dataURI, MIME: mt.String(), Size: len(raw)}, nil
}
