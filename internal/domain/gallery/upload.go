package gallery

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrEmptyFile          = errors.New("file is empty")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrInvalidContentType = errors.New("file type is not allowed")
)

// SniffLen is how many leading bytes DetectContentType looks at.
const SniffLen = 512

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// DetectImageType sniffs head and returns the content type and the file
// extension uploads of that type are stored with.
func DetectImageType(head []byte) (contentType, ext string, err error) {
	contentType = strings.Split(http.DetectContentType(head), ";")[0]
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", "", ErrInvalidContentType
	}
	return contentType, ext, nil
}

func CheckSize(size, maxBytes int64) error {
	switch {
	case size == 0:
		return ErrEmptyFile
	case size > maxBytes:
		return ErrFileTooLarge
	}
	return nil
}
