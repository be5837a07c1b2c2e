package util

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// UploadRule bounds what a multipart upload may contain.
type UploadRule struct {
	MaxSize int64
	Allowed []string
}

var (
	AvatarUpload = UploadRule{
		MaxSize: 2 << 20,
		Allowed: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	}
	CertificateUpload = UploadRule{
		MaxSize: 5 << 20,
		Allowed: []string{"image/jpeg", "image/png", "application/pdf"},
	}
)

var (
	ErrFileMissing  = errors.New("file is required")
	ErrFileTooLarge = errors.New("file is too large")
	ErrFileType     = errors.New("file type is not allowed")
)

// ReadUpload reads a multipart file, enforcing the size limit and sniffing
// the content type from its bytes rather than trusting the client header.
func ReadUpload(fh *multipart.FileHeader, rule UploadRule) ([]byte, string, error) {
	if fh == nil {
		return nil, "", ErrFileMissing
	}
	if fh.Size > rule.MaxSize {
		return nil, "", fmt.Errorf("%w (max %d MB)", ErrFileTooLarge, rule.MaxSize>>20)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, rule.MaxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}

	contentType, err := CheckUpload(data, rule)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

// CheckUpload validates raw bytes against rule and returns the detected MIME type.
func CheckUpload(data []byte, rule UploadRule) (string, error) {
	if len(data) == 0 {
		return "", ErrFileMissing
	}
	if int64(len(data)) > rule.MaxSize {
		return "", fmt.Errorf("%w (max %d MB)", ErrFileTooLarge, rule.MaxSize>>20)
	}

	mt := mimetype.Detect(data)
	for _, allowed := range rule.Allowed {
		if mt.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: %s (allowed: %s)", ErrFileType, mt.String(), strings.Join(rule.Allowed, ", "))
}

// IsUploadError reports whether err came from upload validation.
func IsUploadError(err error) bool {
	return errors.Is(err, ErrFileMissing) || errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrFileType)
}
