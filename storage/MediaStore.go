package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"skilltracker/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/segmentio/ksuid"
)

// File is an upload that already passed size and type validation.
type File struct {
	Data        []byte
	ContentType string
}

// StoredMedia identifies a hosted file. MediaID is what Delete needs later.
type StoredMedia struct {
	URL     string
	MediaID string
}

// MediaStore hosts user files (avatars, certificate documents).
type MediaStore interface {
	Upload(ctx context.Context, folder string, file File) (StoredMedia, error)
	Delete(ctx context.Context, mediaID string) error
}

// Folders under the configured root.
const (
	FolderAvatars      = "avatars"
	FolderCertificates = "certificates"
)

// New builds the MediaStore selected by cfg.Driver.
func New(ctx context.Context, cfg config.Media) (MediaStore, error) {
	switch cfg.Driver {
	case "minio", "":
		return NewMinioStore(ctx, cfg)
	case "s3":
		return NewS3Store(ctx, cfg)
	}
	return nil, fmt.Errorf("unsupported media driver %q", cfg.Driver)
}

// objectKey builds a collision-free key such as "skill-tracker/avatars/2Nf...x.png".
func objectKey(root, folder, contentType string) string {
	ext := ""
	if mt := mimetype.Lookup(contentType); mt != nil {
		ext = mt.Extension()
	}
	return path.Join(root, folder, ksuid.New().String()+ext)
}

func joinURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + key
}
