package storage

import (
	"context"
	"errors"
	"path"
	"strings"
)

// ErrNotConfigured is returned by the factory when no backend credentials
// are present. Handlers translate it to 503 and write nothing.
var ErrNotConfigured = errors.New("storage backend not configured")

// Storage is the upload/delete collaborator for assets and attachments.
// The application treats it as opaque: it only persists the returned
// public URL and storage path.
type Storage interface {
	// Upload decodes base64 content and stores it under a key derived
	// from folder and fileName, returning the public URL and the storage
	// path used later for deletion.
	Upload(ctx context.Context, fileName, base64Content, folder string) (publicURL, storagePath string, err error)

	// Delete removes a previously uploaded object by its storage path.
	Delete(ctx context.Context, storagePath string) error
}

// ClassifyFile maps a file name to the coarse type label stored on assets.
func ClassifyFile(fileName string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(fileName), ".")) {
	case "png", "jpg", "jpeg", "gif", "webp", "svg":
		return "image"
	case "mp4", "mov", "avi", "webm":
		return "video"
	case "pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "csv":
		return "document"
	case "zip", "rar", "tar", "gz", "7z":
		return "archive"
	default:
		return "other"
	}
}
