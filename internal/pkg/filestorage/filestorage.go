package filestorage

import (
	"mime/multipart"
)

// Subdirectories used for the different upload kinds.
const (
	SubdirNotes    = "notes"
	SubdirPodcasts = "podcasts"
	SubdirAvatars  = "avatars"
)

// FileStorage defines the interface for file storage operations.
// The rest of the application only stores the opaque URL it returns.
type FileStorage interface {
	// SaveFile saves a file into the storage root and returns its accessible URL.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves a file into a subdirectory of the storage root.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing file is not an error.
	DeleteFile(filePath string) error
}
