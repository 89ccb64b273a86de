package filestorage

import "mime/multipart"

// FileStorage abstracts where uploaded files live. Implementations store
// bytes under a server-generated unique name and hand back that name; the
// original filename is preserved by the caller for display and download.
type FileStorage interface {
	// Save stores an uploaded file and returns the generated name and the
	// number of bytes written.
	Save(fileHeader *multipart.FileHeader) (storedName string, size int64, err error)

	// FullPath returns the filesystem path for a stored name.
	FullPath(storedName string) string

	// Delete removes a stored file.
	Delete(storedName string) error
}
