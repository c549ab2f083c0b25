package upload

import "time"

// FileObject is the stored metadata of an uploaded file.
type FileObject struct {
	ID              string    `json:"id"`
	Filename        string    `json:"filename"`
	StorageProvider string    `json:"storage_provider"`
	StorageKey      string    `json:"storage_key"`
	MimeType        string    `json:"mime"`
	Bytes           int64     `json:"bytes"`
	Sha256          string    `json:"sha256"`
	UploadedBy      string    `json:"uploaded_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// UploadRequest carries one multipart file.
type UploadRequest struct {
	Filename string
	Data     []byte
	UserKey  string
}

// Result is what the caller gets back after an upload.
type Result struct {
	File    *FileObject
	URL     string
	Deduped bool
}
