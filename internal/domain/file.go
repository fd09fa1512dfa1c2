package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileType is the discriminator attached to every uploaded file
type FileType string

const (
	FileTypeResume      FileType = "resume"
	FileTypeCoverLetter FileType = "cover_letter"
	FileTypeDocument    FileType = "document"
)

// IsValid checks if a file type is valid
func (t FileType) IsValid() bool {
	switch t {
	case FileTypeResume, FileTypeCoverLetter, FileTypeDocument:
		return true
	}
	return false
}

// String returns the string representation of the file type
func (t FileType) String() string {
	return string(t)
}

// StoredFile is the metadata of a file held by the backend
type StoredFile struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Type        FileType  `json:"type"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}
