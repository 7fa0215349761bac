package entity

import "time"

// File is an entry of the download center.
type File struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	FileType      string    `json:"file_type"`
	URL           string    `json:"url"`
	StorageKey    string    `json:"-"`
	MimeType      string    `json:"mime_type"`
	Size          int64     `json:"size"`
	DownloadCount int64     `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
