package entities

import (
	"time"

	"github.com/google/uuid"
)

// DocumentOrigin represents how a document entered the system
type DocumentOrigin string

const (
	DocumentOriginFile  DocumentOrigin = "file"  // loaded from disk (CLI or watcher)
	DocumentOriginAPI   DocumentOrigin = "api"   // posted raw over HTTP
	DocumentOriginAudio DocumentOrigin = "audio" // transcribed from a recording
)

// Document records one raw ingested artifact and where its archived copy
// lives in object storage.
type Document struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SourcePath  *string        `json:"source_path,omitempty" gorm:"type:varchar(1024);index"`
	Filename    string         `json:"filename" gorm:"type:varchar(255);not null"`
	ContentHash string         `json:"content_hash" gorm:"type:varchar(64);not null;index"`
	SizeBytes   int64          `json:"size_bytes" gorm:"not null;default:0"`
	Origin      DocumentOrigin `json:"origin" gorm:"type:varchar(20);not null;default:'file'"`

	MeetingID  *uuid.UUID `json:"meeting_id,omitempty" gorm:"type:uuid;index"`
	ArchiveKey *string    `json:"archive_key,omitempty" gorm:"type:varchar(1024)"`

	// Audio ingestion details
	AudioURL     *string `json:"audio_url,omitempty" gorm:"type:text"`
	TranscriptID *string `json:"transcript_id,omitempty" gorm:"type:varchar(255);index"` // AssemblyAI transcript ID

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Document
func (Document) TableName() string {
	return "documents"
}

// NewDocument creates a document record for an ingested artifact
func NewDocument(filename, contentHash string, sizeBytes int64, origin DocumentOrigin) *Document {
	return &Document{
		ID:          uuid.New(),
		Filename:    filename,
		ContentHash: contentHash,
		SizeBytes:   sizeBytes,
		Origin:      origin,
	}
}

// IsAudio checks if the document came in as a recording
func (d *Document) IsAudio() bool {
	return d.Origin == DocumentOriginAudio
}

// Archived checks if a copy exists in object storage
func (d *Document) Archived() bool {
	return d.ArchiveKey != nil
}
