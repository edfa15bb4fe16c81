package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentModel is a stored-file metadata row. A nil module id means the
// file belongs to the shared repository rather than a module.
type DocumentModel struct {
	DocumentID          uuid.UUID  `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentTitle       string     `gorm:"column:document_title;size:255;not null" json:"document_title"`
	DocumentFileURL     string     `gorm:"column:document_file_url;size:512;not null" json:"document_file_url"`
	DocumentObjectKey   string     `gorm:"column:document_object_key;size:512;not null" json:"-"`
	DocumentContentType string     `gorm:"column:document_content_type;size:100" json:"document_content_type"`
	DocumentSize        int64      `gorm:"column:document_size" json:"document_size"`
	DocumentModuleID    *uuid.UUID `gorm:"column:document_module_id;type:uuid;index" json:"document_module_id,omitempty"`
	DocumentUploadedBy  uuid.UUID  `gorm:"column:document_uploaded_by;type:uuid;not null" json:"document_uploaded_by"`
	DocumentCreatedAt   time.Time  `gorm:"column:document_created_at;autoCreateTime" json:"document_created_at"`
}

func (DocumentModel) TableName() string {
	return "documents"
}
