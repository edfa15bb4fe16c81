package dto

import (
	"time"

	"github.com/google/uuid"

	"uniportal_backend/internals/features/repository/model"
)

type CreateLinkRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	URL   string `json:"url" validate:"required,url,max=512"`
}

type UpdateLinkRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=255"`
	URL   *string `json:"url" validate:"omitempty,url,max=512"`
}

type DocumentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	FileURL     string     `json:"file_url"`
	ContentType string     `json:"content_type"`
	Size        int64      `json:"size"`
	ModuleID    *uuid.UUID `json:"module_id,omitempty"`
	UploadedBy  uuid.UUID  `json:"uploaded_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LinkResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func ToDocumentResponse(d *model.DocumentModel) DocumentResponse {
	return DocumentResponse{
		ID:          d.DocumentID,
		Title:       d.DocumentTitle,
		FileURL:     d.DocumentFileURL,
		ContentType: d.DocumentContentType,
		Size:        d.DocumentSize,
		ModuleID:    d.DocumentModuleID,
		UploadedBy:  d.DocumentUploadedBy,
		CreatedAt:   d.DocumentCreatedAt,
	}
}

func ToDocumentResponseList(docs []model.DocumentModel) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, ToDocumentResponse(&docs[i]))
	}
	return out
}

func ToLinkResponse(l *model.RepositoryLinkModel) LinkResponse {
	return LinkResponse{
		ID:        l.RepositoryLinkID,
		Title:     l.RepositoryLinkTitle,
		URL:       l.RepositoryLinkURL,
		CreatedBy: l.RepositoryLinkCreatedBy,
		CreatedAt: l.RepositoryLinkCreatedAt,
	}
}

func ToLinkResponseList(links []model.RepositoryLinkModel) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for i := range links {
		out = append(out, ToLinkResponse(&links[i]))
	}
	return out
}
