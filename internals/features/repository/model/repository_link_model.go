package model

import (
	"time"

	"github.com/google/uuid"
)

// RepositoryLinkModel points at an external resource (journal, dataset,
// course site) listed in the shared repository.
type RepositoryLinkModel struct {
	RepositoryLinkID        uuid.UUID `gorm:"column:repository_link_id;type:uuid;default:gen_random_uuid();primaryKey" json:"repository_link_id"`
	RepositoryLinkTitle     string    `gorm:"column:repository_link_title;size:255;not null" json:"repository_link_title"`
	RepositoryLinkURL       string    `gorm:"column:repository_link_url;size:512;not null" json:"repository_link_url"`
	RepositoryLinkCreatedBy uuid.UUID `gorm:"column:repository_link_created_by;type:uuid;not null" json:"repository_link_created_by"`
	RepositoryLinkCreatedAt time.Time `gorm:"column:repository_link_created_at;autoCreateTime" json:"repository_link_created_at"`
}

func (RepositoryLinkModel) TableName() string {
	return "repository_links"
}
