package helper

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// BlobService is the upload/delete facade controllers talk to, so handlers
// never touch the OSS SDK directly.
type BlobService interface {
	UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey, contentType string, err error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

var (
	defaultBlob     BlobService
	defaultBlobErr  error
	defaultBlobOnce sync.Once
)

// DefaultBlobService lazily builds the shared OSS-backed service from ENV.
func DefaultBlobService() (BlobService, error) {
	defaultBlobOnce.Do(func() {
		defaultBlob, defaultBlobErr = NewOSSBlobServiceFromEnv("uploads")
	})
	return defaultBlob, defaultBlobErr
}

func (b *OSSBlobService) UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	if fh == nil {
		return "", "", "", fmt.Errorf("no file provided")
	}
	if fh.Size > MaxUploadSize {
		return "", "", "", fmt.Errorf("file too large (max %d bytes)", MaxUploadSize)
	}
	key, ct, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		return "", "", "", err
	}
	return b.svc.PublicURL(key), key, ct, nil
}

func (b *OSSBlobService) UploadAvatar(ctx context.Context, userID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("no file provided")
	}
	raw, err := ReadAllLimited(fh, MaxUploadSize)
	if err != nil {
		return "", err
	}
	encoded, err := EncodeAvatarWebP(raw)
	if err != nil {
		return "", err
	}

	key := path.Join(strings.Trim(b.svc.prefix, "/"), "avatars", userID.String()+".webp")
	if err := b.svc.UploadBytes(ctx, key, encoded, "image/webp"); err != nil {
		return "", err
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}
