package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// MaxUploadSize is the guard applied by controllers before streaming to OSS.
const MaxUploadSize = int64(20 * 1024 * 1024)

type OSSService struct {
	client     *oss.Client
	bucket     *oss.Bucket
	bucketName string
	endpoint   string
	prefix     string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	ak := getEnv("OSS_ACCESS_KEY_ID")
	sk := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env incomplete (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss.Bucket: %w", err)
	}

	return &OSSService{
		client:     client,
		bucket:     bucket,
		bucketName: bucketName,
		endpoint:   endpoint,
		prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// buildObjectKey yields "<prefix>/<dir>/<yyyy>/<mm>/<uuid><ext>".
func (s *OSSService) buildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	now := time.Now().UTC()
	parts := []string{}
	if s.prefix != "" {
		parts = append(parts, s.prefix)
	}
	if d := strings.Trim(dir, "/"); d != "" {
		parts = append(parts, d)
	}
	parts = append(parts, fmt.Sprintf("%04d/%02d", now.Year(), now.Month()))
	parts = append(parts, uuid.NewString()+ext)
	return path.Join(parts...)
}

func sniffContentType(fh *multipart.FileHeader, head []byte) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	if len(head) > 0 {
		return http.DetectContentType(head)
	}
	if byExt := mime.TypeByExtension(filepath.Ext(fh.Filename)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}

// UploadFromFormFileToDir streams a multipart file into the bucket and
// returns (objectKey, contentType).
func (s *OSSService) UploadFromFormFileToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open form file: %w", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)
	head = head[:n]
	ct := sniffContentType(fh, head)

	key := s.buildObjectKey(dir, fh.Filename)
	body := io.MultiReader(bytes.NewReader(head), f)

	opts := []oss.Option{
		oss.ContentType(ct),
		oss.ContentDisposition(fmt.Sprintf("inline; filename=%q", filepath.Base(fh.Filename))),
	}
	if err := s.bucket.PutObject(key, body, opts...); err != nil {
		return "", "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return key, ct, nil
}

// UploadBytes writes an in-memory payload (used for re-encoded images).
func (s *OSSService) UploadBytes(ctx context.Context, key string, data []byte, contentType string) error {
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return fmt.Errorf("oss put %s: %w", key, err)
	}
	return nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.bucket.DeleteObject(key)
}

// PublicURL builds the virtual-hosted bucket URL for an object key.
func (s *OSSService) PublicURL(key string) string {
	host := s.endpoint
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, host, key)
}

// KeyFromPublicURL reverses PublicURL; empty string when the URL does not
// point into this bucket.
func (s *OSSService) KeyFromPublicURL(publicURL string) string {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil || u.Host == "" {
		return ""
	}
	if !strings.HasPrefix(u.Host, s.bucketName+".") {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key := s.KeyFromPublicURL(publicURL)
	if key == "" {
		return fmt.Errorf("url is not in bucket %s: %s", s.bucketName, publicURL)
	}
	return s.DeleteObject(ctx, key)
}
