package media

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Ansh1vohra/edublog-server/config"
)

// ErrUnsupportedFormat is returned for uploads that are not jpg/jpeg/png.
var ErrUnsupportedFormat = errors.New("unsupported image format, allowed: jpg, jpeg, png")

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Uploader stores images in an S3-compatible bucket and hands back public
// URLs. Safe for concurrent use.
type Uploader struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewUploader(ctx context.Context, cfg config.MinioConfig) (*Uploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return &Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket),
	}, nil
}

// Upload streams the file into the bucket under the given folder and
// returns its public URL. Object names are random, so uploads never
// overwrite each other.
func (u *Uploader) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	objectName, contentType, err := objectNameFor(folder, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	_, err = u.client.PutObject(ctx, u.bucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", objectName, err)
	}

	return u.baseURL + "/" + objectName, nil
}

// objectNameFor validates the extension and builds a unique object name.
func objectNameFor(folder, filename, headerContentType string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExts[ext] {
		return "", "", ErrUnsupportedFormat
	}

	contentType := headerContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}

	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)
	return objectName, contentType, nil
}
