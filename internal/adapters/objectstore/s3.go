package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"pricesplash/internal/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// S3Store talks to any S3-compatible bucket (Cloudflare R2, MinIO, AWS S3).
type S3Store struct {
	client *minio.Client
	bucket string
}

func (s *S3Store) List(ctx context.Context, prefix string) ([]domain.ObjectInfo, error) {
	// Canceling stops the listing goroutine if we return early.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	infos := make([]domain.ObjectInfo, 0, 16)
	for obj := range s.client.ListObjects(listCtx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects under %q: %w", prefix, obj.Err)
		}
		infos = append(infos, domain.ObjectInfo{Key: obj.Key})
	}
	return infos, nil
}

func (s *S3Store) Get(ctx context.Context, key string) (domain.Object, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return domain.Object{}, s.wrapGetErr(key, err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return domain.Object{}, s.wrapGetErr(key, err)
	}

	body, err := io.ReadAll(obj)
	if err != nil {
		return domain.Object{}, s.wrapGetErr(key, err)
	}

	return domain.Object{Key: key, Body: body, ContentType: info.ContentType}, nil
}

func (s *S3Store) Put(ctx context.Context, obj domain.Object) error {
	_, err := s.client.PutObject(ctx, s.bucket, obj.Key, bytes.NewReader(obj.Body), int64(len(obj.Body)),
		minio.PutObjectOptions{ContentType: obj.ContentType})
	if err != nil {
		return fmt.Errorf("failed to put object %q: %w", obj.Key, err)
	}
	return nil
}

func (s *S3Store) wrapGetErr(key string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %q", domain.ErrObjectNotFound, key)
	}
	return fmt.Errorf("failed to get object %q: %w", key, err)
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client for %q: %w", cfg.Endpoint, err)
	}
	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}
