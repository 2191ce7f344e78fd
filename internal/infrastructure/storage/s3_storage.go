package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/pkg/config"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

var _ ports.ImageStorage = (*S3Storage)(nil)

// S3Storage guarda las imágenes en un bucket compatible con S3 (MinIO, R2).
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	log       *logger.Logger
}

// NewS3Storage crea el cliente y el bucket si no existe.
func NewS3Storage(ctx context.Context, cfg config.S3Config, log *logger.Logger) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 20,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente S3: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("comprobar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("crear bucket: %w", err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("bucket S3 creado")
	}

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	log.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Bool("ssl", cfg.UseSSL).Msg("almacenamiento S3 inicializado")

	return &S3Storage{client: client, bucket: cfg.Bucket, publicURL: publicURL, log: log}, nil
}

func (s *S3Storage) Save(ctx context.Context, filename, contentType string, size int64, content io.Reader) (string, error) {
	key, err := objectKey(filename)
	if err != nil {
		return "", err
	}
	if size <= 0 {
		size = -1 // streaming hasta EOF
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("subir imagen: %w", err)
	}
	s.log.Debug().Str("key", key).Str("content_type", contentType).Msg("imagen subida a S3")
	return key, nil
}

// Delete borra el objeto. RemoveObject no falla si la clave no existe.
func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	key, err := cleanKey(ref)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("borrar imagen: %w", err)
	}
	s.log.Debug().Str("key", key).Msg("imagen borrada de S3")
	return nil
}

func (s *S3Storage) URL(ref string) string {
	return s.publicURL + "/" + strings.TrimPrefix(ref, "/")
}
