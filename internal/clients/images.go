package clients

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/config"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

// ImageStore uploads work-report evidence to S3. Unlike the best-effort
// geocoder, an upload failure is fatal to the submit operation.
type ImageStore struct {
	logger *slog.Logger
	cfg    config.S3Config
	client *s3.Client
}

func NewImageStore(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (*ImageStore, error) {
	const op = "clients.ImageStore.New"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
			o.UsePathStyle = true
		}
	})

	return &ImageStore{logger: logger, cfg: cfg, client: client}, nil
}

func (s *ImageStore) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	const op = "clients.ImageStore.Upload"

	ext := filepath.Ext(filename)
	key := "reports/" + uuid.New().String() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.cfg.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		s.logger.Error("s3 put failed", slog.String("op", op), slog.String("key", key), slog.Any("error", err))
		return "", fmt.Errorf("%s: %w", op, e.ErrUploadFailed)
	}

	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.cfg.Endpoint, s.cfg.Bucket, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key), nil
}
