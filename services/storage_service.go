package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
)

// StorageService persists invocation artifacts, such as the JPEG produced
// by a successful image-processor run.
type StorageService interface {
	SaveArtifact(ctx context.Context, key string, data []byte, contentType string) error
	GetArtifact(ctx context.Context, key string) ([]byte, error)
	DeleteArtifact(ctx context.Context, key string) error
}

// LocalStorageService implements StorageService on the local filesystem.
type LocalStorageService struct {
	basePath string
}

func NewLocalStorageService(basePath string) (*LocalStorageService, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, err
	}
	return &LocalStorageService{basePath: basePath}, nil
}

func (s *LocalStorageService) SaveArtifact(ctx context.Context, key string, data []byte, contentType string) error {
	fullPath := filepath.Join(s.basePath, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

func (s *LocalStorageService) GetArtifact(ctx context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.basePath, key))
}

func (s *LocalStorageService) DeleteArtifact(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(s.basePath, key))
}

// S3StorageService implements StorageService using AWS S3.
type S3StorageService struct {
	client *s3.Client
	bucket string
}

func NewS3StorageService(bucket string, trace bool) (*S3StorageService, error) {
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}

	if trace {
		awsv2.AWSV2Instrumentor(&cfg.APIOptions)
	}

	client := s3.NewFromConfig(cfg)
	return &S3StorageService{client: client, bucket: bucket}, nil
}

func (s *S3StorageService) SaveArtifact(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *S3StorageService) GetArtifact(ctx context.Context, key string) ([]byte, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer output.Body.Close()

	return io.ReadAll(output.Body)
}

func (s *S3StorageService) DeleteArtifact(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// NewStorageService creates the backend selected by configuration.
func NewStorageService(storageType, pathOrBucket string, trace bool) (StorageService, error) {
	switch storageType {
	case "s3":
		return NewS3StorageService(pathOrBucket, trace)
	case "local":
		return NewLocalStorageService(pathOrBucket)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}

// ArtifactKey is where a successful invocation's output image lives.
func ArtifactKey(invocationID int64) string {
	return fmt.Sprintf("artifacts/invocations/inv_%d.jpg", invocationID)
}
