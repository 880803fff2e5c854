package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
	Region     string
}

// NewS3Config initializes the S3 client for recipe image uploads
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	if !cfg.ImageStorageEnabled() {
		return nil, fmt.Errorf("S3_BUCKET_NAME is not set")
	}

	// Load AWS config from environment or shared config
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: cfg.S3BucketName,
		Region:     awsCfg.Region,
	}, nil
}

// PublicURL returns the public URL of an object in the bucket
func (s *S3Config) PublicURL(objectKey string) string {
	if s.Region == "" || s.Region == "us-east-1" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.BucketName, objectKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.BucketName, s.Region, objectKey)
}
