package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pageza/cookbook/backend/config"
)

// MaxImageBytes is the largest recipe image accepted for upload.
const MaxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ObjectPutter is the subset of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService stores recipe images in S3
type ImageService struct {
	client    ObjectPutter
	bucket    string
	publicURL func(key string) string
}

// NewImageService creates an ImageService for the configured bucket
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{
		client:    s3Config.Client,
		bucket:    s3Config.BucketName,
		publicURL: s3Config.PublicURL,
	}
}

// UploadRecipeImage stores the image read from r and returns its public URL.
// The content type is sniffed from the data rather than trusted from the client.
func (s *ImageService) UploadRecipeImage(ctx context.Context, recipeID int64, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	key := fmt.Sprintf("recipe-images/%d/%s%s", recipeID, uuid.New().String(), ext)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := s.publicURL(key)
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", publicURL)
	return publicURL, nil
}
