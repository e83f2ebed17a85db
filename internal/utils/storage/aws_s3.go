package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var (
	AllowCSV = []string{"text/csv"}

	ErrContentTypeNotAllowed = errors.New("content type not allowed")
	ErrStorageNotConfigured  = errors.New("storage bucket is not configured")
)

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, body []byte, folder string, contentType string, allowTypes ...string) (string, error)
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

// NewAwsS3 builds the client from the AWS_* variables exported by
// utils.LoadConfig.
func NewAwsS3() AwsS3 {
	bucket := os.Getenv("AWS_S3_BUCKET")
	region := os.Getenv("AWS_S3_REGION")

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY"),
			os.Getenv("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Warnw("unable to load aws config", "error", err)
		return &awsS3{bucket: bucket, region: region}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

// UploadFile stores body under folder/<timestamp>-<uuid>-fileName and returns
// the object key.
func (a *awsS3) UploadFile(ctx context.Context, fileName string, body []byte, folder string, contentType string, allowTypes ...string) (string, error) {
	if a.client == nil || a.bucket == "" {
		return "", ErrStorageNotConfigured
	}
	if len(allowTypes) > 0 && !slices.Contains(allowTypes, contentType) {
		return "", fmt.Errorf("%w: %s", ErrContentTypeNotAllowed, contentType)
	}

	key := path.Join(folder, fmt.Sprintf("%d-%s-%s", time.Now().Unix(), uuid.NewString(), fileName))
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}
