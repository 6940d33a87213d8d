// Package storage issues presigned S3 upload URLs for listing photos.
// Clients upload photos directly to object storage and submit the public
// URLs with the listing; the API server never proxies image bytes.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"estate-backend/pkg/config"
)

const presignExpiry = 15 * time.Minute

// Function seams so tests can stub the AWS SDK without a live endpoint.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// PresignedUpload is the response for a single photo upload slot.
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

// Uploader presigns PUT requests against the configured bucket.
type Uploader struct {
	config *config.Config
}

// NewUploader returns an Uploader, or nil when no bucket is configured.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}
	return &Uploader{config: cfg}
}

// PhotoKey builds a collision-free object key that keeps the original
// file extension for content-type sniffing on download.
func PhotoKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("listings/%d/%02d/%v%s", d.Year(), d.Month(), uuid.New(), strings.ToLower(path.Ext(filename)))
}

func (u *Uploader) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(u.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.config.S3AccessKey,
			u.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.config.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(u.config.S3Endpoint)
		}
	})

	return newS3PresignClient(client), nil
}

// PresignPhotoUpload returns a time-limited PUT URL for one listing photo.
func (u *Uploader) PresignPhotoUpload(ctx context.Context, filename, contentType string) (*PresignedUpload, error) {
	presignClient, err := u.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := u.config.S3Bucket
	key := PhotoKey(filename)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		PublicURL: u.publicURL(key),
		Key:       key,
	}, nil
}

func (u *Uploader) publicURL(key string) string {
	if u.config.S3PublicBaseURL != "" {
		return strings.TrimSuffix(u.config.S3PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.config.S3Bucket, u.config.S3Region, key)
}
