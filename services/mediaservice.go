package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MediaUploader stores image bytes on an S3-compatible media host and hands
// back durable public URLs. The host is an opaque collaborator: store bytes,
// return a URL.
type MediaUploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewMediaUploader() (*MediaUploader, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	region := os.Getenv("S3_REGION")
	bucket := os.Getenv("S3_BUCKET")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")

	if endpoint == "" || bucket == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("missing required S3 environment variables (S3_ENDPOINT/S3_BUCKET/S3_ACCESS_KEY/S3_SECRET_KEY)")
	}
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	publicURL := os.Getenv("S3_PUBLIC_URL")
	if publicURL == "" {
		publicURL = endpoint
	}

	return &MediaUploader{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func storageKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%v%s", folder, uuid.New(), ext)
}

// UploadFiles stores every file under the given folder concurrently and
// returns the URLs in input order. One failed upload fails the whole batch;
// already-stored objects are not cleaned up.
func (u *MediaUploader) UploadFiles(ctx context.Context, folder string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		g.Go(func() error {
			src, err := fh.Open()
			if err != nil {
				return err
			}
			defer src.Close()

			key := storageKey(folder, fh.Filename)
			contentType := fh.Header.Get("Content-Type")
			if contentType == "" {
				contentType = "application/octet-stream"
			}

			_, err = u.client.PutObject(gctx, &s3.PutObjectInput{
				Bucket:      aws.String(u.bucket),
				Key:         aws.String(key),
				Body:        src,
				ContentType: aws.String(contentType),
			})
			if err != nil {
				return fmt.Errorf("upload %s: %w", fh.Filename, err)
			}

			urls[i] = fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
