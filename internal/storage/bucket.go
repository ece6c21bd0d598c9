// Package storage uploads dashboard documents to a Google Cloud Storage
// bucket and hands back long-lived signed read URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Signed read URLs outlive the documents they reference by design: the
// dashboard stores the URL, not the object path.
const signedURLLifetime = 5 * 365 * 24 * time.Hour

type Bucket struct {
	name   string
	bucket *gcs.BucketHandle
	client *gcs.Client
}

func NewBucket(ctx context.Context, bucketName string, credentialsFile string) (*Bucket, error) {
	client, err := gcs.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	return &Bucket{
		name:   bucketName,
		bucket: client.Bucket(bucketName),
		client: client,
	}, nil
}

// Upload writes the blob and returns a signed read URL for it.
func (b *Bucket) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	writer := b.bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, r); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("storage: upload %s: %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", objectName, err)
	}

	url, err := b.bucket.SignedURL(objectName, &gcs.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(signedURLLifetime),
	})
	if err != nil {
		return "", fmt.Errorf("storage: sign %s: %w", objectName, err)
	}
	return url, nil
}

func (b *Bucket) Close() error {
	return b.client.Close()
}
