package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/JWDT/bug-tracker/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

// InitMinio connects to the object store holding ticket attachments and
// ensures the bucket exists.
func InitMinio() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
}

// UploadTicketAttachment stores an attachment under a per-ticket prefix
// with a uuid so repeated filenames never collide.
func UploadTicketAttachment(ctx context.Context, ticketID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectKey := fmt.Sprintf("ticket-%d/%s-%s", ticketID, uuid.New().String(), filename)
	_, err := Client.PutObject(ctx, BucketName, objectKey, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func PresignedAttachmentURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	u, err := Client.PresignedGetObject(ctx, BucketName, objectKey, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
