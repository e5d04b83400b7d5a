package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"centeradmin/pkg/logger"
)

const urlPrefix = "https://storage.googleapis.com/"

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadFile stores the file under a collision-free name and returns its
// public URL.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	filename := objectName(folder, fileType)

	obj := c.client.Bucket(c.bucketName).Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = fileType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return fmt.Sprintf("%s%s/%s", urlPrefix, c.bucketName, filename), nil
}

// DeleteFile removes the object behind fileURL. URLs the bucket does not own
// (externally hosted images) and objects that are already gone are treated as
// a no-op success, since asset URLs may originate from sources the gateway
// does not manage.
func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	name, ok := c.objectNameFromURL(fileURL)
	if !ok {
		logger.Debug("Skipping delete of URL not owned by bucket %s: %s", c.bucketName, fileURL)
		return nil
	}

	obj := c.client.Bucket(c.bucketName).Object(name)
	if err := obj.Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

// OwnsURL reports whether fileURL points into this client's bucket.
func (c *CloudStorageClient) OwnsURL(fileURL string) bool {
	_, ok := c.objectNameFromURL(fileURL)
	return ok
}

func (c *CloudStorageClient) objectNameFromURL(fileURL string) (string, bool) {
	if !strings.HasPrefix(fileURL, urlPrefix) {
		return "", false
	}

	path := fileURL[len(urlPrefix):]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] != c.bucketName || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func objectName(folder, fileType string) string {
	name := fmt.Sprintf("%s/%s-%s", folder, uuid.New().String(), time.Now().Format("20060102150405"))

	switch fileType {
	case "image/jpeg", "image/jpg":
		name += ".jpg"
	case "image/png":
		name += ".png"
	case "image/gif":
		name += ".gif"
	case "image/webp":
		name += ".webp"
	default:
		name += ".bin"
	}

	return name
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
