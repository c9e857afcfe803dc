package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Config holds the settings for an S3-compatible backend.
type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// S3Adapter stores workspace content as objects in an S3 bucket. Directories
// are implicit key prefixes.
type S3Adapter struct {
	client *s3.S3
	bucket string
}

// NewS3Adapter creates a new S3-backed adapter
func NewS3Adapter(cfg *S3Config) (*S3Adapter, error) {
	config := &aws.Config{
		Region: aws.String(cfg.Region),
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		config.Credentials = credentials.NewStaticCredentials(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)
	}

	// Custom endpoint for S3-compatible services
	if cfg.Endpoint != "" {
		config.Endpoint = aws.String(cfg.Endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &S3Adapter{
		client: s3.New(sess),
		bucket: cfg.Bucket,
	}, nil
}

// CreateDirectories is a no-op: S3 prefixes exist implicitly.
func (sa *S3Adapter) CreateDirectories(path string) error {
	return nil
}

func (sa *S3Adapter) Write(key string, data []byte) error {
	_, err := sa.client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(sa.bucket),
		Key:    aws.String(sa.Resolve(key)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %v", key, err)
	}
	return nil
}

func (sa *S3Adapter) Read(key string) ([]byte, error) {
	result, err := sa.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(sa.bucket),
		Key:    aws.String(sa.Resolve(key)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s: %v", key, err)
	}
	defer result.Body.Close()

	return io.ReadAll(result.Body)
}

func (sa *S3Adapter) Move(oldKey, newKey string) error {
	source := url.PathEscape(sa.bucket + "/" + sa.Resolve(oldKey))
	_, err := sa.client.CopyObject(&s3.CopyObjectInput{
		Bucket:     aws.String(sa.bucket),
		CopySource: aws.String(source),
		Key:        aws.String(sa.Resolve(newKey)),
	})
	if err != nil {
		return fmt.Errorf("failed to copy object %s: %v", oldKey, err)
	}

	return sa.Delete(oldKey)
}

func (sa *S3Adapter) Delete(key string) error {
	_, err := sa.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(sa.bucket),
		Key:    aws.String(sa.Resolve(key)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %v", key, err)
	}
	return nil
}

func (sa *S3Adapter) Exists(key string) bool {
	_, err := sa.client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(sa.bucket),
		Key:    aws.String(sa.Resolve(key)),
	})
	if err == nil {
		return true
	}

	// A prefix with at least one object counts as an existing directory.
	listing, listErr := sa.client.ListObjectsV2(&s3.ListObjectsV2Input{
		Bucket:  aws.String(sa.bucket),
		Prefix:  aws.String(sa.Resolve(key) + "/"),
		MaxKeys: aws.Int64(1),
	})
	return listErr == nil && len(listing.Contents) > 0
}

func (sa *S3Adapter) Walk(prefix string) ([]string, error) {
	var keys []string
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(sa.bucket),
		Prefix: aws.String(sa.Resolve(prefix)),
	}

	err := sa.client.ListObjectsV2Pages(input, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, *obj.Key)
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects under %s: %v", prefix, err)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

func (sa *S3Adapter) Resolve(parts ...string) string {
	return strings.TrimPrefix(path.Clean(path.Join(parts...)), "/")
}
