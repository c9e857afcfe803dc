package storage

import (
	"fmt"

	"idocx/config"
)

// NewAdapter builds the storage backend selected by configuration.
func NewAdapter(cfg *config.Config) (Adapter, error) {
	switch cfg.StorageProvider {
	case "local", "":
		return NewLocalAdapter(cfg.StorageLocation)
	case "s3":
		return NewS3Adapter(&S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.StorageProvider)
	}
}
