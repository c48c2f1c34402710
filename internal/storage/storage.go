// Package storage archives generated reports to a configurable backend,
// either the local filesystem or Tencent Cloud COS.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/telemetry-codec/pkg/config"
)

// Storage is the interface for report archival backends.
type Storage interface {
	// Upload stores the data read from reader under the given key.
	Upload(ctx context.Context, key string, reader io.Reader) error

	// UploadFile stores a local file under the given key.
	UploadFile(ctx context.Context, key string, localPath string) error

	// Download retrieves the object stored under the given key.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object at the given key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the location of the given key: a filesystem path for
	// local storage, a public URL for COS.
	GetURL(key string) string
}

// StorageType identifies the archival backend.
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeCOS   StorageType = "cos"
)

// NewStorage creates a Storage backend from configuration. An empty type
// selects local storage.
func NewStorage(cfg *config.StorageConfig) (Storage, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	switch StorageType(cfg.Type) {
	case StorageTypeCOS:
		return NewCOSStorage(&COSConfig{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Domain:    cfg.Domain,
			Scheme:    cfg.Scheme,
		})
	default:
		return NewLocalStorage(cfg.LocalPath)
	}
}

// ValidateConfig validates the storage configuration.
func ValidateConfig(cfg *config.StorageConfig) error {
	if cfg == nil {
		return fmt.Errorf("storage config is nil")
	}

	storageType := StorageType(cfg.Type)
	if storageType == "" {
		storageType = StorageTypeLocal
	}

	switch storageType {
	case StorageTypeLocal:
		if cfg.LocalPath == "" {
			return fmt.Errorf("local storage path is required")
		}
	case StorageTypeCOS:
		if cfg.Bucket == "" {
			return fmt.Errorf("COS bucket is required")
		}
		if cfg.Region == "" {
			return fmt.Errorf("COS region is required")
		}
		if cfg.SecretID == "" || cfg.SecretKey == "" {
			return fmt.Errorf("COS credentials are required")
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}

	return nil
}
