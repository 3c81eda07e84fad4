// Package storage uploads mini-site media (logos, cover images, gallery
// photos, transparency PDFs) to Cloudinary and returns public URLs the
// editors write back into the site configuration.
package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// UploadResult describes a stored asset.
type UploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
	Format   string `json:"format"`
	Bytes    int    `json:"bytes"`
}

// StorageService defines the interface for media storage operations.
type StorageService interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
