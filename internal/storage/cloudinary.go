package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary uploads staged files to Cloudinary. Credentials come from
// the CLOUDINARY_URL environment variable.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary() (*Cloudinary, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

// Upload sends the file at filePath and returns its hosted URL.
func (c *Cloudinary) Upload(ctx context.Context, filePath string) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, filePath, uploader.UploadParams{})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	// The SDK reports API-level failures in the result body.
	if res.Error.Message != "" {
		return "", errors.New("cloudinary upload: " + res.Error.Message)
	}
	return res.SecureURL, nil
}
