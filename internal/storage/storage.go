// Package storage abstracts the image host behind a small port so the
// upload pipeline can be exercised without network access.
package storage

import (
	"context"
	"errors"
)

// Uploader forwards a locally staged file to the image host and returns
// its hosted URL.
type Uploader interface {
	Upload(ctx context.Context, filePath string) (string, error)
}

// Disabled stands in when no image host is configured. Uploads fail,
// everything else keeps working.
type Disabled struct{}

func (Disabled) Upload(context.Context, string) (string, error) {
	return "", errors.New("image host not configured")
}
