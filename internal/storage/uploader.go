package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/utils"
)

// Uploader stores base64-encoded images and returns their public URLs.
type Uploader interface {
	UploadImages(ctx context.Context, images []string) ([]string, error)
	UploadPDF(ctx context.Context, pdf string) (string, error)
}

// DiskUploader writes uploads to a local directory served under baseURL.
type DiskUploader struct {
	dir     string
	baseURL string
}

func NewDiskUploader(dir, baseURL string) *DiskUploader {
	return &DiskUploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (u *DiskUploader) UploadImages(ctx context.Context, images []string) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := u.store(img, ".jpg")
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (u *DiskUploader) UploadPDF(ctx context.Context, pdf string) (string, error) {
	return u.store(pdf, ".pdf")
}

func (u *DiskUploader) store(data, ext string) (string, error) {
	// Accept both raw base64 and data-URL payloads.
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		data = data[idx+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("%w: decode upload: %v", utils.ErrUploadFailed, err)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(u.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("%w: write upload: %v", utils.ErrUploadFailed, err)
	}
	return u.baseURL + "/" + name, nil
}
