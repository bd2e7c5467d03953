package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"kanban/internal/app/storage"
)

//go:generate mockgen -source=images.go -destination=mock_images_test.go -package=handler

// ImageStore объектное хранилище обложек карточек (см. storage.MinIOClient)
type ImageStore interface {
	UploadFile(ctx context.Context, fileData []byte, originalFilename string) (string, error)
	DeleteFile(ctx context.Context, name string) error
	GetFileURL(ctx context.Context, name string) (string, error)
}

const maxImageSize = 5 << 20

var (
	errImageTooLarge   = fmt.Errorf("image must not exceed %d bytes", maxImageSize)
	errImageNotAllowed = errors.New("only jpeg, png, gif and webp images are allowed")
)

func readImage(file *multipart.FileHeader) ([]byte, error) {
	if file.Size > maxImageSize {
		return nil, errImageTooLarge
	}
	if storage.ContentType(file.Filename) == "" {
		return nil, errImageNotAllowed
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, errImageTooLarge
	}
	return data, nil
}
