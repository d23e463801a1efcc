package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"shopper-front/config"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateUpload checks a logo or product image before it is forwarded to
// the backend. Nothing is ever written to local disk in this tier.
func ValidateUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return nil
	}
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return errors.New("file size exceeds maximum allowed size")
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return errors.New("invalid file type. Only images are allowed")
	}
	return nil
}
