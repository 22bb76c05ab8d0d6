package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/stylemart/internal/config"

	"github.com/google/uuid"
)

// UploadService stores product image uploads on local disk.
type UploadService struct {
	cfg *config.Config
}

// NewUploadService creates an upload service.
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveFiles stores a batch of image files under a per-batch folder
// and returns their public paths. The batch folder is timestamped so
// one product's images stay together.
func (s *UploadService) SaveFiles(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}
	if maxFiles := s.cfg.Upload.MaxFiles; maxFiles > 0 && len(files) > maxFiles {
		return nil, ErrInvalidInput
	}

	batch := fmt.Sprintf("%d", time.Now().UnixMilli())
	paths := make([]string, 0, len(files))
	for _, file := range files {
		path, err := s.saveFile(file, batch)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *UploadService) saveFile(file *multipart.FileHeader, batch string) (string, error) {
	if file.Size > s.cfg.Upload.MaxSize {
		return "", ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.Upload.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.Upload.AllowedExtensions) {
			return "", ErrUploadInvalidType
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Sniff the MIME type from the first 512 bytes.
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}
	contentType := http.DetectContentType(buffer)
	if len(s.cfg.Upload.AllowedTypes) > 0 {
		allowed := false
		for _, t := range s.cfg.Upload.AllowedTypes {
			if strings.EqualFold(contentType, t) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", ErrUploadInvalidType
		}
	}

	baseDir := strings.TrimSpace(s.cfg.Upload.Dir)
	if baseDir == "" {
		baseDir = "./uploads"
	}
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	savePath := filepath.Join(baseDir, "products", batch, filename)

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("/uploads/products/%s/%s", batch, filename), nil
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}
