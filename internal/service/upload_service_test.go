package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stylemart/internal/config"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func setupUploadServiceTest(t *testing.T) *UploadService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.MaxFiles = 2
	cfg.Upload.AllowedTypes = []string{"image/png", "image/jpeg"}
	cfg.Upload.AllowedExtensions = []string{".png", ".jpg", ".jpeg"}
	return NewUploadService(cfg)
}

func buildUploadRequest(t *testing.T, names [][2]string) []*multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, entry := range names {
		part, err := writer.CreateFormFile("images", entry[0])
		if err != nil {
			t.Fatalf("create form file failed: %v", err)
		}
		if _, err := part.Write([]byte(entry[1])); err != nil {
			t.Fatalf("write form file failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(4 << 20); err != nil {
		t.Fatalf("parse multipart failed: %v", err)
	}
	return req.MultipartForm.File["images"]
}

func TestUploadSaveFilesEmptyInput(t *testing.T) {
	svc := setupUploadServiceTest(t)

	paths, err := svc.SaveFiles(nil)
	if err != nil {
		t.Fatalf("empty input failed: %v", err)
	}
	if paths == nil || len(paths) != 0 {
		t.Fatalf("empty input want [] got %v", paths)
	}
}

func TestUploadSaveFilesStoresImages(t *testing.T) {
	svc := setupUploadServiceTest(t)

	png := string(pngHeader) + strings.Repeat("x", 32)
	files := buildUploadRequest(t, [][2]string{
		{"front.png", png},
		{"back.PNG", png},
	})

	paths, err := svc.SaveFiles(files)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths want 2 got %d", len(paths))
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, "/uploads/products/") {
			t.Fatalf("path want /uploads/products/ prefix got %s", p)
		}
		if !strings.HasSuffix(strings.ToLower(p), ".png") {
			t.Fatalf("path want .png suffix got %s", p)
		}
		onDisk := strings.Replace(p, "/uploads", svc.cfg.Upload.Dir, 1)
		if _, err := os.Stat(onDisk); err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
	}
}

func TestUploadSaveFilesRejectsTooMany(t *testing.T) {
	svc := setupUploadServiceTest(t)

	png := string(pngHeader) + strings.Repeat("x", 32)
	files := buildUploadRequest(t, [][2]string{
		{"a.png", png}, {"b.png", png}, {"c.png", png},
	})

	if _, err := svc.SaveFiles(files); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("too many files want ErrInvalidInput got %v", err)
	}
}

func TestUploadSaveFilesRejectsBadType(t *testing.T) {
	svc := setupUploadServiceTest(t)

	files := buildUploadRequest(t, [][2]string{
		{"notes.txt", "plain text body"},
	})
	if _, err := svc.SaveFiles(files); !errors.Is(err, ErrUploadInvalidType) {
		t.Fatalf("txt extension want ErrUploadInvalidType got %v", err)
	}

	// Right extension, wrong bytes: the sniffed type wins.
	files = buildUploadRequest(t, [][2]string{
		{"fake.png", "<html><body>not an image</body></html>"},
	})
	if _, err := svc.SaveFiles(files); !errors.Is(err, ErrUploadInvalidType) {
		t.Fatalf("fake png want ErrUploadInvalidType got %v", err)
	}
}

func TestUploadSaveFilesRejectsOversize(t *testing.T) {
	svc := setupUploadServiceTest(t)
	svc.cfg.Upload.MaxSize = 16

	png := string(pngHeader) + strings.Repeat("x", 64)
	files := buildUploadRequest(t, [][2]string{{"big.png", png}})

	if _, err := svc.SaveFiles(files); !errors.Is(err, ErrUploadTooLarge) {
		t.Fatalf("oversize want ErrUploadTooLarge got %v", err)
	}
}
