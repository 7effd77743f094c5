package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mveu/events-api/internal/domain/contract"
)

// DiskImageStore persists uploaded images on the local filesystem and
// references them as /uploads/<name>.
type DiskImageStore struct {
	dir       string
	maxBytes  int64
	randomGen contract.IRandomGenerator
}

// NewDiskImageStore creates the upload directory if needed.
func NewDiskImageStore(dir string, maxBytes int64, randomGen contract.IRandomGenerator) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &DiskImageStore{dir: dir, maxBytes: maxBytes, randomGen: randomGen}, nil
}

var _ contract.IImageStore = (*DiskImageStore)(nil)

// SaveAll validates every file before persisting any of them, so a batch with
// one oversized or non-image file is rejected as a whole.
func (s *DiskImageStore) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	for _, fh := range files {
		if err := s.validate(fh); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := s.save(fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, "/uploads/"+name)
	}
	return urls, nil
}

func (s *DiskImageStore) validate(fh *multipart.FileHeader) error {
	if fh.Size > s.maxBytes {
		return fmt.Errorf("%w: %s is larger than %d bytes", contract.ErrImageTooLarge, fh.Filename, s.maxBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
	}
	defer f.Close()

	// Sniff the actual content instead of trusting the declared header.
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read uploaded file %s: %w", fh.Filename, err)
	}
	if !strings.HasPrefix(http.DetectContentType(buf[:n]), "image/") {
		return fmt.Errorf("%w: %s", contract.ErrNotAnImage, fh.Filename)
	}
	return nil
}

func (s *DiskImageStore) save(fh *multipart.FileHeader) (string, error) {
	suffix, err := s.randomGen.GenerateRandomToken(8)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file for %s: %w", fh.Filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file for %s: %w", fh.Filename, err)
	}
	return name, nil
}
