package contract

import (
	"errors"
	"mime/multipart"
)

// ErrNotAnImage is returned when an uploaded file is not an image.
var ErrNotAnImage = errors.New("only images are allowed")

// ErrImageTooLarge is returned when an uploaded file exceeds the size limit.
var ErrImageTooLarge = errors.New("image exceeds the size limit")

// IImageStore persists uploaded event images and returns their public
// reference paths.
type IImageStore interface {
	// SaveAll validates every file before persisting any of them, so a batch
	// with one bad file is rejected as a whole.
	SaveAll(files []*multipart.FileHeader) ([]string, error)
}
