package validators

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileTypeUnsupported = errors.New("unsupported file type")
	ErrNoFile              = errors.New("no file provided")
)

// ImageValidator checks an uploaded pet image and returns the open file
// together with its sniffed content type. The caller closes the file.
func ImageValidator(fh *multipart.FileHeader) (int, multipart.File, string, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, "", ErrNoFile
	}

	// Check headers first which is easy to spoof, but faster for legit clients
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return http.StatusBadRequest, nil, "", ErrFileTypeUnsupported
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, "", ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, "", err
	}

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, "", err
	}

	if !strings.HasPrefix(mt.String(), "image/") {
		f.Close()
		return http.StatusBadRequest, nil, "", ErrFileTypeUnsupported
	}

	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, "", err
	}

	return http.StatusOK, f, mt.String(), nil
}
