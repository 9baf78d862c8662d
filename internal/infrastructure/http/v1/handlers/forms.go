package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockgate/internal/infrastructure/upstream"
)

// openedFile pairs a forwardable form file with its open handle so the
// handler can close it after the upstream call.
type openedFile struct {
	FormFile upstream.FormFile
	File     multipart.File
}

// formFile opens an optional uploaded file from the request form. field is
// the console form field, upstreamField the field name the backend expects.
// Returns nil without error when no file was attached.
func formFile(c *gin.Context, field, upstreamField string) (*openedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}

	return &openedFile{
		FormFile: upstream.FormFile{
			Field:    upstreamField,
			Name:     header.Filename,
			Contents: file,
		},
		File: file,
	}, nil
}
