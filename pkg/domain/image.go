package domain

import (
	"strings"

	"registry/pkg/serrors"
)

// ImageID identifies a stored image row.
type ImageID int64

// Image points at a file in the file storage through a relative path. An image
// belongs to whichever entity references it; once nothing references it, the
// component that dropped the reference deletes both the row and the file.
type Image struct {
	ID   ImageID
	Link string
}

// NewImage builds an unsaved Image for link.
func NewImage(link string) (Image, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return Image{}, serrors.Invalid(serrors.ErrValidation, "link", "image link is required")
	}

	return Image{Link: link}, nil
}
