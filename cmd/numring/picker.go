package main

import (
	"errors"

	"github.com/ncruces/zenity"
)

// errPickCanceled is returned when the file dialog is dismissed.
var errPickCanceled = errors.New("numring: selection canceled")

// pickImage asks for the input image with a native file dialog.
func pickImage() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Load an image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.tif", "*.tiff", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", errPickCanceled
		}
		return "", err
	}
	return path, nil
}
