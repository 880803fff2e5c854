package service

import (
	"errors"
	"fmt"
)

var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrInvalidRecipe    = errors.New("invalid recipe")
	ErrMealNotFound     = errors.New("meal not found")
	ErrInvalidLetter    = errors.New("letter must be a single ASCII letter")
	ErrImageTooLarge    = errors.New("image exceeds the maximum upload size")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// StorageError reports a failure of the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is or wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
