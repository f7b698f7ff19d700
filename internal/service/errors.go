package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrTodoNotFound   = fmt.Errorf("todo item %w", ErrNotFound)
	ErrPersonNotFound = fmt.Errorf("person %w", ErrNotFound)
)
