package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrRunNotFound   = errors.New("run not found")
)

var (
	ErrEventExists = errors.New("event with this id already exists")
	ErrRunExists   = errors.New("run with this id already exists")
)

var (
	ErrContentNotFound = errors.New("no content found for type")
	ErrContent         = errors.New("failed to fetch content")
)

var (
	ErrValidation = errors.New("validation error")
)
