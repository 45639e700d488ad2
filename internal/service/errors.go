package service

import "errors"

// Sentinel errors controllers map onto HTTP status codes.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrResultNotFound   = errors.New("result not found")
)
