package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoDrawings is returned when a review run is started with no files
	ErrNoDrawings = errors.New("no drawing files provided")

	// ErrUnreadablePDF is returned when a file cannot be opened as a PDF
	ErrUnreadablePDF = errors.New("unreadable PDF file")

	// ErrNoTextContent is returned when a PDF yields no extractable text
	ErrNoTextContent = errors.New("no extractable text content")

	// ErrPageRange is returned when a page range lies outside the document
	ErrPageRange = errors.New("page range outside document")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
