package layouterrors

import (
	"errors"
	"fmt"
)

var (
	// ErrRead indicates an error occurred while reading.
	ErrRead = errors.New("read")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = fmt.Errorf("file: %w", ErrRead)

	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrEncoding indicates file content was not valid UTF-8.
	ErrEncoding = errors.New("invalid encoding")

	// ErrRootNotFound indicates the directory to walk does not exist.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidMapping indicates a route mapping table failed validation.
	ErrInvalidMapping = errors.New("invalid route mapping")

	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrPatchFailed indicates one or more files could not be processed.
	ErrPatchFailed = errors.New("patch failed")

	// ErrYAMLMarshal indicates an error occurred while marshaling YAML.
	ErrYAMLMarshal = errors.New("marshal YAML")
)
