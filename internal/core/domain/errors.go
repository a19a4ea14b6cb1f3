package domain

import "go.trai.ch/zerr"

var (
	// ErrIOFailure is returned when a file cannot be opened or read.
	ErrIOFailure = zerr.New("failed to read file")

	// ErrNotRegularFile is returned when a path names something other than a regular file.
	ErrNotRegularFile = zerr.New("not a regular file")

	// ErrRenameFailed is returned when a new name cannot be applied to a file.
	ErrRenameFailed = zerr.New("failed to rename file")

	// ErrNoExtensionAnchor is returned when a token has to be inserted into a name without an extension.
	ErrNoExtensionAnchor = zerr.New("file name has no extension to anchor the checksum token")

	// ErrRenameTargetExists is returned when the new name is already taken by a different file.
	ErrRenameTargetExists = zerr.New("rename target already exists")

	// ErrInvalidName is returned when a computed name is not a plain base name.
	ErrInvalidName = zerr.New("invalid file name")

	// ErrPipelinePanic is returned when a file's pipeline panics.
	ErrPipelinePanic = zerr.New("file pipeline panicked")

	// ErrBatchIncomplete is returned when at least one file of a batch failed.
	ErrBatchIncomplete = zerr.New("one or more files could not be processed")

	// ErrListFailed is returned when an input directory cannot be listed.
	ErrListFailed = zerr.New("failed to list directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidJobs is returned when a negative worker count is configured.
	ErrInvalidJobs = zerr.New("jobs must not be negative")
)
