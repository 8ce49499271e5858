package tempnamed

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
)

// ErrNameRequired is returned when Options.Name is empty.
var ErrNameRequired = errors.New("name is required")

// InvalidDirError is returned when Options.Dir does not exist or is not a
// directory. Nothing has been created on disk when it is returned.
type InvalidDirError struct {
	// Dir is the rejected path.
	Dir string
	// Err is the stat failure, or nil when the path exists but is not a
	// directory.
	Err error
}

func (e *InvalidDirError) Error() string {
	return fmt.Sprintf("dir %q does not exist or is not a directory", e.Dir)
}

func (e *InvalidDirError) Unwrap() error { return e.Err }

// ErrorCode identifies the failure class for machine consumers.
func (e *InvalidDirError) ErrorCode() string { return "DIR_INVALID" }

// Context carries the rejected path.
func (e *InvalidDirError) Context() map[string]string {
	return map[string]string{"dir": e.Dir}
}

// SuggestedAction tells a caller how to recover.
func (e *InvalidDirError) SuggestedAction() string {
	return "create the directory first, or leave dir unset to use the name as given"
}

// RetryLimitError is returned when every candidate up to the attempt cap was
// already taken. Last holds the final collision error for diagnostics.
type RetryLimitError struct {
	// Base is the path the candidates were derived from.
	Base string
	// Attempts is the number of candidates tried.
	Attempts int
	// Last is the collision error from the final attempt.
	Last error
}

func (e *RetryLimitError) Error() string {
	return fmt.Sprintf("no free name for %q after %d attempts", e.Base, e.Attempts)
}

func (e *RetryLimitError) Unwrap() error { return e.Last }

// ErrorCode identifies the failure class for machine consumers.
func (e *RetryLimitError) ErrorCode() string { return "RETRY_LIMIT" }

// Context carries the base path and the attempt count.
func (e *RetryLimitError) Context() map[string]string {
	return map[string]string{
		"base":     e.Base,
		"attempts": strconv.Itoa(e.Attempts),
	}
}

// SuggestedAction tells a caller how to recover.
func (e *RetryLimitError) SuggestedAction() string {
	return "remove stale entries colliding with this name, or pick a different name"
}

// SlogAttrs surfaces the collision diagnostics as structured log attributes.
func (e *RetryLimitError) SlogAttrs() []any {
	return []any{"base", e.Base, "attempts", e.Attempts}
}

// PlatformError wraps an operating system failure other than a name
// collision: permission denied, missing parent, disk full, and the like. The
// candidate loop stops on the first one; it is never retried.
type PlatformError struct {
	// Path is the candidate being created when the failure happened.
	Path string
	// Err is the underlying failure.
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("create %s: %v", e.Path, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// ErrorCode identifies the failure class for machine consumers.
func (e *PlatformError) ErrorCode() string { return "OS_ERROR" }

// Context carries the failing candidate path.
func (e *PlatformError) Context() map[string]string {
	return map[string]string{"path": e.Path}
}

// SuggestedAction is empty; the underlying error is the guidance.
func (e *PlatformError) SuggestedAction() string { return "" }

// newPlatformError lifts an OS error, unwrapping a *fs.PathError for the same
// candidate so the message does not repeat the path.
func newPlatformError(path string, err error) *PlatformError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Path == path {
		return &PlatformError{Path: path, Err: pathErr.Err}
	}
	return &PlatformError{Path: path, Err: err}
}
