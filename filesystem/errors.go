package filesystem

import "errors"

// The three failure kinds the namespace tree can report. Every failing
// operation wraps one of these with the offending name, so callers should
// match with [errors.Is]. A failed operation never leaves a partial
// mutation behind.
var (
	// ErrNoSuchFileOrDirectory is returned when the named entry does not
	// exist in the working directory, or names an entry of the wrong kind
	// for the operation (entering a file, reading a directory).
	ErrNoSuchFileOrDirectory = errors.New("no such file or directory")

	// ErrAlreadyExists is returned when a create would collide with an
	// existing sibling of the same name, regardless of its kind.
	ErrAlreadyExists = errors.New("file or directory already exists")

	// ErrNotEmpty is returned when removal targets a directory whose
	// children sequence is non-empty.
	ErrNotEmpty = errors.New("directory not empty")
)
