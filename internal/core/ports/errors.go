package ports

import "errors"

// Hard failures. Adapters wrap the underlying cause together with one of these
// so callers can match the category with errors.Is.
var (
	// ErrIO indicates the registry artifact could not be read or written.
	ErrIO = errors.New("registry i/o failure")

	// ErrSerialization indicates the registry could not be encoded.
	ErrSerialization = errors.New("registry serialization failure")

	// ErrDeserialization indicates the registry artifact exists but is malformed.
	ErrDeserialization = errors.New("registry deserialization failure")

	// ErrSpawn indicates a child process (shell or selection tool) could not be started.
	ErrSpawn = errors.New("process spawn failure")
)
