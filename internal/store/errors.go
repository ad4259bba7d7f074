package store

import "errors"

// Sentinel errors returned by the document store and repositories.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when no document exists under the
	// requested collection and key.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentExists is returned by CreateIfAbsent when the key is taken.
	ErrDocumentExists = errors.New("document already exists")

	// ErrVersionConflict is returned when a compare-and-swap write finds a
	// different version than the one the caller read, meaning someone else
	// modified the document in between.
	ErrVersionConflict = errors.New("document version conflict")

	// ErrCandidateNotFound is returned when no candidate is registered under a CPF.
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrCandidateAlreadyExists is returned when registering a CPF that is taken.
	ErrCandidateAlreadyExists = errors.New("candidate already exists")

	// ErrResetTokenNotFound is returned when no token is stored under a digest.
	ErrResetTokenNotFound = errors.New("reset token not found")

	// ErrResetTokenAlreadyUsed is returned when marking a token used fails
	// because it was consumed before, possibly by a concurrent request.
	ErrResetTokenAlreadyUsed = errors.New("reset token already used")

	// ErrUnsupportedDriver is returned by NewStorages for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level errors. These are returned (or wrapped) when a SQL-level
// operation or a document (de)serialization fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan document rows")

	// ErrEncodingDocument is returned when a record cannot be marshaled.
	ErrEncodingDocument = errors.New("failed to encode document")

	// ErrDecodingDocument is returned when a stored body cannot be unmarshaled.
	ErrDecodingDocument = errors.New("failed to decode document")
)
