package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidConfig indicates a filter or sort configuration the engine cannot apply
	ErrInvalidConfig = errors.New("invalid catalog configuration")

	// ErrInvalidRating indicates a user rating outside the rating scale
	ErrInvalidRating = errors.New("rating out of range")

	// ErrReadOnlyFlag indicates a flag derived from item data rather than user state
	ErrReadOnlyFlag = errors.New("flag is read-only")

	// ErrNotRatable indicates the entity type has no user rating
	ErrNotRatable = errors.New("items of this kind cannot be rated")

	// ErrItemNotFound indicates the requested item does not exist
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateID indicates two records in a dataset share an identity
	ErrDuplicateID = errors.New("duplicate item id")

	// ErrUnsupportedFormat indicates a dataset file type the loader cannot read
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrViewNotFound indicates no saved view exists under the given name
	ErrViewNotFound = errors.New("saved view not found")

	// ErrUnknownKind indicates a catalog kind other than movies or products
	ErrUnknownKind = errors.New("unknown catalog kind")
)
