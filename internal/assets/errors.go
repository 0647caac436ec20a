package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrPromptNotFound indicates the requested prompt does not exist.
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrSampleNotFound indicates the requested sample report does not exist.
	ErrSampleNotFound = errors.New("sample not found")

	// ErrCatalogNotFound indicates no catalog.yaml exists in the location.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrCatalogParse indicates catalog.yaml is malformed.
	ErrCatalogParse = errors.New("invalid catalog")

	// ErrIncompletePromptSet indicates a required prompt is missing.
	ErrIncompletePromptSet = errors.New("prompt set missing required prompt")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
