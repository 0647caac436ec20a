package assets

import "errors"

// Resolver combines custom and embedded loaders. When a custom loader is
// configured, each asset is looked up there first and falls back to the
// embedded copy only when it is not found.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver. An empty customBasePath uses embedded
// assets only; an invalid one is an error.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadPrompt loads a prompt, trying the custom loader first.
func (r *Resolver) LoadPrompt(name string) (string, error) {
	return withFallback(r, func(l Loader) (string, error) {
		return l.LoadPrompt(name)
	})
}

// LoadSample loads a sample report, trying the custom loader first.
func (r *Resolver) LoadSample(name string) (string, error) {
	return withFallback(r, func(l Loader) (string, error) {
		return l.LoadSample(name)
	})
}

// LoadCatalog loads the catalog, trying the custom loader first.
func (r *Resolver) LoadCatalog() (*Catalog, error) {
	return withFallback(r, func(l Loader) (*Catalog, error) {
		return l.LoadCatalog()
	})
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// withFallback implements the custom-first, fallback-to-embedded logic.
// Validation and I/O errors from the custom loader are returned as is.
func withFallback[T any](r *Resolver, load func(Loader) (T, error)) (T, error) {
	if r.custom == nil {
		return load(r.embedded)
	}

	v, err := load(r.custom)
	if err == nil || !isNotFoundError(err) {
		return v, err
	}

	return load(r.embedded)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrPromptNotFound) ||
		errors.Is(err, ErrSampleNotFound) ||
		errors.Is(err, ErrCatalogNotFound)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
