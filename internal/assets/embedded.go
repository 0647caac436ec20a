package assets

import (
	"embed"
	"fmt"
)

//go:embed prompts/*.tmpl
var prompts embed.FS

//go:embed samples/*.md
var samples embed.FS

//go:embed catalog.yaml
var catalogData []byte

// EmbeddedLoader loads the built-in assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadPrompt loads a prompt template from embedded assets by name.
func (e *EmbeddedLoader) LoadPrompt(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := prompts.ReadFile("prompts/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrPromptNotFound, name)
	}

	return string(content), nil
}

// LoadSample loads a sample report from embedded assets by name.
func (e *EmbeddedLoader) LoadSample(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := samples.ReadFile("samples/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSampleNotFound, name)
	}

	return string(content), nil
}

// LoadCatalog parses the embedded catalog.
func (e *EmbeddedLoader) LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogData)
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
