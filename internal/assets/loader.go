package assets

// Loader defines the contract for loading prompts, samples and the catalog.
type Loader interface {
	// LoadPrompt loads a prompt template by name (without .tmpl extension).
	// Returns ErrPromptNotFound if the prompt doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadPrompt(name string) (string, error)

	// LoadSample loads a sample report by name (without .md extension).
	// Returns ErrSampleNotFound if the sample doesn't exist.
	LoadSample(name string) (string, error)

	// LoadCatalog loads and parses catalog.yaml.
	// Returns ErrCatalogNotFound if the file doesn't exist.
	LoadCatalog() (*Catalog, error)
}
