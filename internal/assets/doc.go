// Package assets provides the prompt texts, sample reports and the request
// catalog used to build model requests.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in texts)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Resolver falls back per asset, so a custom directory may override only the
// system prompt and keep every other built-in text.
//
// # Directory Structure
//
//	{basePath}/
//	├── catalog.yaml             # niches, budgets, markets
//	├── prompts/
//	│   └── {name}.tmpl          # system, user, short, notice
//	└── samples/
//	    └── {name}.md            # example reports
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
