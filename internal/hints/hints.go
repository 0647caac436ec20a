// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-ideagen/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForMissingAPIKey returns hints for a missing model API key.
// Detects CI/Docker environments, where the key usually has to be passed in.
func ForMissingAPIKey() string {
	hints := []string{"export CEREBRAS_API_KEY (or IDEAGEN_API_KEY)"}

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	switch {
	case IsInContainer():
		hints = append(hints, "pass it to the container with -e CEREBRAS_API_KEY")
	case inCI:
		hints = append(hints, "store it as a CI secret")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the generation timeout.
func ForTimeout() string {
	return format("long reports take time, use --timeout or IDEAGEN_TIMEOUT")
}

// ForRateLimit returns a hint for HTTP 429 responses.
func ForRateLimit() string {
	return format("the model API is rate limiting; wait and retry or raise llm.maxRetries")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-ideagen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-ideagen) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-ideagen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownOption lists the catalog keys of a kind. Free text is still
// accepted, so this only helps with typos.
func ForUnknownOption(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("catalog keys: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
