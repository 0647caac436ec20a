package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects prompt and sample names that are empty or carry
// a separator, a dot or a NUL byte. Loaders append the extension themselves.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidAssetName)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q is not a bare name", ErrInvalidAssetName, name)
	}
	return nil
}
