package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects empty names and names that could address a file
// other than {kind}/{name}.{ext}.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
