package admin

import (
	"strings"

	"github.com/google/uuid"
)

// TempName returns a unique identifier with the given prefix, suitable for
// throwaway roles and databases in test sandboxes. The suffix is a random
// UUID with the dashes stripped so the result stays a plain identifier.
func TempName(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
