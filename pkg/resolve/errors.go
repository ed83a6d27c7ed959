package resolve

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required fields without a matching column.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: [%s]",
		strings.Join(e.Missing, ", "))
}
