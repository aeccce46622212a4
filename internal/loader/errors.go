package loader

import (
	"fmt"
	"strings"
)

// DiscoveryError reports that the input directory did not contain exactly
// one candidate workbook.
type DiscoveryError struct {
	Dir     string
	Matches []string
}

func (e *DiscoveryError) Error() string {
	if len(e.Matches) == 0 {
		return fmt.Sprintf("no .xlsx workbook found in %s", e.Dir)
	}
	return fmt.Sprintf("found %d .xlsx workbooks in %s, expected exactly one: %s",
		len(e.Matches), e.Dir, strings.Join(e.Matches, ", "))
}

// SchemaError reports a workbook that exists but does not match the
// required table shape: missing sheet, missing columns, or malformed cells.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
