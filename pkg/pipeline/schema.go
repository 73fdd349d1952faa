package pipeline

import (
	"fmt"
	"strings"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
)

// Schema describes the cell kind each column must hold. Missing cells are
// always accepted.
type Schema map[string]core.Kind

// Check returns an error naming every column with a cell of the wrong kind.
func (s Schema) Check(t *core.Table) error {
	var bad []string
	for _, name := range t.Columns {
		want, ok := s[name]
		if !ok {
			continue
		}
		for i := 0; i < t.Len(); i++ {
			c := t.Get(i, name)
			if c.IsMissing() || c.Kind() == want {
				continue
			}
			bad = append(bad, fmt.Sprintf("%s (row %d: %s)", name, i, c.Kind()))
			break
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("schema mismatch: %s", strings.Join(bad, "; "))
	}
	return nil
}
