package shared

import (
	"strings"

	"github.com/google/uuid"
)

// NewCode generates a document code like SALE-1A2B3C4D. The prefix identifies
// the document family; the suffix is the first uuid segment, which is short
// enough for invoices and unique enough for a single-tenant dataset.
func NewCode(prefix string) string {
	id := uuid.NewString()
	return prefix + "-" + strings.ToUpper(id[:8])
}
