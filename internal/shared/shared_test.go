package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCodeFormat(t *testing.T) {
	code := NewCode("SALE")
	require.True(t, strings.HasPrefix(code, "SALE-"))
	require.Len(t, code, len("SALE-")+8)
	require.Equal(t, strings.ToUpper(code), code)

	require.NotEqual(t, NewCode("PO"), NewCode("PO"))
}

func TestFixedClock(t *testing.T) {
	require.Equal(t, "2025-07-20", FixedClock("2025-07-20").Today())
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(0, 0, 45)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 20, p.PerPage)
	require.Equal(t, 3, p.TotalPages)

	p = NewPagination(2, 10, 45)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 5, p.TotalPages)
}
