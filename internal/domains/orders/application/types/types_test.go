package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	require.Equal(t, SortByTotalQuantity, ParseSortKey("total_quantity"))
	require.Equal(t, SortByOrderCount, ParseSortKey("order_count"))
	require.Equal(t, SortByTotalSales, ParseSortKey("total_sales"))
	require.Equal(t, SortByTotalSales, ParseSortKey(""))
	require.Equal(t, SortByTotalSales, ParseSortKey("revenue"))
}
