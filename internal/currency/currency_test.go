package currency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatConvertsAndGroups(t *testing.T) {
	require.Equal(t, "$1,234.50", Format(1234.5, "USD"))
	require.Equal(t, "KSh185,175.00", Format(1234.5, "KES"))
	require.Equal(t, "€1,049.32", Format(1234.49, "EUR"))
}

func TestFormatUnknownCurrencyFallsBackToUSD(t *testing.T) {
	require.Equal(t, "$10.00", Format(10, "XXX"))
}

func TestSupported(t *testing.T) {
	require.True(t, Supported("USD"))
	require.True(t, Supported("KES"))
	require.False(t, Supported("XXX"))
	require.False(t, Supported(""))
}

func TestFormatDateLayouts(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	cases := map[string]string{
		"MM/DD/YYYY": "03/09/2024",
		"DD/MM/YYYY": "09/03/2024",
		"YYYY-MM-DD": "2024-03-09",
		"DD-MM-YYYY": "09-03-2024",
		"MM-DD-YYYY": "03-09-2024",
		"unknown":    "03/09/2024",
	}
	for layout, want := range cases {
		require.Equal(t, want, FormatDate(date, layout), layout)
	}
}
