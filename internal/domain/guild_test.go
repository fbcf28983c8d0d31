package domain_test

import (
	"fmt"
	"testing"

	"github.com/shmeado/lantern/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestGuildExpToLevel(t *testing.T) {
	tests := []struct {
		exp   int64
		level string
	}{
		{0, "0.00"},
		{50000, "0.50"},
		{100000, "1.00"},
		{175000, "1.50"},
		{250000, "2.00"},
		{375000, "2.50"},
		{500000, "3.00"},
		{1000000, "4.00"},
		{1750000, "5.00"},
		{2750000, "6.00"},
		{4000000, "7.00"},
		{5500000, "8.00"},
		{7500000, "9.00"},
		{10000000, "10.00"},
		// Levels 11-14 cost 2,500,000 each
		{12500000, "11.00"},
		{20000000, "14.00"},
		// Beyond the table every level costs a flat 3,000,000
		{21500000, "14.50"},
		{23000000, "15.00"},
		{26000000, "16.00"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d exp", tt.exp), func(t *testing.T) {
			require.Equal(t, tt.level, domain.GuildExpToLevel(tt.exp))
		})
	}
}
