package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyByTitleKeyword(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Bridal Special", "Bridal Mehendi"},
		{"Festive Wristband", "Festive Mehendi"},
		{"Arabic Vine Work", "Arabic Style"},
		{"Traditional Motif", "Traditional Indian"},
		{"South Indian Peacock", "Traditional Indian"},
		{"Kids Fun", "Kids Mehendi"},
		{"Custom Initials", "Custom Designs"},
		{"Abstract", "General"},
		{"", "General"},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.title, ""))
		})
	}
}

func TestClassifyExplicitTypeWins(t *testing.T) {
	assert.Equal(t, "Arabic Style", Classify("Anything", "Arabic Style"))
	assert.Equal(t, "Arabic Style", Classify("Bridal Special", "Arabic Style"))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Bridal Mehendi", Classify("BRIDAL glam", ""))
	assert.Equal(t, "Kids Mehendi", Classify("kIdS party pack", ""))
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Titles can match several keywords; the earliest rule wins
	assert.Equal(t, "Bridal Mehendi", Classify("Bridal Festive Combo", ""))
	assert.Equal(t, "Festive Mehendi", Classify("Festive Arabic Fusion", ""))
	assert.Equal(t, "Traditional Indian", Classify("Indian Kids Set", ""))
}

func TestDeriveDay(t *testing.T) {
	day, err := DeriveDay("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "Monday", day)

	day, err = DeriveDay("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, "Saturday", day)
}

func TestDeriveDayRejectsBadInput(t *testing.T) {
	_, err := DeriveDay("10/03/2025")
	assert.Error(t, err)

	_, err = DeriveDay("")
	assert.Error(t, err)
}
