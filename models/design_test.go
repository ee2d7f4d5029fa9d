package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagListRoundTrip(t *testing.T) {
	var d Design
	d.SetTags([]string{" Festival ", "Traditional", "", "  "})

	assert.Equal(t, "Festival,Traditional", d.Tags)
	assert.Equal(t, []string{"Festival", "Traditional"}, d.TagList())
}

func TestTagListEmpty(t *testing.T) {
	d := Design{Tags: ""}
	assert.Empty(t, d.TagList())

	d.SetTags(nil)
	assert.Equal(t, "", d.Tags)
}

func TestIsValidServiceType(t *testing.T) {
	for _, st := range ServiceTypes {
		assert.True(t, IsValidServiceType(string(st)))
	}
	assert.False(t, IsValidServiceType("Nail Art"))
	assert.False(t, IsValidServiceType(""))
}
