package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassNamesDeduplicates(t *testing.T) {
	out := ClassNames("btn", "btn-primary", "text-center", "btn")

	classes := strings.Fields(out)
	assert.ElementsMatch(t, []string{"btn", "btn-primary", "text-center"}, classes)
}

func TestClassNamesSplitsGroupsAndDropsEmpty(t *testing.T) {
	out := ClassNames("card  shadow", "", ClassIf(false, "hidden"), ClassIf(true, "active"), "shadow")
	assert.Equal(t, "card shadow active", out)
}
