package weekdays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNameFor(t *testing.T) {
	// 2024-01-01 was a Monday.
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "monday", NameFor(monday))
	assert.Equal(t, "sunday", NameFor(monday.AddDate(0, 0, 6)))
}

func TestName(t *testing.T) {
	assert.Equal(t, "sunday", Name(0))
	assert.Equal(t, "saturday", Name(6))
	assert.Equal(t, "", Name(7))
	assert.Equal(t, "", Name(-1))
}

func TestCanonical(t *testing.T) {
	for _, input := range []string{"monday", "Monday", "MONDAY", " monday "} {
		got, ok := Canonical(input)
		assert.True(t, ok, input)
		assert.Equal(t, "monday", got)
	}

	_, ok := Canonical("someday")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 7)
	assert.Equal(t, "sunday", all[0])
	assert.Equal(t, "saturday", all[6])
}
