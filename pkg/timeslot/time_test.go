package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "standard", input: "09:30", want: 570},
		{name: "no leading zero", input: "9:30", want: 570},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "hours clamped", input: "25:00", want: 23 * 60},
		{name: "minutes clamped", input: "10:75", want: 10*60 + 59},
		{name: "empty", input: "", wantErr: true},
		{name: "missing minutes", input: "9:", wantErr: true},
		{name: "single digit minutes", input: "9:5", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "trailing text", input: "9:30am", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTime24(t *testing.T) {
	assert.Equal(t, "00:00", FormatTime24(0))
	assert.Equal(t, "09:05", FormatTime24(545))
	assert.Equal(t, "12:00", FormatTime24(720))
	assert.Equal(t, "23:59", FormatTime24(1439))
}

func TestFormatTime12(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatTime12(0))
	assert.Equal(t, "9:05 AM", FormatTime12(545))
	assert.Equal(t, "12:00 PM", FormatTime12(720))
	assert.Equal(t, "12:30 PM", FormatTime12(750))
	assert.Equal(t, "1:00 PM", FormatTime12(780))
	assert.Equal(t, "11:59 PM", FormatTime12(1439))
}

// Every minute of the day survives a format/parse round trip.
func TestParseFormatRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		got, err := ParseTime(FormatTime24(m))
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}
