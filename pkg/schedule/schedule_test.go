package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"midnight", "00:00", 0, false},
		{"morning", "08:30", 510, false},
		{"evening", "18:00", 1080, false},
		{"last minute", "23:59", 1439, false},
		{"seconds ignored", "18:30:45", 1110, false},
		{"missing colon", "1830", 0, true},
		{"hour out of range", "24:00", 0, true},
		{"minute out of range", "10:60", 0, true},
		{"garbage", "ab:cd", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name                   string
		is, ie, os, oe         string
		want                   bool
	}{
		{"slot contains itself", "18:00", "20:00", "18:00", "20:00", true},
		{"strictly inside", "18:30", "19:30", "18:00", "20:00", true},
		{"equal start, earlier end", "18:00", "19:00", "18:00", "20:00", true},
		{"later start, equal end", "19:00", "20:00", "18:00", "20:00", true},
		{"starts before outer", "17:30", "19:00", "18:00", "20:00", false},
		{"ends after outer", "18:30", "20:30", "18:00", "20:00", false},
		{"disjoint", "08:00", "09:00", "18:00", "20:00", false},
		{"asymmetric: outer not inside inner", "18:00", "20:00", "18:30", "19:30", false},
		{"bad inner time", "nope", "20:00", "18:00", "20:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.is, tt.ie, tt.os, tt.oe))
		})
	}
}

func TestDayOf(t *testing.T) {
	// 2024-06-10 was a Monday.
	assert.Equal(t, Monday, DayOf(time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, DayOf(time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Saturday, DayOf(time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)))
}

func TestIsValidWeekday(t *testing.T) {
	assert.True(t, IsValidWeekday("monday"))
	assert.True(t, IsValidWeekday("sunday"))
	assert.False(t, IsValidWeekday("Monday"))
	assert.False(t, IsValidWeekday("someday"))
}
