package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSplitsThirteenItemsAcrossTwoPages(t *testing.T) {
	first := New(13, 1, DefaultPageSize)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 0, first.Offset())
	assert.Equal(t, 10, first.Limit())
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	second := New(13, 2, DefaultPageSize)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 10, second.Offset())
	// only 3 items remain; Limit stays at the window size, the query returns fewer
	assert.Equal(t, 10, second.Limit())
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrev)
}

func TestNewClampsOutOfRangePages(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		requested int
		wantPage  int
	}{
		{"below range", 25, 0, 1},
		{"negative", 25, -3, 1},
		{"above range", 25, 99, 3},
		{"exact last", 25, 3, 3},
		{"empty collection", 0, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.total, tt.requested, DefaultPageSize)
			assert.Equal(t, tt.wantPage, p.Number)
		})
	}
}

func TestNewEmptyCollection(t *testing.T) {
	p := New(0, 1, DefaultPageSize)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
	assert.Equal(t, 0, p.Offset())
}

func TestNewDefaultsSize(t *testing.T) {
	p := New(42, 1, 0)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Equal(t, 5, p.TotalPages)
}

func TestNewExactMultiple(t *testing.T) {
	p := New(20, 2, DefaultPageSize)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.Equal(t, 10, p.Offset())
}
