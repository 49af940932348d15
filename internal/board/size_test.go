package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want Size
	}{
		{"small", Small},
		{"medium", Medium},
		{"large", Large},
		{" Small ", Small},
		{"MEDIUM", Medium},
		{"", Large},
		{"huge", Large},
		{"4x4", Large},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSize(tt.in), "ParseSize(%q)", tt.in)
	}
}

func TestSize_Dimensions(t *testing.T) {
	w, h := Small.Dimensions()
	assert.Equal(t, [2]int{2, 2}, [2]int{w, h})

	w, h = Medium.Dimensions()
	assert.Equal(t, [2]int{4, 2}, [2]int{w, h})

	w, h = Large.Dimensions()
	assert.Equal(t, [2]int{4, 4}, [2]int{w, h})

	assert.Equal(t, 16, Size(42).TileCount())
}

func TestSize_Set(t *testing.T) {
	var s Size
	assert.NoError(t, s.Set("small"))
	assert.Equal(t, Small, s)
	assert.Equal(t, "small", s.String())

	assert.NoError(t, s.Set("bogus"))
	assert.Equal(t, Large, s)
	assert.Equal(t, "size", s.Type())
}
