package responsive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetWidthClass(t *testing.T) {
	tests := []struct {
		width int
		want  WidthClass
	}{
		{40, Narrow},
		{79, Narrow},
		{80, Medium},
		{119, Medium},
		{120, Wide},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetWidthClass(tt.width), "width %d", tt.width)
	}
	assert.Equal(t, "medium", Medium.String())
}

func TestSplitPane(t *testing.T) {
	split, w := SplitPane(60)
	assert.False(t, split)
	assert.Equal(t, 60, w)

	split, w = SplitPane(100)
	assert.True(t, split)
	assert.Equal(t, 40, w)

	split, w = SplitPane(150)
	assert.True(t, split)
	assert.Equal(t, 50, w)
}
