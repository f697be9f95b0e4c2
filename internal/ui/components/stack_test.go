package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHStackGap(t *testing.T) {
	out := HStack(NewText("a"), NewText("b"), NewText("c")).WithGap(1).View()
	assert.Equal(t, "a b c", out)
}

func TestVStackGap(t *testing.T) {
	out := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	assert.Equal(t, "a\n \nb", out)
}

func TestHStackSkipsEmptyChildren(t *testing.T) {
	out := HStack(NewText("a"), nil, NewText(""), NewText("b")).WithGap(1).View()
	assert.Equal(t, "a b", out)
}

func TestHStackMainAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align MainAxisAlignment
		want  string
	}{
		{"start", MainStart, "ab"},
		{"center", MainCenter, "  ab"},
		{"end", MainEnd, "    ab"},
		{"space between", MainSpaceBetween, "a    b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := HStack(NewText("a"), NewText("b")).WithWidth(6).WithMainAlign(tt.align).View()
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHStackSpaceBetweenSpreadsRemainder(t *testing.T) {
	out := HStack(NewText("a"), NewText("b"), NewText("c")).
		WithWidth(8).
		WithMainAlign(MainSpaceBetween).
		View()
	assert.Equal(t, "a   b  c", out)
}

func TestEmptyStackRendersEmpty(t *testing.T) {
	assert.Equal(t, "", NewStack().View())
}
