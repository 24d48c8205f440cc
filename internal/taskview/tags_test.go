package taskview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTag_KnownLabels(t *testing.T) {
	tests := []struct {
		label string
		color ColorToken
	}{
		{"Personal", ColorPersonal},
		{"App", ColorApp},
		{"Work", ColorWork},
		{"CF", ColorCF},
		{"Study", ColorStudy},
		{"Home", ColorHome},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			tag := FormatTag(tt.label)
			assert.Equal(t, tt.label, tag.Text)
			assert.Equal(t, tt.color, tag.Color)
		})
	}
}

func TestFormatTag_UnknownLabelGetsDefaultColor(t *testing.T) {
	assert.Equal(t, ColorDefault, FormatTag("Groceries").Color)
	assert.Equal(t, ColorDefault, FormatTag("").Color)
}

func TestFormatTag_LookupIsCaseSensitive(t *testing.T) {
	assert.Equal(t, ColorWork, FormatTag("Work").Color)
	assert.Equal(t, ColorDefault, FormatTag("work").Color)
}

func TestFormatTags_Deterministic(t *testing.T) {
	double := FormatTags([]string{"Work", "Work"})
	single := FormatTags([]string{"Work"})

	assert.Len(t, double, 2)
	assert.Equal(t, double[0].Color, double[1].Color)
	assert.Equal(t, single[0].Color, double[0].Color)
}

func TestFormatTags_PreservesOrderAndDuplicates(t *testing.T) {
	tags := FormatTags([]string{"Home", "Errands", "Home"})

	assert.Equal(t, "Home", tags[0].Text)
	assert.Equal(t, "Errands", tags[1].Text)
	assert.Equal(t, "Home", tags[2].Text)
}

func TestFormatTags_EmptyInput(t *testing.T) {
	assert.Empty(t, FormatTags(nil))
	assert.Empty(t, FormatTags([]string{}))
}
