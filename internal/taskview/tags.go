package taskview

// ColorToken is a display color for a tag, as a hex string the client
// renders directly.
type ColorToken string

const (
	ColorPersonal ColorToken = "#FF7D7D"
	ColorApp      ColorToken = "#6C8EF5"
	ColorWork     ColorToken = "#F5A623"
	ColorCF       ColorToken = "#4FC3A1"
	ColorStudy    ColorToken = "#9B6CF5"
	ColorHome     ColorToken = "#F56CA9"

	// ColorDefault is the accent color for any label not in the table.
	ColorDefault ColorToken = "#7F5AF0"
)

// Tag pairs a tag label with its display color.
type Tag struct {
	Text  string     `json:"text"`
	Color ColorToken `json:"color"`
}

// tagColors maps well-known labels to their colors. Lookup is
// case-sensitive: "work" is not "Work".
var tagColors = map[string]ColorToken{
	"Personal": ColorPersonal,
	"App":      ColorApp,
	"Work":     ColorWork,
	"CF":       ColorCF,
	"Study":    ColorStudy,
	"Home":     ColorHome,
}

// FormatTag returns the display tag for a label. Unknown labels, including
// the empty string, get the default accent color.
func FormatTag(label string) Tag {
	if color, ok := tagColors[label]; ok {
		return Tag{Text: label, Color: color}
	}
	return Tag{Text: label, Color: ColorDefault}
}

// FormatTags maps labels element-wise through FormatTag, preserving order
// and duplicates.
func FormatTags(labels []string) []Tag {
	tags := make([]Tag, len(labels))
	for i, label := range labels {
		tags[i] = FormatTag(label)
	}
	return tags
}
