package speaker

import (
	"strings"

	"tap/internal/caption"
	"tap/internal/textnorm"
)

// Cleanup strips the markers attribution relied on from the visible text:
// monologue brackets, icons, a leading "（name）" label, and a "name：" or
// "name≫" prefix. Events left empty are not removed here.
func Cleanup(doc *caption.Document) {
	for _, event := range doc.Events {
		event.Text = CleanText(event.Text)
	}
}

// CleanText applies the Cleanup rules to one line.
func CleanText(text string) string {
	text = textnorm.TrimSpace(StripLineMarkers(text))
	text = textnorm.TrimSpace(textnorm.StripIconSuffix(textnorm.StripIconPrefix(text)))
	if strings.HasPrefix(text, parenOpen) && strings.Contains(text, parenClose) {
		_, text, _ = strings.Cut(text, parenClose)
	} else if _, rest, ok := namePrefix(text, colonMark); ok {
		text = rest
	} else if _, rest, ok := namePrefix(text, voiceMark); ok {
		text = rest
	}
	text = textnorm.StripIconPrefix(textnorm.TrimSpace(text))
	text = textnorm.StripIconSuffix(textnorm.TrimSpace(text))
	return textnorm.TrimSpace(StripLineMarkers(text))
}
