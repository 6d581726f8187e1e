package docgen

// Style is a paragraph style recognized by the target template. The wire
// values are the template's style IDs, which is what the model is told to
// emit.
type Style string

const (
	StyleTitle           Style = "Titulo_1"
	StyleJustified       Style = "Parrafo_Justificado"
	StyleNumberedClauses Style = "Lista_Numerada"
	StyleSignature       Style = "Estilo_Firma"
	StyleManualList      Style = "Lista_Manual"
)

// DefaultStyle is what any unrecognized style collapses to.
const DefaultStyle = StyleJustified

var knownStyles = map[Style]bool{
	StyleTitle:           true,
	StyleJustified:       true,
	StyleNumberedClauses: true,
	StyleSignature:       true,
	StyleManualList:      true,
}

// AllStyles lists the permitted style tokens in prompt order.
func AllStyles() []Style {
	return []Style{
		StyleTitle,
		StyleJustified,
		StyleNumberedClauses,
		StyleSignature,
		StyleManualList,
	}
}

// NormalizeStyle maps any value outside the closed set to DefaultStyle.
// The second return reports whether a repair happened.
func NormalizeStyle(s string) (Style, bool) {
	if knownStyles[Style(s)] {
		return Style(s), false
	}
	return DefaultStyle, true
}
