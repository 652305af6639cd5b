package domain

// EstablishmentType is one entry of the fixed establishment catalog.
type EstablishmentType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EstablishmentTypes is the single source of truth for professional inquiry
// venues. The validator, the UI option endpoint and the email subject
// builder all read from this slice; never duplicate these literals.
var EstablishmentTypes = []EstablishmentType{
	{Value: "hotel", Label: "Hôtel"},
	{Value: "residence", Label: "Résidence de vacances"},
	{Value: "ehpad", Label: "EHPAD / Maison de retraite"},
	{Value: "other", Label: "Autre établissement"},
}

// IsEstablishmentType reports whether code is a known establishment type.
func IsEstablishmentType(code string) bool {
	for _, t := range EstablishmentTypes {
		if t.Value == code {
			return true
		}
	}
	return false
}

// EstablishmentLabel resolves the display label for a type code. Unknown
// codes fall back to the raw code; with enum validation upstream this branch
// should be unreachable.
func EstablishmentLabel(code string) string {
	for _, t := range EstablishmentTypes {
		if t.Value == code {
			return t.Label
		}
	}
	return code
}
