package validation

// fieldMessages maps form field name → validator tag → user-facing message.
// The "" key is the field's default when no tag-specific entry exists.
// Messages are French: they are rendered verbatim by the site.
//
// The honeypot message is deliberately the generic "Formulaire invalide" so
// a triggered honeypot is indistinguishable from an ordinary validation
// failure.
var fieldMessages = map[string]map[string]string{
	"name": {
		"": "Veuillez indiquer votre nom (min. 2 caractères)",
	},
	"email": {
		"": "Adresse email invalide",
	},
	"phone": {
		"max": "Numéro trop long",
		"":    "Numéro de téléphone requis (min. 8 caractères)",
	},
	"address": {
		"": "Adresse trop longue",
	},
	"postalCode": {
		"": "Code postal invalide",
	},
	"city": {
		"": "Ville trop longue",
	},
	"message": {
		"max": "Message trop long (max. 1000 caractères)",
		"":    "Votre message doit faire au moins 10 caractères",
	},
	"role": {
		"": "Veuillez indiquer votre poste",
	},
	"establishment": {
		"": "Veuillez indiquer le nom de l'établissement",
	},
	"type": {
		"": "Veuillez sélectionner le type d'établissement",
	},
	"_hp": {
		"": "Formulaire invalide",
	},
}

func messageFor(field, tag string) string {
	byTag, ok := fieldMessages[field]
	if !ok {
		return "Champ invalide"
	}
	if msg, ok := byTag[tag]; ok {
		return msg
	}
	return byTag[""]
}
