package services

import (
	"strings"

	"github.com/flowbro-app/flowbro/internal/models"
)

type PronounSet struct {
	Subject    string
	Object     string
	Possessive string
	Reflexive  string
}

func theyThemPronouns() PronounSet {
	return PronounSet{Subject: "they", Object: "them", Possessive: "their", Reflexive: "themselves"}
}

// ResolvePronouns maps the configured pronoun preset to a concrete set.
// Custom pronouns are a `/`-delimited subject/object/possessive/reflexive
// tuple; missing positions fall back to the they/them forms.
func ResolvePronouns(settings models.PartnerNotificationSettings) PronounSet {
	if settings.Pronouns == models.PronounsCustom && settings.CustomPronouns != "" {
		parts := strings.Split(settings.CustomPronouns, "/")
		set := theyThemPronouns()
		if len(parts) > 0 && parts[0] != "" {
			set.Subject = parts[0]
		}
		if len(parts) > 1 && parts[1] != "" {
			set.Object = parts[1]
		}
		if len(parts) > 2 && parts[2] != "" {
			set.Possessive = parts[2]
		}
		if len(parts) > 3 && parts[3] != "" {
			set.Reflexive = parts[3]
		}
		return set
	}

	switch settings.Pronouns {
	case models.PronounsSheHer:
		return PronounSet{Subject: "she", Object: "her", Possessive: "her", Reflexive: "herself"}
	case models.PronounsHeHim:
		return PronounSet{Subject: "he", Object: "him", Possessive: "his", Reflexive: "himself"}
	default:
		return theyThemPronouns()
	}
}
