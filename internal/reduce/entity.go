package reduce

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/okeanid/glossarion/internal/domain"
)

// detectEntity classifies a gloss into one of the coarse entity types by
// fixed rules, checked in priority order: lexical markers first, then
// known name lists against capitalized tokens. Rules only ever look at
// the gloss text itself, so detection is deterministic.
//
// The rules are deliberately conservative: a missed tag costs one unused
// similarity signal, a wrong tag actively pushes witnesses apart.
func detectEntity(glossRaw string, language domain.Language) domain.EntityTag {
	lower := strings.ToLower(norm.NFC.String(glossRaw))

	for _, marker := range deityMarkers {
		if strings.Contains(lower, marker) {
			return domain.EntityPersonOrDeity
		}
	}
	for _, marker := range placeMarkers {
		if strings.Contains(lower, marker) {
			return domain.EntityPlace
		}
	}

	// Name lists match only capitalized tokens so that common nouns
	// sharing a spelling with a name do not trip the rule.
	for _, tok := range tokenize(norm.NFC.String(glossRaw)) {
		if !startsUpper(tok) {
			continue
		}
		folded := FoldASCII(strings.ToLower(tok))
		if deityNames[language][folded] {
			return domain.EntityPersonOrDeity
		}
		if placeNames[language][folded] {
			return domain.EntityPlace
		}
	}

	for _, marker := range abstractMarkers {
		if strings.Contains(lower, marker) {
			return domain.EntityAbstract
		}
	}
	for _, marker := range objectMarkers {
		if strings.Contains(lower, marker) {
			return domain.EntityObject
		}
	}

	return domain.EntityNone
}

func startsUpper(tok string) bool {
	for _, r := range tok {
		return unicode.IsUpper(r)
	}
	return false
}

var deityMarkers = []string{
	"god of", "goddess", "the deity", "a deity", "name of a god",
	"epithet of", "divine personification",
}

var placeMarkers = []string{
	"place where", "name of a place", "name of a city", "name of a river",
	"name of a mountain", "a country", "a region", "a district",
}

var abstractMarkers = []string{
	"act of", "state of", "quality of", "condition of", "the state",
	"abstract",
}

var objectMarkers = []string{
	"an instrument", "a tool", "a vessel", "a weapon", "a garment",
	"a utensil",
}

// deityNames and placeNames hold diacritic-folded, lowercased proper
// names recognized per language. The lists cover the high-frequency
// names of each pantheon; they are lookup data, not an ontology.
var deityNames = map[domain.Language]map[string]bool{
	domain.LanguageSanskrit: nameSet(
		"siva", "shiva", "visnu", "vishnu", "indra", "agni", "brahma",
		"krsna", "krishna", "rama", "laksmi", "lakshmi", "durga", "kali",
		"ganesa", "ganesha", "varuna", "soma", "yama", "surya",
	),
	domain.LanguageLatin: nameSet(
		"iuppiter", "jupiter", "iovis", "juno", "mars", "venus",
		"minerva", "neptunus", "neptune", "mercurius", "mercury",
		"apollo", "diana", "ceres", "bacchus", "vulcanus", "vesta",
		"saturnus", "pluto",
	),
	domain.LanguageGreek: nameSet(
		"zeus", "hera", "athena", "athene", "apollo", "apollon",
		"artemis", "ares", "aphrodite", "hermes", "poseidon", "hades",
		"demeter", "dionysus", "dionysos", "hephaestus", "hestia",
	),
}

var placeNames = map[domain.Language]map[string]bool{
	domain.LanguageSanskrit: nameSet(
		"ganga", "ganges", "himalaya", "meru", "kasi", "ayodhya",
		"mathura", "kuruksetra",
	),
	domain.LanguageLatin: nameSet(
		"roma", "rome", "tiberis", "tiber", "latium", "gallia", "italia",
		"carthago", "athenae",
	),
	domain.LanguageGreek: nameSet(
		"athens", "athenai", "sparta", "olympus", "olympos", "delphi",
		"troy", "troia", "ilion", "thebes",
	),
}

func nameSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
