package reduce

import (
	"github.com/okeanid/glossarion/internal/domain"
)

// sanitizeWitnesses filters the adapter-provided witness list down to the
// units that can participate in clustering, collecting a warning for each
// dropped unit. Degraded evidence is never fatal: a malformed or
// duplicate witness costs exactly itself.
//
// Drop rules, checked in order:
//   - missing source, sense_ref or gloss_raw (malformed);
//   - source not registered for the run's language (malformed);
//   - repeated (source, sense_ref): the first occurrence wins, the
//     second is dropped, never silently overwritten.
func sanitizeWitnesses(wsus []domain.WitnessSenseUnit, language domain.Language) ([]domain.WitnessSenseUnit, []string) {
	var warnings []string
	seen := make(map[domain.WitnessKey]bool, len(wsus))
	kept := make([]domain.WitnessSenseUnit, 0, len(wsus))

	for _, w := range wsus {
		if reason := malformedReason(w, language); reason != "" {
			err := &domain.MalformedWitnessError{Source: w.Source, SenseRef: w.SenseRef, Reason: reason}
			warnings = append(warnings, err.Error())
			continue
		}
		if seen[w.Key()] {
			err := &domain.DuplicateWitnessError{Key: w.Key()}
			warnings = append(warnings, err.Error())
			continue
		}
		seen[w.Key()] = true
		kept = append(kept, w)
	}

	return kept, warnings
}

func malformedReason(w domain.WitnessSenseUnit, language domain.Language) string {
	switch {
	case w.Source == "":
		return "missing source"
	case w.SenseRef == "":
		return "missing sense_ref"
	case w.GlossRaw == "":
		return "missing gloss_raw"
	}
	info, ok := domain.LookupSource(w.Source)
	switch {
	case !ok:
		return "unknown source"
	case info.Language != language:
		return "source serves " + info.Language.String() + ", not " + language.String()
	}
	return ""
}
