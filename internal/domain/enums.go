package domain

// Language identifies the classical language a reduction run operates on.
type Language string

const (
	LanguageLatin    Language = "LATIN"
	LanguageGreek    Language = "GREEK"
	LanguageSanskrit Language = "SANSKRIT"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageLatin, LanguageGreek, LanguageSanskrit:
		return true
	}
	return false
}

// ParseLanguage converts a user-supplied language string ("latin", "greek",
// "sanskrit", case-insensitive on the common forms) into a Language.
func ParseLanguage(s string) (Language, bool) {
	switch s {
	case "latin", "LATIN", "Latin":
		return LanguageLatin, true
	case "greek", "GREEK", "Greek":
		return LanguageGreek, true
	case "sanskrit", "SANSKRIT", "Sanskrit":
		return LanguageSanskrit, true
	}
	return "", false
}

// Mode controls how aggressively witness sense units are merged into buckets.
type Mode string

const (
	// ModeOpen favors consolidation: token overlap dominates and the
	// clustering threshold is lenient.
	ModeOpen Mode = "OPEN"
	// ModeSkeptic favors evidence-first splitting: metadata, entity and
	// primary-source agreement weigh more, the threshold is strict, and
	// negation is penalized harder.
	ModeSkeptic Mode = "SKEPTIC"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeOpen, ModeSkeptic:
		return true
	}
	return false
}

// ParseMode converts a user-supplied mode string into a Mode.
// Returns an InvalidModeError for anything unrecognized.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "open", "OPEN", "Open":
		return ModeOpen, nil
	case "skeptic", "SKEPTIC", "Skeptic":
		return ModeSkeptic, nil
	}
	return "", &InvalidModeError{Value: s}
}

// EntityTag is the rule-detected entity type of a gloss.
type EntityTag string

const (
	EntityPersonOrDeity EntityTag = "PERSON_OR_DEITY"
	EntityPlace         EntityTag = "PLACE"
	EntityAbstract      EntityTag = "ABSTRACT"
	EntityObject        EntityTag = "OBJECT"
	// EntityNone means no detection rule matched. It never contributes to
	// similarity, positively or negatively.
	EntityNone EntityTag = ""
)

func (t EntityTag) String() string { return string(t) }

func (t EntityTag) IsValid() bool {
	switch t {
	case EntityPersonOrDeity, EntityPlace, EntityAbstract, EntityObject, EntityNone:
		return true
	}
	return false
}

// ConstantStatus is the lifecycle state of a semantic constant.
// The only legal transition is PROVISIONAL -> CURATED, performed by an
// out-of-band curation step. It is never reversed automatically.
type ConstantStatus string

const (
	StatusProvisional ConstantStatus = "PROVISIONAL"
	StatusCurated     ConstantStatus = "CURATED"
)

func (s ConstantStatus) String() string { return string(s) }

func (s ConstantStatus) IsValid() bool {
	switch s {
	case StatusProvisional, StatusCurated:
		return true
	}
	return false
}

// SourceKind distinguishes full lexica from morphology/analysis tools.
type SourceKind string

const (
	SourceKindLexicon    SourceKind = "LEXICON"
	SourceKindMorphology SourceKind = "MORPHOLOGY"
)

func (k SourceKind) String() string { return string(k) }
