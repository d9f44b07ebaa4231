package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"open", "OPEN", "Open"} {
		mode, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, ModeOpen, mode)
	}
	for _, s := range []string{"skeptic", "SKEPTIC", "Skeptic"} {
		mode, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, ModeSkeptic, mode)
	}

	_, err := ParseMode("credulous")
	require.Error(t, err)
	var modeErr *InvalidModeError
	require.ErrorAs(t, err, &modeErr)
	assert.Equal(t, "credulous", modeErr.Value)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"latin", LanguageLatin, true},
		{"Greek", LanguageGreek, true},
		{"SANSKRIT", LanguageSanskrit, true},
		{"english", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestModeIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, ModeOpen.IsValid())
	assert.True(t, ModeSkeptic.IsValid())
	assert.False(t, Mode("").IsValid())
	assert.False(t, Mode("open").IsValid())
}

func TestConstantStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusProvisional.IsValid())
	assert.True(t, StatusCurated.IsValid())
	assert.False(t, ConstantStatus("RETIRED").IsValid())

	curated := &SemanticConstant{Status: StatusCurated}
	provisional := &SemanticConstant{Status: StatusProvisional}
	assert.True(t, curated.IsCurated())
	assert.False(t, provisional.IsCurated())
}
