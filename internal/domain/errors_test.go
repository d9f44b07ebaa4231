package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("language", "unknown language KLINGON")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "language")
}

func TestInvalidModeError(t *testing.T) {
	t.Parallel()

	var err error = &InvalidModeError{Value: "credulous"}
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "credulous")
}

func TestMalformedWitnessError(t *testing.T) {
	t.Parallel()

	var err error = &MalformedWitnessError{Source: SourceMW, SenseRef: "1", Reason: "missing gloss_raw"}
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "MW/1")
	assert.Contains(t, err.Error(), "missing gloss_raw")
}

func TestDuplicateWitnessError(t *testing.T) {
	t.Parallel()

	var err error = &DuplicateWitnessError{Key: WitnessKey{Source: SourceLS, SenseRef: "I.A"}}
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "duplicate witness LS/I.A")
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrAlreadyExists, ErrValidation, ErrNoWitnesses, ErrRegistryUnavailable}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}
