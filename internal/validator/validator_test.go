package validator

import (
	"testing"

	"talentsite_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsInvalidDTO(t *testing.T) {
	v := New()

	// Пустая форма нарушает все ограничения разом
	err := v.Validate(&dto.CategoryForm{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, vErr.Errors)
}

func TestValidateAcceptsValidDTO(t *testing.T) {
	v := New()

	err := v.Validate(&dto.CategoryForm{Title: "Runway", Gender: "female"})
	assert.NoError(t, err)

	err = v.Validate(&dto.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "longenough",
	})
	assert.NoError(t, err)
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "short",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "password")
}

func TestGenderRule(t *testing.T) {
	v := New()

	for _, gender := range []string{"male", "female", "other", "Female"} {
		form := &dto.TalentForm{Name: "Alex", Gender: gender}
		assert.NoError(t, v.Validate(form), gender)
	}

	err := v.Validate(&dto.TalentForm{Name: "Alex", Gender: "robot"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "Gender")
}

func TestOneofRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.PlanChangeRequest{Plan: "premium"}))

	err := v.Validate(&dto.PlanChangeRequest{Plan: "platinum"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "plan")
}
