package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesDetailedClone(t *testing.T) {
	// WithDetails возвращает клон, errors.Is должен узнавать его по коду
	err := ErrSlotNotFound.WithDetails("banner:99")
	assert.True(t, errors.Is(err, ErrSlotNotFound))

	err = ErrNoFileProvided.WithDetails("profile_img is required")
	assert.True(t, errors.Is(err, ErrNoFileProvided))
}

func TestIsDistinguishesCodes(t *testing.T) {
	assert.False(t, errors.Is(ErrSlotNotFound, ErrNoFileProvided))
	assert.False(t, errors.Is(ErrUserBlocked, ErrUserSuspended))
	assert.False(t, errors.Is(errors.New("plain"), ErrSlotNotFound))
}

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails(map[string]string{"name": "required"})
	assert.NotNil(t, detailed.Details)
	assert.Nil(t, ErrValidationFailed.Details)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("deadlock")
	err := PersistenceFailed(cause)

	require.Equal(t, CodePersistenceFailed, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, CodePersistenceFailed, appErr.Code)
}
