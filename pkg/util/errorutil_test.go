package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassesThroughWrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("load member: %w", NewNotFound("Member", nil))

	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, "Member not found", de.Message)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestToDomainError_MapsFiberError(t *testing.T) {
	de := ToDomainError(fiber.ErrMethodNotAllowed)
	require.NotNil(t, de)
	assert.Equal(t, http.StatusMethodNotAllowed, de.HTTPStatus)
	assert.Equal(t, "METHOD_NOT_ALLOWED", de.Code)
}

func TestToDomainError_UnknownErrorIsInternal(t *testing.T) {
	cause := errors.New("boom")
	de := ToDomainError(cause)
	require.NotNil(t, de)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "internal server error", de.Message)
	assert.ErrorIs(t, de, cause)
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
