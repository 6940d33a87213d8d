package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf_AppError(t *testing.T) {
	status, msg := StatusOf(NotFound("User not found"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", msg)
}

func TestStatusOf_WrappedAppError(t *testing.T) {
	err := fmt.Errorf("signin: %w", Unauthorized("Invalid credentials"))
	status, msg := StatusOf(err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", msg)
}

func TestStatusOf_UnclassifiedError(t *testing.T) {
	status, msg := StatusOf(errors.New("connection refused: 10.0.0.3:27017"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", msg)
}
