package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorlab/apexhub/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", apperrors.NewValidationError("title is required"), http.StatusBadRequest, "title is required"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden, "permission denied"},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusUnauthorized, "account is disabled"},
		{"not found", apperrors.ErrPaperNotFound, http.StatusNotFound, "research paper not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrArticleNotFound), http.StatusNotFound, "news article not found"},
		{"conflict", apperrors.ErrAlreadyPublished, http.StatusConflict, "article is already published"},
		{"unknown", errors.New("pool exhausted"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}
