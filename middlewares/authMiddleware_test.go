package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dhamodran16/SwadExpress/helper"

	"github.com/stretchr/testify/assert"
)

func TestAuthentication_PopulatesContext(t *testing.T) {
	token, err := helper.GenerateToken("uid-1", "customer@example.com")
	assert.NoError(t, err)

	var gotUid, gotEmail string
	handler := Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUid, gotEmail = GetUserFromContext(r)
	}))

	request := httptest.NewRequest(http.MethodGet, "/users/uid-1", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "uid-1", gotUid)
	assert.Equal(t, "customer@example.com", gotEmail)
}

func TestAuthentication_RejectsMissingHeader(t *testing.T) {
	handler := Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users/uid-1", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthorizedFor(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/cart/uid-1", nil)
	request = request.WithContext(context.WithValue(request.Context(), FirebaseUidKey, "uid-1"))

	assert.True(t, AuthorizedFor(request, "uid-1"))
	assert.False(t, AuthorizedFor(request, "uid-2"))

	// No authenticated identity, no access.
	anonymous := httptest.NewRequest(http.MethodGet, "/cart/uid-1", nil)
	assert.False(t, AuthorizedFor(anonymous, "uid-1"))
	assert.False(t, AuthorizedFor(anonymous, ""))
}
