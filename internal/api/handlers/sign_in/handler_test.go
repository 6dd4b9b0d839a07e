package sign_in

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/service/auth"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
	"github.com/m04kA/LimpMe-BookingService/pkg/logger"
)

type fakeAuth struct {
	password string
}

func (a fakeAuth) SignIn(_ context.Context, email, password string) (*auth.SessionResponse, error) {
	if password != a.password {
		return nil, auth.ErrInvalidCredentials
	}
	return &auth.SessionResponse{
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
		Email:     email,
		Redirect:  domain.PathDashboard,
	}, nil
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/auth/sign-in", strings.NewReader(body)))
	return rec
}

func TestHandle_SetsSessionCookie(t *testing.T) {
	h := NewHandler(fakeAuth{password: "secret123"}, false, logger.NewNop())

	rec := post(h, `{"email":"ana@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, domain.PathDashboard, body["redirect"])
	assert.Equal(t, "ana@example.com", body["email"])
}

func TestHandle_InvalidCredentials(t *testing.T) {
	h := NewHandler(fakeAuth{password: "secret123"}, false, logger.NewNop())

	rec := post(h, `{"email":"ana@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Notification)
	assert.Equal(t, handlers.VariantDestructive, body.Notification.Variant)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(fakeAuth{}, false, logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, post(h, "").Code)
}
