package get_user_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/service/bookings/models"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
	"github.com/m04kA/LimpMe-BookingService/pkg/logger"
)

type fakeService struct {
	result *models.BookingListResponse
	err    error
}

func (s *fakeService) List(context.Context, string) (*models.BookingListResponse, error) {
	return s.result, s.err
}

func request(identity *domain.Identity) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
	if identity != nil {
		req = req.WithContext(session.WithIdentity(req.Context(), *identity))
	}
	return req
}

func TestHandle_ReturnsPartition(t *testing.T) {
	svc := &fakeService{result: &models.BookingListResponse{
		Upcoming:   []models.BookingResponse{{ID: "b1", BookingDate: "2026-10-20"}},
		Historical: []models.BookingResponse{{ID: "b2", BookingDate: "2026-10-01"}},
	}}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, request(&domain.Identity{UserID: "u1"}))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.BookingListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Upcoming, 1)
	require.Len(t, body.Historical, 1)
	assert.Equal(t, "b1", body.Upcoming[0].ID)
	assert.Equal(t, "b2", body.Historical[0].ID)
}

func TestHandle_Unauthenticated(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, logger.NewNop()).Handle(rec, request(nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, domain.PathAuth, body.Redirect)
}

func TestHandle_LoadFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	svc := &fakeService{err: errors.New("db down")}
	NewHandler(svc, logger.NewNop()).Handle(rec, request(&domain.Identity{UserID: "u1"}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Notification)
	assert.Equal(t, "Erro", body.Notification.Title)
	assert.Equal(t, "Não foi possível carregar seus agendamentos", body.Notification.Description)
}
