package calendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calgrid/infras/otel/mocks"
	calendarMocks "calgrid/internal/domains/calendar/mocks"
	"calgrid/internal/domains/calendar/model/dto"
	"calgrid/internal/handlers/calendar"
	"calgrid/shared/constant"
	"calgrid/shared/failure"
)

func newRouter(t *testing.T, salonID string) (*calendarMocks.MockCalendar, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := calendarMocks.NewMockCalendar(ctrl)
	handler := calendar.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeySalonID, salonID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-1")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	router.Route("/v1", handler.Router)

	return mockService, router
}

func TestHandler_GetBoard(t *testing.T) {
	tests := []struct {
		name       string
		salonID    string
		target     string
		setupMock  func(m *calendarMocks.MockCalendar)
		wantStatus int
	}{
		{
			name:    "renders the board",
			salonID: "salon-1",
			target:  "/v1/calendar/2025-03-10?scroll_left=40&area_left=10&width=800&week=true",
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().
					Board(gomock.Any(), dto.BoardRequest{
						Scope:    dto.Scope{SalonID: "salon-1", Date: "2025-03-10", Actor: "user-1"},
						Viewport: dto.Viewport{ScrollLeft: 40, AreaLeft: 10, Width: 800},
						Week:     true,
					}).
					Return(dto.BoardResponse{Date: "2025-03-10", Mode: "idle"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed date",
			salonID:    "salon-1",
			target:     "/v1/calendar/10-03-2025",
			setupMock:  func(*calendarMocks.MockCalendar) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative scroll",
			salonID:    "salon-1",
			target:     "/v1/calendar/2025-03-10?scroll_left=-5",
			setupMock:  func(*calendarMocks.MockCalendar) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing salon scope",
			target:     "/v1/calendar/2025-03-10",
			setupMock:  func(*calendarMocks.MockCalendar) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "service failure",
			salonID: "salon-1",
			target:  "/v1/calendar/2025-03-10",
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().Board(gomock.Any(), gomock.Any()).Return(dto.BoardResponse{}, failure.NotFound("salon not found"))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newRouter(t, tt.salonID)
			tt.setupMock(mockService)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestHandler_Gesture(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *calendarMocks.MockCalendar)
		wantStatus int
		wantBody   string
	}{
		{
			name: "commits a drop",
			body: `{"kind":"drag","event_id":"b1","press":{"x":100,"y":200},"moves":[{"x":120,"y":240}],"release":{"x":230,"y":280}}`,
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().
					Gesture(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.GestureRequest) (dto.GestureResponse, error) {
						assert.Equal(t, "salon-1", req.SalonID)
						assert.Equal(t, "2025-03-10", req.Date)
						assert.Equal(t, "user-1", req.Actor)
						assert.Len(t, req.Moves, 1)
						require.NotNil(t, req.Release)

						return dto.GestureResponse{Outcome: dto.OutcomeCommitted}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   dto.OutcomeCommitted,
		},
		{
			name:       "unknown kind",
			body:       `{"kind":"spin","event_id":"b1"}`,
			setupMock:  func(*calendarMocks.MockCalendar) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "salon in body is rejected",
			body:       `{"kind":"drag","event_id":"b1","salon_id":"other"}`,
			setupMock:  func(*calendarMocks.MockCalendar) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "slot taken",
			body: `{"kind":"resize","event_id":"b1","release":{"x":0,"y":80}}`,
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().Gesture(gomock.Any(), gomock.Any()).Return(dto.GestureResponse{}, failure.Conflict("taken"))
			},
			wantStatus: http.StatusConflict,
			wantBody:   "taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newRouter(t, "salon-1")
			tt.setupMock(mockService)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/calendar/2025-03-10/gestures", strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_Slots(t *testing.T) {
	mockService, router := newRouter(t, "salon-1")

	mockService.EXPECT().
		SlotClick(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.SlotClickRequest) (dto.SlotClickResponse, error) {
			assert.Equal(t, "m1", req.ResourceID)
			assert.Equal(t, 9, req.Hour)
			assert.Equal(t, 1, req.Half)

			return dto.SlotClickResponse{Handled: true, Menu: &dto.MenuResponse{Actions: []string{"booking"}}}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calendar/2025-03-10/slots/click",
		strings.NewReader(`{"resource_id":"m1","hour":9,"half":1,"pointer":{"x":10,"y":10}}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.SlotClickResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Handled)
	require.NotNil(t, body.Data.Menu)
	assert.Equal(t, []string{"booking"}, body.Data.Menu.Actions)

	mockService.EXPECT().
		SlotAction(gomock.Any(), gomock.Any()).
		Return(dto.IntentResponse{ID: "i1", Type: "slot-action", Action: "booking"}, nil)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calendar/2025-03-10/slots/action",
		strings.NewReader(`{"resource_id":"m1","hour":9,"half":0,"action":"booking"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/calendar/2025-03-10/slots/action",
		strings.NewReader(`{"resource_id":"m1","hour":9,"half":2,"action":"booking"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_EventAndNow(t *testing.T) {
	mockService, router := newRouter(t, "salon-1")

	mockService.EXPECT().
		Event(gomock.Any(), dto.EventRequest{
			Scope:   dto.Scope{SalonID: "salon-1", Date: "2025-03-10", Actor: "user-1"},
			EventID: "b1",
		}).
		Return(dto.EventResponse{ID: "b1"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/calendar/2025-03-10/events/b1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"b1"`)

	mockService.EXPECT().
		Now(gomock.Any(), gomock.Any()).
		Return(dto.NowResponse{Visible: true, Label: "11:30", Timezone: "Europe/Kyiv"}, nil)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/calendar/2025-03-10/now", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"11:30"`)
}
