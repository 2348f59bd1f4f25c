package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusapi/internal/http-server/handlers/event/createEvent/mocks"
	"campusapi/internal/lib/eventid"
	"campusapi/internal/lib/logger/handlers/slogdiscard"
	"campusapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedIDs() *eventid.Generator {
	return eventid.NewWithClock(func() time.Time { return testTime })
}

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	wantID := "EVT-1735732800000"

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"title":"Meetup","date":"2025-01-01","location":"HQ","maxAttendees":10}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("Append", mock.Anything, models.NewEvent(wantID, "Meetup", "", "2025-01-01", "HQ", 10)).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"eventId":"EVT-1735732800000","title":"Meetup","description":"","date":"2025-01-01",` +
				`"location":"HQ","maxAttendees":10,"currentAttendees":0,"status":"upcoming"}`,
		},
		{
			name:        "Success with description and numeric string",
			requestBody: `{"title":"Talk","description":"Go generics","date":"tomorrow","location":"Room 1","maxAttendees":"25"}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("Append", mock.Anything, models.NewEvent(wantID, "Talk", "Go generics", "tomorrow", "Room 1", 25)).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"eventId":"EVT-1735732800000","title":"Talk","description":"Go generics","date":"tomorrow",` +
				`"location":"Room 1","maxAttendees":25,"currentAttendees":0,"status":"upcoming"}`,
		},
		{
			name:           "Only title",
			requestBody:    `{"title":"Meetup"}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"date":"2025-01-01","location":"HQ","maxAttendees":10}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Missing date",
			requestBody:    `{"title":"Meetup","location":"HQ","maxAttendees":10}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Missing location",
			requestBody:    `{"title":"Meetup","date":"2025-01-01","maxAttendees":10}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Missing maxAttendees",
			requestBody:    `{"title":"Meetup","date":"2025-01-01","location":"HQ"}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Zero maxAttendees counts as missing",
			requestBody:    `{"title":"Meetup","date":"2025-01-01","location":"HQ","maxAttendees":0}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Empty title",
			requestBody:    `{"title":"","date":"2025-01-01","location":"HQ","maxAttendees":10}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Missing field wins over bad maxAttendees",
			requestBody:    `{"title":"Meetup","date":"2025-01-01","maxAttendees":-1}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Negative maxAttendees",
			requestBody:    `{"title":"Meetup","date":"2025-01-01","location":"HQ","maxAttendees":-5}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"maxAttendees must be a positive integer"}`,
		},
		{
			name:           "Non-numeric maxAttendees",
			requestBody:    `{"title":"Meetup","date":"2025-01-01","location":"HQ","maxAttendees":"lots"}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"maxAttendees must be a positive integer"}`,
		},
		{
			name:           "Boolean maxAttendees is not coerced to 1",
			requestBody:    `{"title":"Meetup","date":"2025-01-01","location":"HQ","maxAttendees":true}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"maxAttendees must be a positive integer"}`,
		},
		{
			name:           "maxAttendees beyond float range",
			requestBody:    `{"title":"Meetup","date":"2025-01-01","location":"HQ","maxAttendees":1e400}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"maxAttendees must be a positive integer"}`,
		},
		{
			name:           "Empty body",
			requestBody:    ``,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid JSON body"}`,
		},
		{
			name:        "Storage error",
			requestBody: `{"title":"Meetup","date":"2025-01-01","location":"HQ","maxAttendees":10}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("Append", mock.Anything, mock.AnythingOfType("models.Event")).Return(errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator, fixedIDs())

			req, err := http.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestCreatedEventShape(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewEventCreator(t)
	mockCreator.On("Append", mock.Anything, mock.AnythingOfType("models.Event")).Return(nil)

	handler := New(logger, mockCreator, eventid.New())

	bodies := []string{
		`{"title":"A","date":"d","location":"l","maxAttendees":1}`,
		`{"title":"B","date":"d","location":"l","maxAttendees":2.5}`,
		`{"title":"C","date":"d","location":"l","maxAttendees":"7"}`,
	}

	seen := make(map[string]struct{})

	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var event models.Event
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &event))

		assert.Regexp(t, `^EVT-\d+$`, event.EventID)
		assert.Zero(t, event.CurrentAttendees)
		assert.Equal(t, models.EventStatusUpcoming, event.Status)
		assert.Positive(t, event.MaxAttendees)

		seen[event.EventID] = struct{}{}
	}

	assert.Len(t, seen, len(bodies))
	mockCreator.AssertNumberOfCalls(t, "Append", len(bodies))
}
