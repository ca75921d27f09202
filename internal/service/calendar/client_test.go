package calendar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&config.CalendarConfig{BaseURL: server.URL, APIKey: "k", CalendarID: "primary", Timeout: time.Second}, nil)
}

func TestCreateEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		var event Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		assert.Equal(t, "b1", event.Metadata["booking_id"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"evt_1"}`)
	})

	id, err := client.CreateEvent(context.Background(), Event{Title: "t", Metadata: map[string]string{"booking_id": "b1"}})
	require.NoError(t, err)
	assert.Equal(t, "evt_1", id)
}

func TestCreateEvent_ErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), Event{})
	assert.Error(t, err)
}

func TestDeleteEvent_NotFoundIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/primary/events/evt_1", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, client.DeleteEvent(context.Background(), "evt_1"))
}
