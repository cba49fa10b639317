package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCRUD(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "events@example.com")

	// Create with a category.
	w := doJSON(t, server, http.MethodPost, "/api/categories", cookie, map[string]any{
		"name":  "School",
		"color": "#336699",
	})
	require.Equal(t, http.StatusOK, w.Code)
	categoryID := decodeMap(t, w)["id"].(string)

	w = doJSON(t, server, http.MethodPost, "/api/events", cookie, map[string]any{
		"title":       "Physics lecture",
		"startTime":   "2026-09-01T09:00:00Z",
		"endTime":     "2026-09-01T10:30:00Z",
		"categoryId":  categoryID,
		"location":    "Room 204",
		"description": "Mechanics intro",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decodeMap(t, w)
	assert.Equal(t, "Physics lecture", created["title"])
	assert.Equal(t, "2026-09-01T09:00:00Z", created["startTime"])
	assert.Equal(t, "2026-09-01T10:30:00Z", created["endTime"])
	assert.Equal(t, categoryID, created["categoryId"])
	assert.Equal(t, "Room 204", created["location"])
	assert.Equal(t, []any{}, created["assignmentIds"])

	id := created["id"].(string)

	// List is ordered and identical through the /lessons alias.
	events := doJSON(t, server, http.MethodGet, "/api/events", cookie, nil)
	lessons := doJSON(t, server, http.MethodGet, "/api/lessons", cookie, nil)
	require.Equal(t, http.StatusOK, events.Code)
	require.Equal(t, http.StatusOK, lessons.Code)
	assert.Equal(t, events.Body.String(), lessons.Body.String())
	require.Len(t, decodeList(t, events), 1)

	// Replace.
	w = doJSON(t, server, http.MethodPut, "/api/events/"+id, cookie, map[string]any{
		"title":     "Physics lecture (moved)",
		"startTime": "2026-09-02T09:00:00Z",
		"endTime":   "2026-09-02T10:30:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeMap(t, w)
	assert.Equal(t, "Physics lecture (moved)", updated["title"])
	// Fields omitted from a full replace are cleared, not kept.
	assert.Equal(t, "", updated["categoryId"])
	assert.Equal(t, "", updated["location"])

	// Delete.
	w = doJSON(t, server, http.MethodDelete, "/api/events/"+id, cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeMap(t, w)["success"])
}

func TestCreateEvent_AcceptsLocalTimes(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "event-times@example.com")

	// datetime-local input format, no zone or seconds.
	w := doJSON(t, server, http.MethodPost, "/api/events", cookie, map[string]any{
		"title":     "Study group",
		"startTime": "2026-09-01T14:00",
		"endTime":   "2026-09-01T16:00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decodeMap(t, w)
	assert.Equal(t, "2026-09-01T14:00:00Z", created["startTime"])
	assert.Equal(t, "2026-09-01T16:00:00Z", created["endTime"])
}

func TestCreateEvent_InvertedRangeAllowed(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "event-range@example.com")

	// End before start passes through untouched.
	w := doJSON(t, server, http.MethodPost, "/api/events", cookie, map[string]any{
		"title":     "Backwards",
		"startTime": "2026-09-01T10:00:00Z",
		"endTime":   "2026-09-01T09:00:00Z",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestEvent_Errors(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "event-errors@example.com")

	// Missing times.
	w := doJSON(t, server, http.MethodPost, "/api/events", cookie, map[string]any{
		"title": "No times",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unparseable time.
	w = doJSON(t, server, http.MethodPost, "/api/events", cookie, map[string]any{
		"title":     "Bad time",
		"startTime": "next tuesday",
		"endTime":   "2026-09-01T10:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown id.
	w = doJSON(t, server, http.MethodPut, "/api/events/9999", cookie, map[string]any{
		"title":     "Ghost",
		"startTime": "2026-09-01T09:00:00Z",
		"endTime":   "2026-09-01T10:00:00Z",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, server, http.MethodDelete, "/api/events/9999", cookie, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEvent_ListsLinkedAssignments(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "event-links@example.com")

	w := doJSON(t, server, http.MethodPost, "/api/events", cookie, map[string]any{
		"title":     "Chemistry",
		"startTime": "2026-09-01T09:00:00Z",
		"endTime":   "2026-09-01T10:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)
	eventID := decodeMap(t, w)["id"].(string)

	w = doJSON(t, server, http.MethodPost, "/api/assignments", cookie, map[string]any{
		"title":   "Lab report",
		"eventId": eventID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assignmentID := decodeMap(t, w)["id"].(string)

	w = doJSON(t, server, http.MethodGet, "/api/events", cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, []any{assignmentID}, list[0]["assignmentIds"])
}
