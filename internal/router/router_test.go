package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-rooms/internal/router"
)

type animalBody struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	RoomID          *string  `json:"room_id"`
	Located         *string  `json:"located"`
	FavoriteRoomIDs []string `json:"favorite_room_ids"`
}

func TestHTTP_EndToEnd_PlacementPagingAndFavorites(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Rooms y animales
	green := createRoom(t, ts.URL, "Green")
	blue := createRoom(t, ts.URL, "Blue")

	cat := createAnimal(t, ts.URL, "cat")
	ant := createAnimal(t, ts.URL, "Ant")
	bear := createAnimal(t, ts.URL, "Bear")

	// 2) Ubicar con fecha explícita
	for _, id := range []string{cat, ant, bear} {
		st, body := doReq(t, ts.URL, "POST", "/api/animals/"+id+"/place?roomId="+green+"&located=2024-03-01", nil)
		require.Equal(t, http.StatusOK, st, string(body))
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/animals/"+cat, nil)
		require.Equal(t, http.StatusOK, st)
		a := decode[animalBody](t, body)
		require.NotNil(t, a.RoomID)
		assert.Equal(t, green, *a.RoomID)
		require.NotNil(t, a.Located)
		assert.Equal(t, "2024-03-01", *a.Located)
		assert.Equal(t, []string{}, a.FavoriteRoomIDs)
	}

	// 3) Paginado por título, sin distinguir mayúsculas
	assert.Equal(t, []string{"Ant", "Bear"}, titlesInRoom(t, ts.URL, green, "sortBy=title&order=asc&page=0&size=2"))
	assert.Equal(t, []string{"cat"}, titlesInRoom(t, ts.URL, green, "sortBy=title&order=asc&page=1&size=2"))
	assert.Equal(t, []string{"cat", "Bear", "Ant"}, titlesInRoom(t, ts.URL, green, "order=desc"))
	assert.Empty(t, titlesInRoom(t, ts.URL, green, "page=5&size=2"))
	assert.Empty(t, titlesInRoom(t, ts.URL, green, "size=0"))
	assert.Empty(t, titlesInRoom(t, ts.URL, green, "page=-1"))

	// 4) Mover y sacar
	{
		st, body := doReq(t, ts.URL, "POST", "/api/animals/"+bear+"/move?roomId="+blue, nil)
		require.Equal(t, http.StatusOK, st, string(body))
		a := decode[animalBody](t, body)
		assert.Equal(t, blue, *a.RoomID)
		assert.NotNil(t, a.Located, "located defaults to today")

		st, body = doReq(t, ts.URL, "DELETE", "/api/animals/"+ant+"/remove", nil)
		require.Equal(t, http.StatusOK, st, string(body))
		a = decode[animalBody](t, body)
		assert.Nil(t, a.RoomID)
		assert.Nil(t, a.Located)
	}
	assert.Equal(t, []string{"cat"}, titlesInRoom(t, ts.URL, green, ""))
	assert.Equal(t, []string{"Bear"}, titlesInRoom(t, ts.URL, blue, ""))

	// 5) Favoritos y agregación
	assign(t, ts.URL, cat, green)
	assign(t, ts.URL, cat, blue)
	assign(t, ts.URL, ant, blue)
	assign(t, ts.URL, ant, blue) // idempotente
	assert.Equal(t, map[string]int64{"Green": 1, "Blue": 2}, aggregation(t, ts.URL))

	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/animals/"+ant+"/favorites/unassign?roomId="+blue, nil)
		require.Equal(t, http.StatusOK, st, string(body))
	}
	assert.Equal(t, map[string]int64{"Green": 1, "Blue": 1}, aggregation(t, ts.URL))

	// 6) Renombrar y borrar rooms se refleja en la agregación
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/rooms/"+blue, map[string]any{"title": "Navy"})
		require.Equal(t, http.StatusOK, st, string(body))
	}
	assert.Equal(t, map[string]int64{"Green": 1, "Navy": 1}, aggregation(t, ts.URL))

	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/rooms/"+green, nil)
		require.Equal(t, http.StatusNoContent, st)
	}
	assert.Equal(t, map[string]int64{"Navy": 1}, aggregation(t, ts.URL))

	// 7) Búsqueda por título exacto
	{
		st, body := doReq(t, ts.URL, "GET", "/api/animals?title=cat", nil)
		require.Equal(t, http.StatusOK, st)
		found := decode[[]animalBody](t, body)
		require.Len(t, found, 1)
		assert.Equal(t, cat, found[0].ID)
	}

	// 8) Métricas de cache expuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		require.Equal(t, http.StatusOK, st)
		assert.Contains(t, string(body), "zoo_cache_hits_total")
		assert.Contains(t, string(body), "zoo_favorites_aggregation_duration_seconds")
	}
}

func TestHTTP_UnknownAnimal(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	room := createRoom(t, ts.URL, "Green")

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/animals/nope"},
		{"POST", "/api/animals/nope/place?roomId=" + room},
		{"POST", "/api/animals/nope/move?roomId=" + room},
		{"DELETE", "/api/animals/nope/remove"},
		{"POST", "/api/animals/nope/favorites/assign?roomId=" + room},
		{"DELETE", "/api/animals/nope/favorites/unassign?roomId=" + room},
	} {
		st, body := doReq(t, ts.URL, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusNotFound, st, "%s %s", tc.method, tc.path)
		assert.Equal(t, "animal not found", strings.TrimSpace(string(body)))
	}
}

func TestHTTP_BadInput(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	id := createAnimal(t, ts.URL, "Milo")

	cases := []struct{ method, path string }{
		{"POST", "/api/animals/" + id + "/place"},
		{"POST", "/api/animals/" + id + "/place?roomId=r1&located=01-03-2024"},
		{"POST", "/api/animals/" + id + "/favorites/assign"},
		{"GET", "/api/animals/in-room/r1?page=abc"},
		{"GET", "/api/animals"},
	}
	for _, tc := range cases {
		st, _ := doReq(t, ts.URL, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusBadRequest, st, "%s %s", tc.method, tc.path)
	}

	st, _ := doReq(t, ts.URL, "POST", "/api/rooms", map[string]any{"title": "  "})
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_HealthAndRequestID(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func createRoom(t *testing.T, baseURL, title string) string {
	t.Helper()
	return createEntity(t, baseURL, "/api/rooms", title)
}

func createAnimal(t *testing.T, baseURL, title string) string {
	t.Helper()
	return createEntity(t, baseURL, "/api/animals", title)
}

func createEntity(t *testing.T, baseURL, path, title string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, map[string]any{"title": title})
	require.Equal(t, http.StatusCreated, st, "create %s body=%s", path, string(body))

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.ID, "create %s: missing id", path)
	return resp.ID
}

func assign(t *testing.T, baseURL, animalID, roomID string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/animals/"+animalID+"/favorites/assign?roomId="+roomID, nil)
	require.Equal(t, http.StatusOK, st, string(body))
}

func titlesInRoom(t *testing.T, baseURL, roomID, query string) []string {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/api/animals/in-room/"+roomID+"?"+query, nil)
	require.Equal(t, http.StatusOK, st, string(body))

	items := decode[[]animalBody](t, body)
	require.NotNil(t, items, "empty pages are [] not null")
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Title)
	}
	return out
}

func aggregation(t *testing.T, baseURL string) map[string]int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/api/animals/favorites/aggregation", nil)
	require.Equal(t, http.StatusOK, st, string(body))
	return decode[map[string]int64](t, body)
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body=%s", string(body))
	return v
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
