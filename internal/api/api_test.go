package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabquest/vocabquest-go/internal/api"
	"github.com/vocabquest/vocabquest-go/internal/api/response"
	"github.com/vocabquest/vocabquest-go/internal/factory"
	"github.com/vocabquest/vocabquest-go/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	require.NoError(t, app.DictionaryService.Seed(context.Background()))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		SessionService: app.SessionService,
		DictService:    app.DictionaryService,
		VocabService:   app.VocabService,
		SocialService:  app.SocialService,
	})

	return &testServer{
		handler: router,
		app:     app,
		storage: app.Storage.(*memory.Storage),
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// signup registers an account and returns its auth response
func (ts *testServer) signup(t *testing.T, email, name string) response.AuthResponse {
	t.Helper()

	body := map[string]string{
		"email":        email,
		"password":     "secret123",
		"display_name": name,
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestSignupAndSignin(t *testing.T) {
	ts := newTestServer(t)

	signupResp := ts.signup(t, "alice@example.com", "Alice")
	assert.Equal(t, "Alice", signupResp.User.DisplayName)
	assert.Equal(t, "alice@example.com", signupResp.User.Email)
	assert.NotEmpty(t, signupResp.SessionToken)

	body := map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/signin", body, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var signinResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &signinResp))
	assert.Equal(t, signupResp.User.ID, signinResp.User.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "alice@example.com", "Alice")

	body := map[string]string{
		"email":        "alice@example.com",
		"password":     "other456",
		"display_name": "Impostor",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/signup", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "EMAIL_EXISTS")
}

func TestSigninWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "alice@example.com", "Alice")

	body := map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/signin", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/rooms"},
		{http.MethodGet, "/api/v1/vocabulary"},
		{http.MethodGet, "/api/v1/friends"},
		{http.MethodGet, "/api/v1/dictionary/eloquent"},
	}
	for _, p := range paths {
		rr := ts.request(p.method, p.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", p.method, p.path)
	}
}

func TestGetAndUpdateProfile(t *testing.T) {
	ts := newTestServer(t)
	auth := ts.signup(t, "alice@example.com", "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/users/me", nil, auth.SessionToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	var me response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.Equal(t, "Alice", me.DisplayName)

	body := map[string]string{"display_name": "Alicia"}
	rr = ts.request(http.MethodPatch, "/api/v1/users/me", body, auth.SessionToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/users/me", nil, auth.SessionToken)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.Equal(t, "Alicia", me.DisplayName)
}

func TestSignoutInvalidatesToken(t *testing.T) {
	ts := newTestServer(t)
	auth := ts.signup(t, "alice@example.com", "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/auth/signout", nil, auth.SessionToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/users/me", nil, auth.SessionToken)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRoomLifecycle(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com", "Alice")
	bob := ts.signup(t, "bob@example.com", "Bob")

	// Alice creates a one-round room
	rr := ts.request(http.MethodPost, "/api/v1/rooms",
		map[string]any{"name": "Word Nerds", "max_rounds": 1}, alice.SessionToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	var room response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	assert.Equal(t, "waiting", room.State)
	assert.Len(t, room.Players, 1)

	// Bob joins and readies up
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.ID+"/join", nil, bob.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.ID+"/ready",
		map[string]bool{"ready": true}, bob.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	// Bob cannot start; Alice can
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.ID+"/start", nil, bob.SessionToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.ID+"/start", nil, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	assert.Equal(t, "playing", room.State)
	require.Len(t, room.CurrentLetter, 1)

	letter := room.CurrentLetter

	// Both submit answers prefixed with the round letter
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.ID+"/submit",
		map[string]string{"names": letter + "nna", "animals": letter + "nt", "places": letter + "ustria"},
		alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.ID+"/submit",
		map[string]string{"names": letter + "dam"}, bob.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	assert.Equal(t, "finished", room.State)
	require.NotNil(t, room.Winner)
	assert.Equal(t, alice.User.ID, *room.Winner)

	// Standings order by score
	rr = ts.request(http.MethodGet, "/api/v1/rooms/"+room.ID+"/standings", nil, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var standings []response.Standing
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &standings))
	require.Len(t, standings, 2)
	assert.Equal(t, 30, standings[0].Score)
	assert.Equal(t, 10, standings[1].Score)

	// Alice resets the room back to waiting
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.ID+"/reset", nil, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	assert.Equal(t, "waiting", room.State)
}

func TestSubmitOutsidePlayingRejected(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com", "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/rooms",
		map[string]any{"name": "Idle", "max_rounds": 3}, alice.SessionToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	var room response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))

	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.ID+"/submit",
		map[string]string{"names": "Anna"}, alice.SessionToken)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_TRANSITION")
}

func TestRoomNotFound(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com", "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/rooms/NOPE0000", nil, alice.SessionToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDictionaryLookup(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com", "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/dictionary/eloquent", nil, alice.SessionToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	var def response.Definition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &def))
	assert.Equal(t, "eloquent", def.Word)
	assert.Equal(t, "adjective", def.PartOfSpeech)

	rr = ts.request(http.MethodGet, "/api/v1/dictionary/zzzz", nil, alice.SessionToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestVocabularyLifecycle(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com", "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/vocabulary", map[string]string{
		"word":       "ephemeral",
		"definition": "lasting a very short time",
		"difficulty": "medium",
	}, alice.SessionToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	var word response.VocabWord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))
	assert.Equal(t, "ephemeral", word.Word)
	assert.False(t, word.Mastered)

	rr = ts.request(http.MethodPatch, "/api/v1/vocabulary/"+word.ID,
		map[string]bool{"mastered": true}, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))
	assert.True(t, word.Mastered)

	rr = ts.request(http.MethodGet, "/api/v1/vocabulary?mastered=true", nil, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.VocabWordList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Words, 1)

	rr = ts.request(http.MethodDelete, "/api/v1/vocabulary/"+word.ID, nil, alice.SessionToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/vocabulary/"+word.ID, nil, alice.SessionToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestFriendRequestFlow(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.signup(t, "alice@example.com", "Alice")
	bob := ts.signup(t, "bob@example.com", "Bob")

	// Alice finds Bob and sends a request
	rr := ts.request(http.MethodGet, "/api/v1/users/search?q=bob", nil, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var found response.UserList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &found))
	require.Len(t, found.Users, 1)
	assert.Empty(t, found.Users[0].Email)

	rr = ts.request(http.MethodPost, "/api/v1/friends/requests",
		map[string]string{"to_user_id": found.Users[0].ID}, alice.SessionToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	var fr response.FriendRequest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fr))

	// Bob sees and accepts it
	rr = ts.request(http.MethodGet, "/api/v1/friends/requests", nil, bob.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var pending response.FriendRequestList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pending))
	require.Len(t, pending.Requests, 1)

	rr = ts.request(http.MethodPost, "/api/v1/friends/requests/"+fr.ID+"/accept", nil, bob.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	// Both sides now list each other
	rr = ts.request(http.MethodGet, "/api/v1/friends", nil, alice.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var friends response.UserList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &friends))
	require.Len(t, friends.Users, 1)
	assert.Equal(t, "Bob", friends.Users[0].DisplayName)

	// Self-request is rejected
	rr = ts.request(http.MethodPost, "/api/v1/friends/requests",
		map[string]string{"to_user_id": alice.User.ID}, alice.SessionToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
