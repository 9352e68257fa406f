package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vocabquest/vocabquest-go/internal/api/middleware"
	"github.com/vocabquest/vocabquest-go/internal/api/request"
	"github.com/vocabquest/vocabquest-go/internal/api/response"
	"github.com/vocabquest/vocabquest-go/internal/api/sse"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/registry"
	"github.com/vocabquest/vocabquest-go/internal/services/session"
)

// RoomHandler handles game room endpoints. All mutations go through
// the session facade so every change is published to subscribers.
type RoomHandler struct {
	sessions *session.Service
	logger   *slog.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(sessions *session.Service, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{
		sessions: sessions,
		logger:   logger,
	}
}

func (h *RoomHandler) session(r *http.Request) *session.Session {
	user := middleware.MustGetUser(r.Context())
	return h.sessions.For(*user)
}

// List handles GET /api/v1/rooms
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)

	var (
		rooms []*model.Room
		err   error
	)
	if r.URL.Query().Get("mine") == "true" {
		rooms, err = sess.MyRooms(r.Context())
	} else {
		filter := registry.RoomFilter{State: model.GameState(r.URL.Query().Get("state"))}
		rooms, err = sess.Rooms(r.Context(), filter)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomListFromModels(rooms))
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)

	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	room, err := sess.CreateOrJoin(r.Context(), "", req.Name, req.MaxRounds)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoomFromModel(room))
}

// Get handles GET /api/v1/rooms/{id}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	room, err := sess.Room(r.Context(), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Join handles POST /api/v1/rooms/{id}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	room, err := sess.CreateOrJoin(r.Context(), roomID, "", 0)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Leave handles POST /api/v1/rooms/{id}/leave
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	if err := sess.Leave(r.Context(), roomID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Ready handles POST /api/v1/rooms/{id}/ready
func (h *RoomHandler) Ready(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	var req request.SetReadyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	room, err := sess.Ready(r.Context(), roomID, req.Ready)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Start handles POST /api/v1/rooms/{id}/start
func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	room, err := sess.Start(r.Context(), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Submit handles POST /api/v1/rooms/{id}/submit
func (h *RoomHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	var req request.SubmitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	answers := model.CategoryAnswers{
		Names:   req.Names,
		Animals: req.Animals,
		Places:  req.Places,
		Things:  req.Things,
	}
	room, err := sess.Submit(r.Context(), roomID, answers)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Tick handles POST /api/v1/rooms/{id}/tick. Clients without SSE can
// call it to force round expiry checks while polling.
func (h *RoomHandler) Tick(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	room, err := sess.Tick(r.Context(), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Reset handles POST /api/v1/rooms/{id}/reset
func (h *RoomHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	room, err := sess.Reset(r.Context(), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Standings handles GET /api/v1/rooms/{id}/standings
func (h *RoomHandler) Standings(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	standings, err := sess.Standings(r.Context(), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StandingsFromModel(standings))
}

// Events handles GET /api/v1/rooms/{id}/events (SSE stream)
func (h *RoomHandler) Events(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	roomID := model.RoomID(mux.Vars(r)["id"])

	// Reject before upgrading to a stream so the client gets a JSON error
	if _, err := sess.Room(r.Context(), roomID); err != nil {
		WriteError(w, err)
		return
	}

	events, cancel := h.sessions.Subscribe(roomID)
	defer cancel()

	h.logger.Debug("SSE client connected",
		slog.String("room_id", string(roomID)),
		slog.String("user_id", string(sess.User().ID)))

	sse.Serve(w, r, events, h.logger)
}
