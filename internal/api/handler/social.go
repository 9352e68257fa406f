package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vocabquest/vocabquest-go/internal/api/middleware"
	"github.com/vocabquest/vocabquest-go/internal/api/request"
	"github.com/vocabquest/vocabquest-go/internal/api/response"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/social"
)

// SocialHandler handles friend and user search endpoints
type SocialHandler struct {
	socialService *social.Service
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(socialService *social.Service) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// SearchUsers handles GET /api/v1/users/search?q=
func (h *SocialHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, NewInvalidRequestError("q is required"))
		return
	}

	users, err := h.socialService.SearchUsers(r.Context(), user.ID, query)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserListFromModels(users))
}

// ListFriends handles GET /api/v1/friends
func (h *SocialHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	friends, err := h.socialService.ListFriends(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserListFromModels(friends))
}

// ListRequests handles GET /api/v1/friends/requests
func (h *SocialHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	requests, err := h.socialService.ListIncomingRequests(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FriendRequestListFromModels(requests))
}

// SendRequest handles POST /api/v1/friends/requests
func (h *SocialHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SendFriendRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ToUserID == "" {
		WriteError(w, NewInvalidRequestError("to_user_id is required"))
		return
	}

	fr, err := h.socialService.SendFriendRequest(r.Context(), user.ID, model.UserID(req.ToUserID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.FriendRequestFromModel(fr))
}

// AcceptRequest handles POST /api/v1/friends/requests/{id}/accept
func (h *SocialHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.FriendRequestID(mux.Vars(r)["id"])

	fr, err := h.socialService.AcceptFriendRequest(r.Context(), user.ID, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FriendRequestFromModel(fr))
}

// DeclineRequest handles POST /api/v1/friends/requests/{id}/decline
func (h *SocialHandler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.FriendRequestID(mux.Vars(r)["id"])

	fr, err := h.socialService.DeclineFriendRequest(r.Context(), user.ID, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FriendRequestFromModel(fr))
}
