package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vocabquest/vocabquest-go/internal/api/middleware"
	"github.com/vocabquest/vocabquest-go/internal/api/request"
	"github.com/vocabquest/vocabquest-go/internal/api/response"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/vocab"
)

// VocabHandler handles personal vocabulary list endpoints
type VocabHandler struct {
	vocabService *vocab.Service
}

// NewVocabHandler creates a new vocabulary handler
func NewVocabHandler(vocabService *vocab.Service) *VocabHandler {
	return &VocabHandler{
		vocabService: vocabService,
	}
}

// List handles GET /api/v1/vocabulary
func (h *VocabHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	filter := vocab.ListFilter{
		Difficulty: model.Difficulty(r.URL.Query().Get("difficulty")),
	}
	switch r.URL.Query().Get("mastered") {
	case "true":
		mastered := true
		filter.Mastered = &mastered
	case "false":
		mastered := false
		filter.Mastered = &mastered
	}

	words, err := h.vocabService.ListWords(r.Context(), user.ID, filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VocabWordListFromModels(words))
}

// Add handles POST /api/v1/vocabulary
func (h *VocabHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.AddVocabWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}

	word, err := h.vocabService.AddWord(r.Context(), user.ID,
		req.Word, req.Definition, req.Example, model.Difficulty(req.Difficulty))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.VocabWordFromModel(word))
}

// Get handles GET /api/v1/vocabulary/{id}
func (h *VocabHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.VocabWordID(mux.Vars(r)["id"])

	word, err := h.vocabService.GetWord(r.Context(), user.ID, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VocabWordFromModel(word))
}

// Update handles PATCH /api/v1/vocabulary/{id}
func (h *VocabHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.VocabWordID(mux.Vars(r)["id"])

	var req request.UpdateVocabWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Mastered == nil {
		WriteError(w, NewInvalidRequestError("mastered is required"))
		return
	}

	word, err := h.vocabService.SetMastered(r.Context(), user.ID, id, *req.Mastered)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VocabWordFromModel(word))
}

// Remove handles DELETE /api/v1/vocabulary/{id}
func (h *VocabHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id := model.VocabWordID(mux.Vars(r)["id"])

	if err := h.vocabService.RemoveWord(r.Context(), user.ID, id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
