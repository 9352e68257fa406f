package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vocabquest/vocabquest-go/internal/api/response"
	"github.com/vocabquest/vocabquest-go/internal/services/dictionary"
)

// DictionaryHandler handles word lookup endpoints
type DictionaryHandler struct {
	dictService dictionary.ServiceInterface
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dictService dictionary.ServiceInterface) *DictionaryHandler {
	return &DictionaryHandler{
		dictService: dictService,
	}
}

// Lookup handles GET /api/v1/dictionary/{word}
func (h *DictionaryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	def, err := h.dictService.Lookup(r.Context(), word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DefinitionFromModel(def))
}
