package handler

import (
	"net/http"

	"github.com/clansite/api/internal/domain"
	"github.com/clansite/api/internal/repository"
)

// ListingHandler handles the teammate-search listing board: public reads and
// submissions, moderator status updates and deletes.
type ListingHandler struct {
	db       repository.DBTX
	listings repository.ListingRepository
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(db repository.DBTX, listings repository.ListingRepository) *ListingHandler {
	return &ListingHandler{db: db, listings: listings}
}

// Dispatch handles /listings for all methods.
func (h *ListingHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPut:
		h.updateStatus(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		RespondError(w, r, domain.ErrUnsupported("method not allowed"))
	}
}

// list returns listings filtered by the status query parameter. The default
// is approved, so the public view only shows moderated content.
func (h *ListingHandler) list(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = domain.ListingApproved
	}

	listings, err := h.listings.ListByStatus(r.Context(), h.db, status)
	if err != nil {
		RespondError(w, r, domain.ErrInternal("list listings", err))
		return
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"listings": listings})
}

// create accepts a public submission. Status is forced to pending regardless
// of anything the client sends.
func (h *ListingHandler) create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		GameMode    string  `json:"game_mode"`
		PlayerCount string  `json:"player_count"`
		DiscordTag  string  `json:"discord_tag"`
		ImageURL    *string `json:"image_url"`
	}
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}

	if input.Title == "" {
		RespondError(w, r, domain.ErrValidation("title is required"))
		return
	}
	if input.Description == "" {
		RespondError(w, r, domain.ErrValidation("description is required"))
		return
	}
	if input.GameMode == "" {
		RespondError(w, r, domain.ErrValidation("game_mode is required"))
		return
	}
	if input.PlayerCount == "" {
		RespondError(w, r, domain.ErrValidation("player_count is required"))
		return
	}
	if input.DiscordTag == "" {
		RespondError(w, r, domain.ErrValidation("discord_tag is required"))
		return
	}

	listing := &domain.Listing{
		Title:       input.Title,
		Description: input.Description,
		GameMode:    input.GameMode,
		PlayerCount: input.PlayerCount,
		DiscordTag:  input.DiscordTag,
		ImageURL:    input.ImageURL,
	}

	id, err := h.listings.Create(r.Context(), h.db, listing)
	if err != nil {
		RespondError(w, r, domain.ErrInternal("create listing", err))
		return
	}

	RespondJSON(w, http.StatusCreated, map[string]interface{}{"id": id, "message": "listing submitted for moderation"})
}

// updateStatus moves a listing through the moderation state machine. The new
// status must be one of the recognized values; there is no guard against
// re-opening an already moderated listing.
func (h *ListingHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}
	if input.ID == 0 {
		RespondError(w, r, domain.ErrValidation("id is required"))
		return
	}
	if !domain.ValidListingStatus(input.Status) {
		RespondError(w, r, domain.ErrValidation("status must be one of pending, approved, rejected"))
		return
	}

	if err := h.listings.UpdateStatus(r.Context(), h.db, input.ID, input.Status); err != nil {
		respondStoreError(w, r, "update listing status", err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

// delete removes a listing by id unconditionally.
func (h *ListingHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := decodeID(r)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.listings.Delete(r.Context(), h.db, id); err != nil {
		RespondError(w, r, domain.ErrInternal("delete listing", err))
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "listing deleted"})
}
