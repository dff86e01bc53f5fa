package handler

import (
	"net/http"
	"time"

	"github.com/clansite/api/internal/domain"
	"github.com/clansite/api/internal/repository"
)

// contentResource is one CRUD-capable content collection. The dispatcher
// selects a resource by the type query parameter and a method branch within
// it, so table names never come from request data.
type contentResource struct {
	list   func(w http.ResponseWriter, r *http.Request)
	create func(w http.ResponseWriter, r *http.Request)
	update func(w http.ResponseWriter, r *http.Request)
	delete func(w http.ResponseWriter, r *http.Request)
}

// ContentHandler is a single entry point for the news, vip and clan content
// collections, dispatching on the type query parameter and HTTP method.
type ContentHandler struct {
	db    repository.DBTX
	news  repository.NewsRepository
	vip   repository.VipTierRepository
	clan  repository.ClanInfoRepository
	types map[string]contentResource
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(
	db repository.DBTX,
	news repository.NewsRepository,
	vip repository.VipTierRepository,
	clan repository.ClanInfoRepository,
) *ContentHandler {
	h := &ContentHandler{db: db, news: news, vip: vip, clan: clan}
	h.types = map[string]contentResource{
		"news": {list: h.listNews, create: h.createNews, update: h.updateNews, delete: h.deleteNews},
		"vip":  {list: h.listVipTiers, create: h.createVipTier, update: h.updateVipTier, delete: h.deleteVipTier},
		"clan": {list: h.listClanInfo, create: h.createClanInfo, update: h.updateClanInfo, delete: h.deleteClanInfo},
	}
	return h
}

// Dispatch handles /content for all methods. The type parameter defaults to
// news; unknown types and methods fall through to 405.
func (h *ContentHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	contentType := r.URL.Query().Get("type")
	if contentType == "" {
		contentType = "news"
	}

	res, ok := h.types[contentType]
	if !ok {
		RespondError(w, r, domain.ErrUnsupported("unsupported content type"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		res.list(w, r)
	case http.MethodPost:
		res.create(w, r)
	case http.MethodPut:
		res.update(w, r)
	case http.MethodDelete:
		res.delete(w, r)
	default:
		RespondError(w, r, domain.ErrUnsupported("method not allowed"))
	}
}

// decodeID reads the body and requires an id field.
func decodeID(r *http.Request) (int64, error) {
	var input struct {
		ID int64 `json:"id"`
	}
	if err := DecodeJSON(r, &input); err != nil {
		return 0, domain.ErrValidation("invalid request body")
	}
	if input.ID == 0 {
		return 0, domain.ErrValidation("id is required")
	}
	return input.ID, nil
}

// parseNewsDate accepts plain dates as the admin panel sends them, or full
// timestamps.
func parseNewsDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// --- news ---

type newsInput struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"image_url"`
	IsImportant bool    `json:"is_important"`
}

func (in *newsInput) toItem() (*domain.NewsItem, error) {
	if in.Title == "" {
		return nil, domain.ErrValidation("title is required")
	}
	if in.Category == "" {
		return nil, domain.ErrValidation("category is required")
	}
	if in.Content == "" {
		return nil, domain.ErrValidation("content is required")
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if in.Date != "" {
		parsed, err := parseNewsDate(in.Date)
		if err != nil {
			return nil, domain.ErrValidation("invalid date format")
		}
		date = parsed
	}

	return &domain.NewsItem{
		ID:          in.ID,
		Title:       in.Title,
		Date:        date,
		Category:    in.Category,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		IsImportant: in.IsImportant,
	}, nil
}

func (h *ContentHandler) listNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.List(r.Context(), h.db)
	if err != nil {
		RespondError(w, r, domain.ErrInternal("list news", err))
		return
	}
	if items == nil {
		items = []domain.NewsItem{}
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"news": items})
}

func (h *ContentHandler) createNews(w http.ResponseWriter, r *http.Request) {
	var input newsInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}

	item, err := input.toItem()
	if err != nil {
		RespondError(w, r, err)
		return
	}

	id, err := h.news.Create(r.Context(), h.db, item)
	if err != nil {
		RespondError(w, r, domain.ErrInternal("create news", err))
		return
	}

	RespondJSON(w, http.StatusCreated, map[string]interface{}{"id": id, "message": "news item created"})
}

func (h *ContentHandler) updateNews(w http.ResponseWriter, r *http.Request) {
	var input newsInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}
	if input.ID == 0 {
		RespondError(w, r, domain.ErrValidation("id is required"))
		return
	}

	item, err := input.toItem()
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.news.Update(r.Context(), h.db, item); err != nil {
		respondStoreError(w, r, "update news", err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "news item updated"})
}

func (h *ContentHandler) deleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := decodeID(r)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.news.Delete(r.Context(), h.db, id); err != nil {
		RespondError(w, r, domain.ErrInternal("delete news", err))
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// --- vip tiers ---

type vipTierInput struct {
	ID        int64    `json:"id"`
	TierID    string   `json:"tier_id"`
	Name      string   `json:"name"`
	Price     *int     `json:"price"`
	Duration  string   `json:"duration"`
	Color     string   `json:"color"`
	IsPopular bool     `json:"is_popular"`
	Features  []string `json:"features"`
	SortOrder int      `json:"sort_order"`
}

func (in *vipTierInput) toTier(requireTierID bool) (*domain.VipTier, error) {
	if requireTierID && in.TierID == "" {
		return nil, domain.ErrValidation("tier_id is required")
	}
	if in.Name == "" {
		return nil, domain.ErrValidation("name is required")
	}
	if in.Price == nil {
		return nil, domain.ErrValidation("price is required")
	}
	if in.Duration == "" {
		return nil, domain.ErrValidation("duration is required")
	}
	if in.Color == "" {
		return nil, domain.ErrValidation("color is required")
	}
	if in.Features == nil {
		return nil, domain.ErrValidation("features is required")
	}

	return &domain.VipTier{
		ID:        in.ID,
		TierID:    in.TierID,
		Name:      in.Name,
		Price:     *in.Price,
		Duration:  in.Duration,
		Color:     in.Color,
		IsPopular: in.IsPopular,
		Features:  in.Features,
		SortOrder: in.SortOrder,
	}, nil
}

func (h *ContentHandler) listVipTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.vip.List(r.Context(), h.db)
	if err != nil {
		RespondError(w, r, domain.ErrInternal("list vip tiers", err))
		return
	}
	if tiers == nil {
		tiers = []domain.VipTier{}
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"vip_tiers": tiers})
}

func (h *ContentHandler) createVipTier(w http.ResponseWriter, r *http.Request) {
	var input vipTierInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}

	tier, err := input.toTier(true)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	id, err := h.vip.Create(r.Context(), h.db, tier)
	if err != nil {
		RespondError(w, r, domain.ErrInternal("create vip tier", err))
		return
	}

	RespondJSON(w, http.StatusCreated, map[string]interface{}{"id": id, "message": "vip tier created"})
}

func (h *ContentHandler) updateVipTier(w http.ResponseWriter, r *http.Request) {
	var input vipTierInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}
	if input.ID == 0 {
		RespondError(w, r, domain.ErrValidation("id is required"))
		return
	}

	tier, err := input.toTier(false)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.vip.Update(r.Context(), h.db, tier); err != nil {
		respondStoreError(w, r, "update vip tier", err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "vip tier updated"})
}

func (h *ContentHandler) deleteVipTier(w http.ResponseWriter, r *http.Request) {
	id, err := decodeID(r)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.vip.Delete(r.Context(), h.db, id); err != nil {
		RespondError(w, r, domain.ErrInternal("delete vip tier", err))
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// --- clan info ---

type clanInfoInput struct {
	ID      int64    `json:"id"`
	Section string   `json:"section"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Items   []string `json:"items"`
}

func (in *clanInfoInput) toSection(requireSection bool) (*domain.ClanInfoSection, error) {
	if requireSection && in.Section == "" {
		return nil, domain.ErrValidation("section is required")
	}
	if in.Title == "" {
		return nil, domain.ErrValidation("title is required")
	}
	if in.Content == "" {
		return nil, domain.ErrValidation("content is required")
	}
	if in.Items == nil {
		return nil, domain.ErrValidation("items is required")
	}

	return &domain.ClanInfoSection{
		ID:      in.ID,
		Section: in.Section,
		Title:   in.Title,
		Content: in.Content,
		Items:   in.Items,
	}, nil
}

func (h *ContentHandler) listClanInfo(w http.ResponseWriter, r *http.Request) {
	sections, err := h.clan.List(r.Context(), h.db)
	if err != nil {
		RespondError(w, r, domain.ErrInternal("list clan info", err))
		return
	}
	if sections == nil {
		sections = []domain.ClanInfoSection{}
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"clan_info": sections})
}

func (h *ContentHandler) createClanInfo(w http.ResponseWriter, r *http.Request) {
	var input clanInfoInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}

	section, err := input.toSection(true)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	id, err := h.clan.Create(r.Context(), h.db, section)
	if err != nil {
		RespondError(w, r, domain.ErrInternal("create clan info", err))
		return
	}

	RespondJSON(w, http.StatusCreated, map[string]interface{}{"id": id, "message": "clan info created"})
}

func (h *ContentHandler) updateClanInfo(w http.ResponseWriter, r *http.Request) {
	var input clanInfoInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}
	if input.ID == 0 {
		RespondError(w, r, domain.ErrValidation("id is required"))
		return
	}

	section, err := input.toSection(false)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.clan.Update(r.Context(), h.db, section); err != nil {
		respondStoreError(w, r, "update clan info", err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "clan info updated"})
}

func (h *ContentHandler) deleteClanInfo(w http.ResponseWriter, r *http.Request) {
	id, err := decodeID(r)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.clan.Delete(r.Context(), h.db, id); err != nil {
		RespondError(w, r, domain.ErrInternal("delete clan info", err))
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// respondStoreError passes through domain errors from the repository (not
// found) and wraps everything else as internal.
func respondStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if _, ok := err.(*domain.AppError); ok {
		RespondError(w, r, err)
		return
	}
	RespondError(w, r, domain.ErrInternal(op, err))
}
