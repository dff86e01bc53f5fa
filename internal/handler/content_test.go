package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clansite/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContentHandler() (*ContentHandler, *fakeNewsRepo, *fakeVipRepo, *fakeClanRepo) {
	news := &fakeNewsRepo{}
	vip := &fakeVipRepo{}
	clan := &fakeClanRepo{}
	return NewContentHandler(nil, news, vip, clan), news, vip, clan
}

func doContent(h *ContentHandler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	h.Dispatch(w, req)
	return w
}

func TestContentDispatch_UnsupportedCombinations(t *testing.T) {
	h, _, _, _ := newTestContentHandler()

	t.Run("unknown type", func(t *testing.T) {
		w := doContent(h, "GET", "/content?type=forum", "")
		assert.Equal(t, 405, w.Code)
	})

	t.Run("unknown method", func(t *testing.T) {
		w := doContent(h, "PATCH", "/content?type=news", "{}")
		assert.Equal(t, 405, w.Code)
	})

	t.Run("type defaults to news", func(t *testing.T) {
		w := doContent(h, "GET", "/content", "")
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"news"`)
	})
}

func TestContentNews_CRUD(t *testing.T) {
	h, newsRepo, _, _ := newTestContentHandler()

	t.Run("create requires fields", func(t *testing.T) {
		w := doContent(h, "POST", "/content?type=news", `{"title":"Scrim results"}`)
		assert.Equal(t, 400, w.Code)
		assert.Empty(t, newsRepo.items)
	})

	t.Run("create", func(t *testing.T) {
		w := doContent(h, "POST", "/content?type=news",
			`{"title":"Scrim results","date":"2025-06-01","category":"events","content":"We won."}`)
		require.Equal(t, 201, w.Code)

		var resp struct {
			ID      int64  `json:"id"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("create defaults date to today", func(t *testing.T) {
		w := doContent(h, "POST", "/content?type=news",
			`{"title":"No date","category":"misc","content":"body"}`)
		require.Equal(t, 201, w.Code)
		assert.False(t, newsRepo.items[len(newsRepo.items)-1].Date.IsZero())
	})

	t.Run("get includes created item", func(t *testing.T) {
		w := doContent(h, "GET", "/content?type=news", "")
		require.Equal(t, 200, w.Code)

		var resp struct {
			News []domain.NewsItem `json:"news"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.News, 2)
		assert.Equal(t, "Scrim results", resp.News[0].Title)
		assert.Equal(t, "events", resp.News[0].Category)
	})

	t.Run("update requires id", func(t *testing.T) {
		w := doContent(h, "PUT", "/content?type=news",
			`{"title":"x","date":"2025-06-01","category":"c","content":"b"}`)
		assert.Equal(t, 400, w.Code)
		assert.Equal(t, "Scrim results", newsRepo.items[0].Title)
	})

	t.Run("update", func(t *testing.T) {
		w := doContent(h, "PUT", "/content?type=news",
			`{"id":1,"title":"Scrim results (edited)","date":"2025-06-02","category":"events","content":"We won twice.","is_important":true}`)
		require.Equal(t, 200, w.Code)
		assert.Equal(t, "Scrim results (edited)", newsRepo.items[0].Title)
		assert.True(t, newsRepo.items[0].IsImportant)
	})

	t.Run("update missing row returns 404", func(t *testing.T) {
		w := doContent(h, "PUT", "/content?type=news",
			`{"id":999,"title":"x","date":"2025-06-01","category":"c","content":"b"}`)
		assert.Equal(t, 404, w.Code)
	})

	t.Run("delete requires id", func(t *testing.T) {
		w := doContent(h, "DELETE", "/content?type=news", `{}`)
		assert.Equal(t, 400, w.Code)
		assert.Len(t, newsRepo.items, 2)
	})

	t.Run("delete", func(t *testing.T) {
		w := doContent(h, "DELETE", "/content?type=news", `{"id":1}`)
		require.Equal(t, 200, w.Code)
		assert.Len(t, newsRepo.items, 1)
	})

	t.Run("delete of missing row still returns 200", func(t *testing.T) {
		w := doContent(h, "DELETE", "/content?type=news", `{"id":999}`)
		assert.Equal(t, 200, w.Code)
	})
}

func TestContentVip_CRUD(t *testing.T) {
	h, _, vipRepo, _ := newTestContentHandler()

	t.Run("create", func(t *testing.T) {
		w := doContent(h, "POST", "/content?type=vip",
			`{"tier_id":"gold","name":"Gold","price":100,"duration":"30d","color":"#FFD700","features":["perk1"]}`)
		require.Equal(t, 201, w.Code)

		var resp struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("sort_order defaults to zero", func(t *testing.T) {
		w := doContent(h, "GET", "/content?type=vip", "")
		require.Equal(t, 200, w.Code)

		var resp struct {
			VipTiers []domain.VipTier `json:"vip_tiers"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.VipTiers, 1)
		assert.Equal(t, 0, resp.VipTiers[0].SortOrder)
		assert.Equal(t, []string{"perk1"}, resp.VipTiers[0].Features)
	})

	t.Run("create requires price", func(t *testing.T) {
		w := doContent(h, "POST", "/content?type=vip",
			`{"tier_id":"silver","name":"Silver","duration":"30d","color":"#C0C0C0","features":[]}`)
		assert.Equal(t, 400, w.Code)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		w := doContent(h, "POST", "/content?type=vip",
			`{"tier_id":"free","name":"Free","price":0,"duration":"forever","color":"#FFFFFF","features":[]}`)
		assert.Equal(t, 201, w.Code)
	})

	t.Run("update keeps tier_id", func(t *testing.T) {
		w := doContent(h, "PUT", "/content?type=vip",
			`{"id":1,"name":"Gold+","price":150,"duration":"30d","color":"#FFD700","is_popular":true,"features":["perk1","perk2"],"sort_order":2}`)
		require.Equal(t, 200, w.Code)
		assert.Equal(t, "gold", vipRepo.tiers[0].TierID)
		assert.Equal(t, "Gold+", vipRepo.tiers[0].Name)
		assert.Equal(t, 150, vipRepo.tiers[0].Price)
	})

	t.Run("delete", func(t *testing.T) {
		w := doContent(h, "DELETE", "/content?type=vip", `{"id":2}`)
		require.Equal(t, 200, w.Code)
		assert.Len(t, vipRepo.tiers, 1)
	})
}

func TestContentClan_CRUD(t *testing.T) {
	h, _, _, clanRepo := newTestContentHandler()

	t.Run("create", func(t *testing.T) {
		w := doContent(h, "POST", "/content?type=clan",
			`{"section":"rules","title":"Clan rules","content":"Be nice.","items":["no cheating","no flaming"]}`)
		require.Equal(t, 201, w.Code)
	})

	t.Run("create requires section", func(t *testing.T) {
		w := doContent(h, "POST", "/content?type=clan",
			`{"title":"Orphan","content":"x","items":[]}`)
		assert.Equal(t, 400, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		w := doContent(h, "GET", "/content?type=clan", "")
		require.Equal(t, 200, w.Code)

		var resp struct {
			ClanInfo []domain.ClanInfoSection `json:"clan_info"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.ClanInfo, 1)
		assert.Equal(t, "rules", resp.ClanInfo[0].Section)
		assert.Len(t, resp.ClanInfo[0].Items, 2)
	})

	t.Run("update keeps section key", func(t *testing.T) {
		w := doContent(h, "PUT", "/content?type=clan",
			`{"id":1,"title":"Clan rules v2","content":"Be nicer.","items":["no cheating"]}`)
		require.Equal(t, 200, w.Code)
		assert.Equal(t, "rules", clanRepo.sections[0].Section)
		assert.Equal(t, "Clan rules v2", clanRepo.sections[0].Title)
	})

	t.Run("delete", func(t *testing.T) {
		w := doContent(h, "DELETE", "/content?type=clan", `{"id":1}`)
		require.Equal(t, 200, w.Code)
		assert.Empty(t, clanRepo.sections)
	})
}

func TestContentEmptyCollectionsSerializeAsArrays(t *testing.T) {
	h, _, _, _ := newTestContentHandler()

	for _, tt := range []struct {
		typ string
		key string
	}{
		{"news", `"news":[]`},
		{"vip", `"vip_tiers":[]`},
		{"clan", `"clan_info":[]`},
	} {
		w := doContent(h, "GET", "/content?type="+tt.typ, "")
		require.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), tt.key)
	}
}
