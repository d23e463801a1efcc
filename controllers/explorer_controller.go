package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shopper-front/backend"
	"shopper-front/config"
	"shopper-front/models"
	"shopper-front/session"
)

const explorerPageSize = 6

const storeListCacheKey = "stores_list"

type ExplorerController struct {
	API      *backend.Client
	Sessions *session.Cache
}

// StorePage is one rendered page of the filtered directory.
type StorePage struct {
	Items      []models.Store
	Number     int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// FilterStores matches case-insensitively against name and quote. An empty
// query returns every store.
func FilterStores(stores []models.Store, query string) []models.Store {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return stores
	}
	filtered := []models.Store{}
	for _, s := range stores {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Quote), q) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// PaginateStores slices one fixed-size page out of the filtered set. The
// requested page is clamped to [1, totalPages] so a shrinking filter result
// never renders an empty page.
func PaginateStores(stores []models.Store, page, pageSize int) StorePage {
	totalPages := (len(stores) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(stores) {
		start = len(stores)
	}
	if end > len(stores) {
		end = len(stores)
	}

	return StorePage{
		Items:      stores[start:end],
		Number:     page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// fetchStores returns the public directory, via the optional Redis cache
// when one is configured.
func (ctrl *ExplorerController) fetchStores(ctx context.Context) ([]models.Store, error) {
	if models.RedisClient != nil {
		if cached, err := models.RedisClient.Get(ctx, storeListCacheKey).Result(); err == nil {
			var stores []models.Store
			if err := json.Unmarshal([]byte(cached), &stores); err == nil {
				return stores, nil
			}
		}
	}

	stores, err := ctrl.API.ListStores(ctx)
	if err != nil {
		return nil, err
	}

	if models.RedisClient != nil {
		if raw, err := json.Marshal(stores); err == nil {
			models.RedisClient.Set(ctx, storeListCacheKey, string(raw), config.AppConfig.StoreCacheTTL)
		}
	}
	return stores, nil
}

// Explore renders the public store directory with client-free search and
// pagination: the q and page query parameters round-trip through the form.
func (ctrl *ExplorerController) Explore(c *gin.Context) {
	query := c.Query("q")
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	stores, err := ctrl.fetchStores(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Warn("store list fetch failed")
		stores = nil
	}

	filtered := FilterStores(stores, query)
	page := PaginateStores(filtered, pageNum, explorerPageSize)

	data := pageData(c)
	data["Query"] = query
	data["Page"] = page
	data["TotalMatches"] = len(filtered)
	if snap := snapshotOrNil(c, ctrl.Sessions); snap != nil {
		data["User"] = snap.User
	}
	c.HTML(http.StatusOK, "explorer.html", data)
}
