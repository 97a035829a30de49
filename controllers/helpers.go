package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"beaute-shop/models"
	"beaute-shop/repositories"
)

const defaultPageSize = 10

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Message: message})
}

// currentUser resolves the authenticated account set by the auth
// middleware. A stale token pointing at a deleted account yields 401.
func currentUser(c *gin.Context, users *repositories.UserRepository) (models.User, bool) {
	account, err := users.FindByID(c.GetInt("user_id"))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Compte introuvable")
		c.Abort()
		return models.User{}, false
	}
	return account.User, true
}

func paginationParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// pageURL rebuilds the request URL with a different page number, producing
// the absolute cursors of the envelope.
func pageURL(c *gin.Context, page int) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	params := url.Values{}
	for key, values := range c.Request.URL.Query() {
		if key == "page" {
			continue
		}
		for _, value := range values {
			params.Add(key, value)
		}
	}
	params.Set("page", strconv.Itoa(page))

	return scheme + "://" + c.Request.Host + c.Request.URL.Path + "?" + params.Encode()
}

// paginate windows the full result set into the {count, next, previous,
// results} envelope.
func paginate[T any](c *gin.Context, items []T) models.Page[T] {
	page, pageSize := paginationParams(c)

	envelope := models.Page[T]{
		Count:   len(items),
		Results: []T{},
	}

	start := (page - 1) * pageSize
	if start < len(items) {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		envelope.Results = items[start:end]
	}

	if page > 1 && start <= len(items) {
		prev := pageURL(c, page-1)
		envelope.Previous = &prev
	}
	if start+pageSize < len(items) {
		next := pageURL(c, page+1)
		envelope.Next = &next
	}

	return envelope
}
