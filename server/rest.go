package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := rest.JSON{
		"status":     "ok",
		"version":    s.version,
		"categories": s.registry.Len(),
		"time":       time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// articlesHandler returns recent articles with their category assignments
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	if limit < 1 || limit > 200 {
		renderError(w, r, fmt.Errorf("limit out of range"), http.StatusBadRequest)
		return
	}

	articles, err := s.articles.GetArticles(r.Context(), limit, offset)
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"articles": articles, "count": len(articles)})
}

// articleHandler returns a single article by ID
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	article, err := s.articles.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderError(w, r, fmt.Errorf("article not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get article %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// categoryInfo is the API shape of a category
type categoryInfo struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// categoriesHandler lists the configured categories
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	cats := s.registry.All()
	res := make([]categoryInfo, 0, len(cats))
	for _, c := range cats {
		words := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			words = append(words, kw.Word)
		}
		res = append(res, categoryInfo{ID: c.ID, Name: c.Name, Keywords: words})
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"categories": res})
}

// userRequest is the payload for creating a user or updating preferences
type userRequest struct {
	Email          string   `json:"email"`
	FullName       string   `json:"full_name"`
	Active         *bool    `json:"active,omitempty"`
	DailyDigest    *bool    `json:"daily_digest,omitempty"`
	WeeklyDigest   *bool    `json:"weekly_digest,omitempty"`
	InstantEnabled *bool    `json:"instant_enabled,omitempty"`
	DigestTime     string   `json:"digest_time,omitempty"`
	Categories     []int64  `json:"categories"`
	Keywords       []string `json:"keywords"`
}

// createUserHandler registers a new user with preferences
func (s *Server) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		renderError(w, r, fmt.Errorf("email is required"), http.StatusBadRequest)
		return
	}
	if err := s.validCategories(req.Categories); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	pref := &domain.UserPreference{
		Email:          req.Email,
		FullName:       req.FullName,
		Active:         true,
		DailyDigest:    boolOr(req.DailyDigest, true),
		WeeklyDigest:   boolOr(req.WeeklyDigest, false),
		InstantEnabled: boolOr(req.InstantEnabled, false),
		DigestTime:     req.DigestTime,
		Categories:     req.Categories,
		Keywords:       req.Keywords,
	}
	if req.Active != nil {
		pref.Active = *req.Active
	}

	if err := s.preferences.CreateUser(r.Context(), pref); err != nil {
		lgr.Printf("[ERROR] failed to create user: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, pref)
}

// getPreferencesHandler returns a user's preferences
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	pref, err := s.preferences.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get user %s: %v", userID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, pref)
}

// updatePreferencesHandler replaces a user's preferences
func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	current, err := s.preferences.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get user %s: %v", userID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if err := s.validCategories(req.Categories); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if req.Email != "" {
		current.Email = req.Email
	}
	if req.FullName != "" {
		current.FullName = req.FullName
	}
	if req.DigestTime != "" {
		current.DigestTime = req.DigestTime
	}
	if req.Active != nil {
		current.Active = *req.Active
	}
	if req.DailyDigest != nil {
		current.DailyDigest = *req.DailyDigest
	}
	if req.WeeklyDigest != nil {
		current.WeeklyDigest = *req.WeeklyDigest
	}
	if req.InstantEnabled != nil {
		current.InstantEnabled = *req.InstantEnabled
	}
	if req.Categories != nil {
		current.Categories = req.Categories
	}
	if req.Keywords != nil {
		current.Keywords = req.Keywords
	}

	if err := s.preferences.UpdatePreferences(r.Context(), current); err != nil {
		lgr.Printf("[ERROR] failed to update preferences for user %s: %v", userID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, current)
}

// digestPreviewHandler builds a digest for a user without sending or logging it
func (s *Server) digestPreviewHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	dt, err := parseDigestType(r.URL.Query().Get("type"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := s.preferences.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get user %s: %v", userID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	span := s.previewSpan
	if dt == domain.DigestWeekly {
		span = 7 * s.previewSpan
	}
	pool, err := s.articles.GetArticlesSince(r.Context(), time.Now().Add(-span), 500)
	if err != nil {
		lgr.Printf("[ERROR] failed to load article pool: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, s.selector.Select(user, dt, pool))
}

// runDigestHandler triggers a digest run of the given type
func (s *Server) runDigestHandler(w http.ResponseWriter, r *http.Request) {
	dt, err := parseDigestType(r.PathValue("type"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.scheduler.RunDigestNow(r.Context(), dt); err != nil {
		lgr.Printf("[ERROR] manual %s digest run failed: %v", dt, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"status": "completed", "type": string(dt)})
}

// syncHandler triggers a feed sync
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.SyncNow(r.Context()); err != nil {
		lgr.Printf("[ERROR] manual sync failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"status": "completed"})
}

// validCategories checks that every referenced category is configured
func (s *Server) validCategories(ids []int64) error {
	for _, id := range ids {
		if _, err := s.registry.Get(id); err != nil {
			return err
		}
	}
	return nil
}

// parseDigestType validates a digest type from path or query
func parseDigestType(val string) (domain.DigestType, error) {
	switch domain.DigestType(val) {
	case domain.DigestDaily:
		return domain.DigestDaily, nil
	case domain.DigestWeekly:
		return domain.DigestWeekly, nil
	default:
		return "", fmt.Errorf("invalid digest type %q", val)
	}
}

// queryInt reads an integer query parameter with a default
func queryInt(r *http.Request, name string, def int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}

func boolOr(val *bool, def bool) bool {
	if val == nil {
		return def
	}
	return *val
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
