package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"shopper-front/controllers"
	"shopper-front/middleware"
)

func projectBackend(onCreate http.HandlerFunc) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"u1","name":"Ana","email":"ana@example.com","role":"seller"}`))
	})
	mux.HandleFunc("/api/projects/mine", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	if onCreate != nil {
		mux.HandleFunc("/api/stores/create", onCreate)
	}
	return mux
}

func newProjectRouter(t *testing.T, backendHandler http.Handler) http.Handler {
	router, api, sessions := newHarness(t, backendHandler)
	ctrl := &controllers.ProjectController{API: api, Sessions: sessions}
	seller := router.Group("/", middleware.AuthMiddleware(), middleware.SellerMiddleware())
	seller.GET("/add-project", ctrl.ShowAddProject)
	seller.POST("/add-project", ctrl.CreateProject)
	return router
}

func TestShowAddProjectDefaults(t *testing.T) {
	router := newProjectRouter(t, projectBackend(nil))
	seller := sessionCookie(t, "u1", "ana@example.com", "seller", "tok")

	rec := getPage(router, "/add-project", seller)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `value="true" checked`) {
		t.Error("navbar toggle should default on")
	}
	if !strings.Contains(body, `value="left" selected`) {
		t.Error("logo position should default to left")
	}
}

func TestCreateProjectRedirectsWithStoreName(t *testing.T) {
	router := newProjectRouter(t, projectBackend(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"s9","name":"Thread Co","slug":"thread-co"}`))
	}))
	seller := sessionCookie(t, "u1", "ana@example.com", "seller", "tok")

	rec := postForm(router, "/add-project", url.Values{"name": {"Thread Co"}}, seller)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/home?notice=") || !strings.Contains(loc, "Thread+Co") {
		t.Errorf("redirect = %q", loc)
	}
}

func TestCreateProjectMissingNameRerenders(t *testing.T) {
	router := newProjectRouter(t, projectBackend(nil))
	seller := sessionCookie(t, "u1", "ana@example.com", "seller", "tok")

	rec := postForm(router, "/add-project", url.Values{"quote": {"No name"}}, seller)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Please enter a project name") {
		t.Error("validation message missing")
	}
	if !strings.Contains(body, "No name") {
		t.Error("submitted quote lost on validation failure")
	}
}

func TestCreateProjectBackendFailureKeepsForm(t *testing.T) {
	router := newProjectRouter(t, projectBackend(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "store limit reached for the free plan", http.StatusForbidden)
	}))
	seller := sessionCookie(t, "u1", "ana@example.com", "seller", "tok")

	rec := postForm(router, "/add-project", url.Values{"name": {"One Too Many"}}, seller)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "store limit reached for the free plan") {
		t.Error("backend rejection not surfaced")
	}
	if !strings.Contains(body, `value="One Too Many"`) {
		t.Error("submitted name lost")
	}
}
