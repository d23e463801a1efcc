package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shopper-front/config"
	"shopper-front/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}
	os.Exit(m.Run())
}

func authedRouter() *gin.Engine {
	router := gin.New()
	router.GET("/private", AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserEmail))
	})
	router.GET("/dashboard", AuthMiddleware(), SellerMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	router.GET("/public", OptionalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserID))
	})
	return router
}

func request(router http.Handler, path, cookieValue string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareRedirectsAnonymous(t *testing.T) {
	rec := request(authedRouter(), "/private", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect = %q", loc)
	}
}

func TestAuthMiddlewareDropsInvalidCookie(t *testing.T) {
	rec := request(authedRouter(), "/private", "not-a-token")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	found := false
	for _, sc := range rec.Header().Values("Set-Cookie") {
		if len(sc) > 0 {
			found = true
		}
	}
	if !found {
		t.Error("invalid cookie should be cleared")
	}
}

func TestAuthMiddlewarePassesIdentity(t *testing.T) {
	token, err := utils.GenerateSessionToken("u1", "ana@example.com", "seller", "tok")
	if err != nil {
		t.Fatal(err)
	}
	rec := request(authedRouter(), "/private", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "ana@example.com" {
		t.Errorf("identity = %q", rec.Body.String())
	}
}

func TestSellerMiddlewareRedirectsClients(t *testing.T) {
	token, err := utils.GenerateSessionToken("u2", "bob@example.com", "client", "tok2")
	if err != nil {
		t.Fatal(err)
	}
	rec := request(authedRouter(), "/dashboard", token)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/store-explorer" {
		t.Errorf("redirect = %q", loc)
	}
}

func TestOptionalAuthNeverBlocks(t *testing.T) {
	rec := request(authedRouter(), "/public", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous public request got %d", rec.Code)
	}
	rec = request(authedRouter(), "/public", "garbage")
	if rec.Code != http.StatusOK {
		t.Fatalf("garbage cookie blocked a public page: %d", rec.Code)
	}

	token, err := utils.GenerateSessionToken("u1", "a@b.com", "client", "tok")
	if err != nil {
		t.Fatal(err)
	}
	rec = request(authedRouter(), "/public", token)
	if rec.Body.String() != "u1" {
		t.Errorf("identity not attached: %q", rec.Body.String())
	}
}
