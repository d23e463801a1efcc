package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shopper-front/backend"
	"shopper-front/config"
	"shopper-front/controllers"
	"shopper-front/middleware"
	"shopper-front/session"
	"shopper-front/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		AppEnv:        "test",
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		MaxUploadSize: 1 << 20,
		StoreCacheTTL: time.Minute,
	}
	os.Exit(m.Run())
}

// newHarness wires a gin engine with the real templates against a stub
// backend server.
func newHarness(t *testing.T, backendHandler http.Handler) (*gin.Engine, *backend.Client, *session.Cache) {
	t.Helper()
	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	api := backend.New(srv.URL, 5*time.Second)
	sessions := session.NewCache(api)

	router := gin.New()
	router.SetFuncMap(controllers.TemplateFuncs())
	router.LoadHTMLGlob("../views/*.html")
	return router, api, sessions
}

// sessionCookie mints a signed cookie for test requests.
func sessionCookie(t *testing.T, userID, email, role, backendToken string) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateSessionToken(userID, email, role, backendToken)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}
