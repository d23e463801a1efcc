package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterBurstThenDenies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, 3)
	router := gin.New()
	router.POST("/login", rl.Handler(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	hit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		if code := hit(); code != http.StatusOK {
			t.Fatalf("request %d within burst got %d", i+1, code)
		}
	}
	if code := hit(); code != http.StatusTooManyRequests {
		t.Fatalf("request past burst got %d, want 429", code)
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, 1)
	router := gin.New()
	router.POST("/login", rl.Handler(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	if hit("10.0.0.1:1") != http.StatusOK {
		t.Fatal("first client blocked immediately")
	}
	if hit("10.0.0.1:1") != http.StatusTooManyRequests {
		t.Fatal("first client not throttled after burst")
	}
	if hit("10.0.0.2:1") != http.StatusOK {
		t.Fatal("second client throttled by the first client's bucket")
	}
}
