package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/restaurant-site/services"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestSessionMiddlewareCreatesSession(t *testing.T) {
	store := services.NewSessionStore(0)
	r := newTestEngine()
	r.Use(SessionMiddleware(store))
	r.GET("/whoami", func(c *gin.Context) {
		session, err := CurrentSession(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, session.ID)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(SessionHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, 1, store.Len())

	// Request kedua dengan header yang sama memakai session yang sama
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, 1, store.Len())
}

func TestSessionMiddlewareUnknownID(t *testing.T) {
	store := services.NewSessionStore(0)
	r := newTestEngine()
	r.Use(SessionMiddleware(store))
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, "does-not-exist")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, store.Len())
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	r := newTestEngine()
	r.Use(NewRateLimiter(2, time.Minute).RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestStrictRateLimiter(t *testing.T) {
	r := newTestEngine()
	r.Use(NewStrictRateLimiter(time.Hour, 1))
	r.POST("/orders", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestEngine()
	r.Use(CORSMiddlewares("http://localhost:5173"))
	r.GET("/menu", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/menu", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), SessionHeader)
}

func TestSecurityHeaders(t *testing.T) {
	r := newTestEngine()
	r.Use(SecurityHeaders(false), NoStore())
	r.GET("/menu", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestSessionMiddlewareExpiredSession(t *testing.T) {
	store := services.NewSessionStore(time.Millisecond)
	r := newTestEngine()
	r.Use(SessionMiddleware(store))
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	session := store.Create()
	time.Sleep(20 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, session.ID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, store.Len())
}

func TestRateLimiterForgetsIdleIPs(t *testing.T) {
	limiter := NewRateLimiter(5, 200*time.Millisecond)
	r := newTestEngine()
	r.Use(limiter.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:4000", i/250, i%250+1)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	assert.Equal(t, 100, limiter.Len())

	time.Sleep(250 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.1.0.1:4000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, limiter.Len())
}

func TestRateLimiterDoesNotBlockDuringHandler(t *testing.T) {
	r := newTestEngine()
	r.Use(NewRateLimiter(50, time.Second).RateLimit())

	entered := make(chan struct{})
	release := make(chan struct{})
	r.GET("/socket", func(c *gin.Context) {
		close(entered)
		<-release
		c.Status(http.StatusOK)
	})
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	go r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/socket", nil))
	<-entered
	defer close(release)

	done := make(chan int, 1)
	go func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		done <- w.Code
	}()

	select {
	case code := <-done:
		assert.Equal(t, http.StatusOK, code)
	case <-time.After(2 * time.Second):
		t.Fatal("request blocked while another handler was running")
	}
}
