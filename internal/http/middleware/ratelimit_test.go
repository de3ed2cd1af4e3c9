package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestSimpleRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	max := 3

	r := gin.New()
	r.GET("/test", SimpleRateLimit(max, time.Minute), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	for i := 0; i < max; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/test", BodyLimit(16), func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	})

	small := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"a":1}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, small)
	if w.Code != http.StatusOK {
		t.Fatalf("small body: status = %d, want 200", w.Code)
	}

	big := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"a":"`+strings.Repeat("x", 64)+`"}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, big)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("oversized body: status = %d, want 400", w.Code)
	}
}
