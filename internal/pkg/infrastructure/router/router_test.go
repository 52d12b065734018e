package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestCORSPreflight(t *testing.T) {
	is := is.New(t)

	r := New("ip-trace")
	r.Post("/trace", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/trace", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	is.True(w.Code == http.StatusOK || w.Code == http.StatusNoContent)
	is.Equal(w.Header().Get("Access-Control-Allow-Origin"), "http://example.com")
}

func TestRoutesAreServed(t *testing.T) {
	is := is.New(t)

	r := New("ip-trace")
	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	is.Equal(w.Code, http.StatusTeapot)
}

func TestCORSRejectsUnusedMethods(t *testing.T) {
	is := is.New(t)

	r := New("ip-trace")
	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/stats", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	is.Equal(w.Header().Get("Access-Control-Allow-Origin"), "")
}

func TestPanickingHandlerAnswers500(t *testing.T) {
	is := is.New(t)

	r := New("ip-trace")
	r.Post("/trace", func(w http.ResponseWriter, r *http.Request) {
		panic("nil country information")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/trace", nil))

	is.Equal(w.Code, http.StatusInternalServerError)
}
