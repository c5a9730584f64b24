package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandler_Deny_AnyMethodAndPath(t *testing.T) {
	h := NewSplashHandler()

	methods := []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete, "PURGE"}
	targets := []string{"/", "/splash.png", "/images/a.png?size=large", "/prices"}

	for _, method := range methods {
		for _, target := range targets {
			rr := httptest.NewRecorder()
			h.Deny(rr, httptest.NewRequest(method, target, strings.NewReader("body")))

			require.Equal(t, http.StatusForbidden, rr.Code, method+" "+target)
			require.Equal(t, denyMessage, rr.Body.String(), method+" "+target)
			require.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
		}
	}
}

func TestHandler_Deny_EmptyPath(t *testing.T) {
	h := NewSplashHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = ""
	rr := httptest.NewRecorder()
	h.Deny(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.True(t, strings.HasPrefix(rr.Body.String(), "Don't Panic!"))
}
