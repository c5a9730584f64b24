package handler

import "net/http"

const denyMessage = "Don't Panic! The answer to life, the universe, and everything is 42, not your random image request! 🚀😜"

type Handler struct{}

func NewSplashHandler() *Handler {
	return &Handler{}
}

// Deny godoc
// @Summary Splash endpoint
// @Description Every request is refused; the rotated image is served straight from the bucket
// @Tags Splash
// @Produce plain
// @Param path path string true "Any path"
// @Failure 403 {string} string "Don't Panic!"
// @Router /{path} [get]
func (h *Handler) Deny(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(denyMessage))
}
