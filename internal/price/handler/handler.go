package handler

import (
	"context"
	"net/http"
)

const (
	msgNoData   = "No data available"
	msgNotFound = "Not Found"
)

type PriceReader interface {
	Latest(ctx context.Context) ([]byte, error)
}

type Handler struct {
	service PriceReader
}

func NewPriceHandler(service PriceReader) *Handler {
	return &Handler{service: service}
}

func writeText(w http.ResponseWriter, statusCode int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(msg))
}
