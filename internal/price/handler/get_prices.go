package handler

import (
	"errors"
	"net/http"
	"pricesplash/internal/domain"

	"github.com/sirupsen/logrus"
)

// GetPrices godoc
// @Summary Latest crypto prices
// @Description Returns the most recent BTC, ETH, SOL and SUI prices in USD and EUR, exactly as cached
// @Tags Prices
// @Produce json
// @Success 200 {object} domain.PriceSnapshot
// @Failure 404 {string} string "No data available"
// @Router /prices [get]
func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	payload, err := h.service.Latest(r.Context())
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetPrices", "key": domain.LatestPricesKey}).Error("couldn't read price snapshot")
		}
		writeText(w, http.StatusNotFound, msgNoData)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusNotFound, msgNotFound)
}
