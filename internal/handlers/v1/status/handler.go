package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// pinger reports whether the database is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Storage pinger
}

func NewHandler(db pinger) Handler {
	return Handler{Storage: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	stop := logData.AddTiming("pingMs")
	err := h.Storage.Ping(req.Context())
	stop()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
