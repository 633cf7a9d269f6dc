package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"fraibot/repositories"
)

// StartHealthServer exposes the liveness probe plus a read-only view of the
// delivery log. It runs on its own mux and port and shares no lock or worker
// pool with the bot, so a stuck batch can never fail a health check.
func StartHealthServer(deliveries repositories.IDeliveryLog, port int, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_, _ = w.Write([]byte("OK"))
		}
	})

	mux.HandleFunc("/deliveries", func(w http.ResponseWriter, r *http.Request) {
		batchID, err := uuid.Parse(r.URL.Query().Get("batch"))
		if err != nil {
			http.Error(w, "batch query parameter must be a batch UUID", http.StatusBadRequest)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		records, err := deliveries.List(batchID, limit)
		if err != nil {
			log.Error("Failed to list deliveries", "batch", batchID, "error", err)
			http.Error(w, "delivery log unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Health server stopped", "error", err)
		}
	}()
	return server
}
