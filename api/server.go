package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/omnimart-labs/omnimart-core/api/handlers"
	"github.com/rs/zerolog/log"
)

func Serve(
	ctx context.Context,
	addr string,
	marketHandler *handlers.MarketHandler,
	statusHandler *handlers.StatusHandler,
) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/listings", marketHandler.HandleList).Methods("POST")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/listings/{listingId:[0-9]+}", marketHandler.HandleCancel).Methods("DELETE")
	r.HandleFunc("/v1/purchases", marketHandler.HandleBuy).Methods("POST")
	r.HandleFunc("/v1/purchases/batch", marketHandler.HandleBatchBuy).Methods("POST")
	r.HandleFunc("/v1/transactions/{trackingId}/status", statusHandler.HandleRequest).Methods("GET")

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
