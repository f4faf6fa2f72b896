package node

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/SystemBuilders/SortList/internal/liststore"
	"github.com/SystemBuilders/SortList/internal/routing"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// NewServer returns the http server serving the store on the
// address of cfg.
func NewServer(s liststore.Store, cfg Config) (*http.Server, error) {
	if err := checkValidPort(cfg.Port()); err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router = routing.SetupRouting(s, router)

	return &http.Server{
		Handler: router,
		Addr:    Addr(cfg),
	}, nil
}

// Start begins the node's operation as a http server. It serves
// until ctx is done, then shuts the server down, giving the
// requests in flight some time to complete.
func Start(ctx context.Context, s liststore.Store, cfg Config, log zerolog.Logger) error {
	server, err := NewServer(s, cfg)
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}
	return serve(ctx, server, ln, log)
}

func serve(ctx context.Context, server *http.Server, ln net.Listener, log zerolog.Logger) error {
	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("starting server")
		errs <- server.Serve(ln)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	// Create a deadline to wait for currently serving items.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info().Msg("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
