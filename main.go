package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hallApi/clients/gcp"
	mongoclient "hallApi/clients/mongo"
	"hallApi/envvars"
	"hallApi/logging"
	"hallApi/seed"
	"hallApi/services/composer"
	"hallApi/services/customer"
	"hallApi/services/person"
	"hallApi/services/session"
	"hallApi/services/team"
	"hallApi/services/user"
	"hallApi/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}

func run() error {
	env, err := envvars.GetEnv()
	if err != nil {
		return err
	}
	logging.Setup(env.LogLevel, envvars.IsProd(env))
	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := openBackend(ctx, env)
	if err != nil {
		return err
	}
	defer closeBackend()

	server := newServer(backend, session.NewTokens(env.SessionSecret, env.SessionTTL))

	if err := seedStore(ctx, env, server); err != nil {
		slog.With("error", err.Error()).Error("failed to seed store")
	}

	r, err := NewRouter(server)
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           r,
		Addr:              "0.0.0.0:" + env.Port,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", env.Port, "store", backend.Kind())
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// openBackend connects the configured document store and returns a func releasing it.
func openBackend(ctx context.Context, env envvars.Env) (*store.Backend, func(), error) {
	var (
		backend *store.Backend
		closeFn = func() {}
	)
	switch env.StoreBackend {
	case envvars.FirestoreBackend:
		client, err := gcp.CreateFirestore(ctx, env.GCPProjectID)
		if err != nil {
			return nil, nil, err
		}
		backend = store.NewFirestoreBackend(client)
		closeFn = func() { _ = client.Close() }
	case envvars.MongoBackend:
		client, err := mongoclient.Connect(ctx, env.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		backend = store.NewMongoBackend(client.Database(env.MongoDatabase))
		closeFn = func() { _ = client.Disconnect(context.Background()) }
	case envvars.MemoryBackend:
		backend = store.NewMemoryBackend()
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", env.StoreBackend)
	}

	unique := map[string]string{
		user.Collection:     user.UserNameField,
		customer.Collection: customer.UserNameField,
	}
	for collection, field := range unique {
		if err := backend.EnsureUnique(ctx, collection, field); err != nil {
			closeFn()
			return nil, nil, err
		}
	}
	return backend, closeFn, nil
}

func newServer(backend *store.Backend, tokens *session.Tokens) Server {
	return NewServer(
		composer.NewService(store.Open[composer.Composer](backend, composer.Collection)),
		customer.NewService(store.Open[customer.Customer](backend, customer.Collection)),
		person.NewService(store.Open[person.Person](backend, person.Collection)),
		team.NewService(store.Open[team.Team](backend, team.Collection)),
		user.NewUserService(store.Open[user.User](backend, user.Collection)),
		tokens,
	)
}

// seedStore loads the fixture named by SEED_BUCKET/SEED_OBJECT or SEED_FILE, if any.
func seedStore(ctx context.Context, env envvars.Env, server Server) error {
	var r io.Reader
	switch {
	case env.SeedBucket != "":
		var buf bytes.Buffer
		if err := gcp.DownloadObject(ctx, &buf, env.SeedBucket, env.SeedObject); err != nil {
			return fmt.Errorf("failed to download seed fixture: %w", err)
		}
		r = &buf
	case env.SeedFile != "":
		f, err := os.Open(env.SeedFile)
		if err != nil {
			return fmt.Errorf("failed to open seed fixture: %w", err)
		}
		defer f.Close()
		r = f
	default:
		return nil
	}

	loader := seed.Loader{
		Composers: server.ComposerService,
		Customers: server.CustomerService,
		Persons:   server.PersonService,
		Teams:     server.TeamService,
	}
	_, err := loader.Load(ctx, r)
	return err
}
