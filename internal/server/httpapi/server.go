// Package httpapi exposes the content API over HTTP. Every route except login
// goes through the access gate first; handlers only parse requests and shape
// responses, all decisions live in the services.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
)

type Server struct {
	address    string
	logger     logging.Logger
	users      *services.UserService
	categories *services.CategoryService
	blogs      *services.BlogService
	jwtSecret  []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, cs *services.CategoryService, bs *services.BlogService, secretKey string) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "http_server"),
		users:      us,
		categories: cs,
		blogs:      bs,
		jwtSecret:  []byte(secretKey),
	}
}

// Handler builds the route table. Exposed separately from Run so tests can
// drive the full stack through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.handleLogin)

	mux.HandleFunc("GET /users", s.withAuth(s.handleListUsers))
	mux.HandleFunc("POST /users", s.withAuth(s.handleCreateUser))
	mux.HandleFunc("PATCH /users", s.withAuth(s.handleUpdateUser))
	mux.HandleFunc("DELETE /users", s.withAuth(s.handleDeleteUser))

	mux.HandleFunc("GET /categories", s.withAuth(s.handleListCategories))
	mux.HandleFunc("POST /categories", s.withAuth(s.handleCreateCategory))
	mux.HandleFunc("PATCH /categories/{category}", s.withAuth(s.handleUpdateCategory))
	mux.HandleFunc("DELETE /categories/{category}", s.withAuth(s.handleDeleteCategory))

	mux.HandleFunc("GET /blogs", s.withAuth(s.handleListBlogs))
	mux.HandleFunc("POST /blogs", s.withAuth(s.handleCreateBlog))
	mux.HandleFunc("GET /blogs/{blog}", s.withAuth(s.handleGetBlog))
	mux.HandleFunc("PATCH /blogs/{blog}", s.withAuth(s.handleUpdateBlog))
	mux.HandleFunc("DELETE /blogs/{blog}", s.withAuth(s.handleDeleteBlog))

	return mux
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
