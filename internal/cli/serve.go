package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/alansaviolobo/atlaskit/pkg/attribution"
	"github.com/alansaviolobo/atlaskit/pkg/cache"
	"github.com/alansaviolobo/atlaskit/pkg/catalog"
	apperrors "github.com/alansaviolobo/atlaskit/pkg/errors"
	"github.com/alansaviolobo/atlaskit/pkg/layers"
	"github.com/alansaviolobo/atlaskit/pkg/permalink"
	"github.com/alansaviolobo/atlaskit/pkg/share"
)

// maxBodySize caps request bodies. Layer lists and snapshots are small;
// anything bigger is abuse.
const maxBodySize = 1 << 20

// serveCommand creates the serve command, exposing the engine over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layer engine HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServer(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")

	return cmd
}

func (c *CLI) runServer(ctx context.Context, addr string) error {
	byteCache := c.newServeCache(ctx)
	defer func() {
		if err := byteCache.Close(); err != nil {
			c.Logger.Warn("closing cache", "error", err)
		}
	}()

	doc, err := c.serveCatalog(ctx, byteCache)
	if err != nil {
		c.Logger.Warn("catalog unavailable, serving built-in defaults", "error", err)
		doc = catalog.Default()
	}

	store, err := c.newShareStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			c.Logger.Warn("closing share store", "error", err)
		}
	}()

	s := &server{
		logger:  c.Logger,
		catalog: doc,
		shares:  store,
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newShareStore picks the share backend: MongoDB when configured,
// otherwise files on disk.
func (c *CLI) newShareStore(ctx context.Context) (share.Store, error) {
	if uri := c.Config.Serve.MongoURI; uri != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return share.NewMongoStore(connectCtx, share.MongoConfig{URI: uri})
	}
	return share.NewFileStore(c.Config.Serve.ShareDir)
}

// newServeCache picks the catalog cache for the server: Redis when
// configured, otherwise the local file cache.
func (c *CLI) newServeCache(ctx context.Context) cache.Cache {
	if addr := c.Config.Serve.RedisAddr; addr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: addr})
		if err != nil {
			c.Logger.Warn("redis unavailable, using file cache", "error", err)
		} else {
			return rc
		}
	}
	return c.newCache(false)
}

// serveCatalog resolves the catalog served by the API, using the server
// cache for remote fetches.
func (c *CLI) serveCatalog(ctx context.Context, byteCache cache.Cache) (*catalog.Document, error) {
	if c.Config.Catalog.File != "" {
		return catalog.Load(c.Config.Catalog.File)
	}
	if c.Config.Catalog.URL != "" {
		fetcher := catalog.NewFetcher(c.Config.Catalog.URL, byteCache, c.Logger)
		return fetcher.FetchOrDefault(ctx), nil
	}
	return catalog.Default(), nil
}

// server holds the HTTP handler state. The catalog document and share
// store are safe for concurrent readers; attribution reconcilers are
// built per request.
type server struct {
	logger  *log.Logger
	catalog *catalog.Document
	shares  share.Store
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/types", s.handleListTypes)
		r.Get("/types/{type}", s.handleGetType)
		r.Get("/types/{type}/template", s.handleGetTemplate)
		r.Post("/validate", s.handleValidate)
		r.Get("/decode", s.handleDecode)
		r.Post("/encode", s.handleEncode)
		r.Get("/catalog", s.handleCatalog)
		r.Post("/share", s.handleCreateShare)
		r.Get("/share/{id}", s.handleGetShare)
		r.Delete("/share/{id}", s.handleDeleteShare)
		r.Post("/attribution", s.handleAttribution)
	})

	return r
}

func (s *server) handleListTypes(w http.ResponseWriter, r *http.Request) {
	type typeOut struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	names := layers.Types()
	out := make([]typeOut, 0, len(names))
	for _, name := range names {
		spec, _ := layers.Spec(name)
		out = append(out, typeOut{Name: spec.Name, Description: spec.Description})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *server) handleGetType(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "type")
	spec, ok := layers.Spec(name)
	if !ok {
		s.writeError(w, apperrors.New(apperrors.ErrCodeUnknownLayerType, "unknown layer type %q", name))
		return
	}
	s.writeJSON(w, http.StatusOK, spec)
}

func (s *server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	cfg, err := layers.Template(chi.URLParam(r, "type"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, cfg)
}

// handleValidate accepts a single layer configuration as the request
// body, in strict or loose JSON, and returns the validation result.
func (s *server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "failed to read request body"))
		return
	}

	cfg, err := layers.ParseConfig(string(body))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layers.Validate(cfg))
}

func (s *server) handleDecode(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Query().Get("layers")
	if param == "" {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "missing layers query parameter"))
		return
	}

	type refOut struct {
		ID     string         `json:"id"`
		Inline bool           `json:"inline"`
		Config *layers.Config `json:"config,omitempty"`
		Result *layers.Result `json:"result,omitempty"`
	}

	refs := permalink.Decode(param)
	out := make([]refOut, 0, len(refs))
	for _, ref := range refs {
		o := refOut{ID: ref.ID, Inline: ref.IsInline(), Config: ref.Config}
		if ref.IsInline() {
			res := layers.Validate(ref.Config)
			o.Result = &res
		}
		out = append(out, o)
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handleEncode accepts a JSON array whose elements are bare id strings
// or inline layer objects, and returns the encoded layers parameter.
func (s *server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var entries []json.RawMessage
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&entries); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "request body must be a JSON array"))
		return
	}

	refs := make([]permalink.Reference, 0, len(entries))
	for _, entry := range entries {
		var id string
		if err := json.Unmarshal(entry, &id); err == nil {
			refs = append(refs, permalink.Bare(id))
			continue
		}

		var cfg layers.Config
		if err := json.Unmarshal(entry, &cfg); err != nil {
			s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidReference, err, "reference entry must be a string or object"))
			return
		}
		refs = append(refs, permalink.Inline(&cfg))
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"layers": permalink.Encode(refs)})
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog)
}

func (s *server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Layers string `json:"layers"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid share request"))
		return
	}

	set, err := share.New(req.Name, req.Layers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.shares.Put(r.Context(), set); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to store share"))
		return
	}
	s.writeJSON(w, http.StatusCreated, set)
}

func (s *server) handleGetShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	set, err := s.shares.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, share.ErrNotFound) {
			s.writeError(w, apperrors.New(apperrors.ErrCodeShareNotFound, "share %q not found", id))
			return
		}
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to load share"))
		return
	}
	s.writeJSON(w, http.StatusOK, set)
}

func (s *server) handleDeleteShare(w http.ResponseWriter, r *http.Request) {
	if err := s.shares.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to delete share"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAttribution computes the attribution string for a posted engine
// snapshot. The request carries the registered entries so the endpoint
// stays stateless; a fresh reconciler is built per call.
func (s *server) handleAttribution(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Entries []struct {
			ID          string `json:"id"`
			Attribution string `json:"attribution"`
		} `json:"entries"`
		Snapshot attribution.Snapshot `json:"snapshot"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid attribution request"))
		return
	}

	rec := attribution.New(nil)
	for _, e := range req.Entries {
		rec.Register(e.ID, e.Attribution)
	}

	fragments := rec.Fragments(req.Snapshot)
	if fragments == nil {
		fragments = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"text":      rec.Reconcile(req.Snapshot),
		"fragments": fragments,
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write response", "error", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	s.writeJSON(w, statusForCode(code), map[string]string{
		"code":  string(code),
		"error": apperrors.UserMessage(err),
	})
}

func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidLayer,
		apperrors.ErrCodeInvalidReference,
		apperrors.ErrCodeRepairFailed,
		apperrors.ErrCodeMalformedFragment:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnknownLayerType,
		apperrors.ErrCodeNotFound,
		apperrors.ErrCodeLayerNotFound,
		apperrors.ErrCodeShareNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
