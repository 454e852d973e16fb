package http

import (
	"cmp"
	"fmt"
	"maps"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// compressionLevel is the gzip level used when the descriptor enables
	// compression.
	compressionLevel = 5
	// internalPrefix hosts the preview server's own endpoints.
	internalPrefix = "/__devserver"
)

// Init builds the router of the preview server.
func (h *Handler) Init() (*chi.Mux, error) {
	if h.devServer == nil {
		return nil, ErrNoDevServer
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.CleanPath)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.devServer.Compress {
		router.Use(middleware.Compress(compressionLevel))
	}

	router.Route(internalPrefix, func(r chi.Router) {
		r.Get("/health", h.getHealth)
		r.Get("/version", h.getServerVersion)
	})

	// longer contexts first, so /api/v2 wins over /api
	contexts := slices.SortedFunc(maps.Keys(h.devServer.Proxy), func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})
	proxied := make(map[string]bool, len(contexts))
	for _, context := range contexts {
		proxy, err := h.newProxy(context, h.devServer.Proxy[context])
		if err != nil {
			return nil, fmt.Errorf("error creating proxy for %q: %w", context, err)
		}
		context = "/" + strings.Trim(context, "/")
		proxied[context] = true
		router.Handle(context, proxy)
		router.Handle(context+"/*", proxy)
	}

	publicPath := h.publicPath()
	if h.opts.StaticDir != "" && h.opts.AssetsSubDirectory != "" {
		assetsPath := path.Join(publicPath, h.opts.AssetsSubDirectory)
		router.Handle(assetsPath+"/*", h.staticAssets(assetsPath))
	}

	app, err := h.appHandler(publicPath)
	if err != nil {
		return nil, err
	}
	router.Handle(strings.TrimSuffix(publicPath, "/")+"/*", app)
	if bare := strings.TrimSuffix(publicPath, "/"); bare != "" && !proxied[bare] {
		router.Handle(bare, redirectTo(publicPath))
	}

	router.MethodNotAllowed(methodNotAllowed(router))

	return router, nil
}

// publicPath is the descriptor's public path with leading and trailing
// slashes.
func (h *Handler) publicPath() string {
	p := path.Clean("/" + h.devServer.PublicPath)
	if p == "/" {
		return p
	}
	return p + "/"
}

// redirectTo permanently redirects to target, keeping the query string.
func redirectTo(target string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		location := target
		if r.URL.RawQuery != "" {
			location += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, location, http.StatusMovedPermanently)
	})
}
