// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const indexHTML = "index.html"

type rewrite struct {
	from *regexp.Regexp
	to   string
}

// appHandler serves the bundler output under publicPath. Navigation
// requests that match no file are answered by the history API fallback.
func (h *Handler) appHandler(publicPath string) (http.Handler, error) {
	rewrites, err := h.historyRewrites(publicPath)
	if err != nil {
		return nil, err
	}
	fsys := os.DirFS(h.opts.ServeDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, strings.TrimSuffix(publicPath, "/"))
		name = path.Clean("/" + name)

		info, err := fs.Stat(fsys, fsName(name))
		if err == nil && (!info.IsDir() || hasIndex(fsys, name)) {
			h.serveFile(w, r, fsys, name)
			return
		}

		if target, ok := fallbackTarget(r, rewrites); ok {
			h.logger.Debug().Str("from", r.URL.Path).Str("to", target).Msg("history api fallback")
			target = strings.TrimPrefix(target, strings.TrimSuffix(publicPath, "/"))
			h.serveFile(w, r, fsys, path.Clean("/"+target))
			return
		}

		if err == nil {
			err = fs.ErrNotExist
		}
		h.writeError(w, r, err)
	}), nil
}

// staticAssets serves the static directory under assetsPath, refusing files
// that match an ignore glob.
func (h *Handler) staticAssets(assetsPath string) http.Handler {
	fsys := os.DirFS(h.opts.StaticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + strings.TrimPrefix(r.URL.Path, assetsPath))
		if h.ignored(name) {
			h.writeError(w, r, fmt.Errorf("%s: %w", name, ErrIgnoredFile))
			return
		}
		h.serveFile(w, r, fsys, name)
	})
}

// ignored reports whether any segment of name matches an ignore glob.
func (h *Handler) ignored(name string) bool {
	rel := strings.TrimPrefix(name, "/")
	for _, glob := range h.opts.Ignore {
		for _, pattern := range []string{"**/" + glob, "**/" + glob + "/**"} {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return true
			}
		}
	}
	return false
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, fsys fs.FS, name string) {
	info, err := fs.Stat(fsys, fsName(name))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if info.IsDir() {
		if !hasIndex(fsys, name) {
			h.writeError(w, r, fs.ErrNotExist)
			return
		}
		name = path.Join(name, indexHTML)
	}

	f, err := fsys.Open(fsName(name))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	content, ok := f.(io.ReadSeeker)
	if !ok {
		h.writeError(w, r, fmt.Errorf("%s: %w", name, fs.ErrInvalid))
		return
	}
	http.ServeContent(w, r, name, stat.ModTime(), content)
}

func (h *Handler) historyRewrites(publicPath string) ([]rewrite, error) {
	var rewrites []rewrite
	if h.devServer.HistoryAPIFallback != nil {
		for _, rw := range h.devServer.HistoryAPIFallback.Rewrites {
			from, err := regexp.Compile(rw.From)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrInvalidRewrite, rw.From, err)
			}
			rewrites = append(rewrites, rewrite{from: from, to: rw.To})
		}
	}

	if len(rewrites) == 0 {
		rewrites = append(rewrites, rewrite{
			from: regexp.MustCompile(".*"),
			to:   path.Join(publicPath, indexHTML),
		})
	}
	return rewrites, nil
}

// fallbackTarget applies the history API fallback to navigation requests:
// GET or HEAD, accepting HTML, for a path without a file extension.
func fallbackTarget(r *http.Request, rewrites []rewrite) (string, bool) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return "", false
	}
	if !acceptsHTML(r.Header.Get("Accept")) {
		return "", false
	}
	if path.Ext(r.URL.Path) != "" {
		return "", false
	}

	for _, rw := range rewrites {
		if rw.from.MatchString(r.URL.Path) {
			return rw.to, true
		}
	}
	return "", false
}

func acceptsHTML(accept string) bool {
	if accept == "" {
		return false
	}
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}

func hasIndex(fsys fs.FS, dir string) bool {
	info, err := fs.Stat(fsys, fsName(path.Join(dir, indexHTML)))
	return err == nil && !info.IsDir()
}

// fsName converts a cleaned URL path into an fs.FS name.
func fsName(name string) string {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}
