//go:build !wasm

package main

import (
	"flag"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tinywasm/fmt"

	"github.com/tinywasm/chart"
	"github.com/tinywasm/chart/definition"
	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/env"
	"github.com/tinywasm/chart/linechart"
)

func main() {
	publicDir := flag.String("public-dir", "", "Directory containing static files")
	port := flag.String("port", "", "Port to listen on")
	flag.Parse()

	// Priority: flag > env var > default
	if *port == "" {
		*port = os.Getenv("PORT")
		if *port == "" {
			*port = "4430"
		}
	}

	if *publicDir == "" {
		*publicDir = os.Getenv("PUBLIC_DIR")
		if *publicDir == "" {
			*publicDir = "public"
		}
	}

	absPublicDir, err := filepath.Abs(*publicDir)
	if err != nil {
		log.Fatalf("Error resolving public directory path: %v", err)
	}
	if _, err := os.Stat(absPublicDir); os.IsNotExist(err) {
		log.Fatalf("Static files directory does not exist: %s", absPublicDir)
	}

	env.Logger("Serving static files from:", absPublicDir)
	server := &http.Server{
		Addr:    ":" + *port,
		Handler: newMux(http.Dir(absPublicDir)),
	}

	env.Logger("Starting server on port", *port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

func newMux(public http.FileSystem) *http.ServeMux {
	// Caching is disabled so edited definitions show up on reload.
	noCache := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			h.ServeHTTP(w, r)
		})
	}

	mux := http.NewServeMux()
	mux.Handle("/", noCache(http.FileServer(public)))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is running"))
	})

	mux.Handle("/chart", noCache(http.HandlerFunc(serveChart)))
	return mux
}

// serveChart renders the chart described by the query as an html fragment:
//
//	/chart?type=pie&values=1,1,2&labels=a,b,c&title=Share&colours=red,blue
func serveChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	values, err := parseValues(q.Get("values"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := definition.File{
		Type:    q.Get("type"),
		Title:   q.Get("title"),
		Values:  values,
		Labels:  splitList(q.Get("labels")),
		Colours: compact(splitList(q.Get("colours"))),
	}
	if f.Type == "" {
		f.Type = chart.BarVertical.String()
	}

	m, err := f.Model()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	root, err := m.Render(chart.WithLineRenderer(linechart.New()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := element.WriteHTML(w, root); err != nil {
		env.Logger("chart: write failed:", err)
	}
}

// splitList splits a comma separated query value. Empty fields keep their
// position so labels stay paired with their values.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := fmt.Convert(s).Split(",")
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = fmt.Convert(part).TrimSpace().String()
	}
	return out
}

func compact(list []string) []string {
	var out []string
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseValues(s string) ([]float64, error) {
	parts := splitList(s)
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errf("invalid value %q at position %d", p, i)
		}
		out[i] = v
	}
	return out, nil
}
