// Package proxy implements the development CORS forwarding proxy: it accepts
// requests whose path embeds a fully-qualified target URL, forwards them with
// a fixed set of sensitive headers stripped, and relays the response verbatim
// with permissive CORS headers so browser clients can call third-party APIs
// directly during development.
package proxy

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// requiredHeaders: at least one must be present on the inbound request.
var requiredHeaders = []string{"Origin", "X-Requested-With"}

// strippedHeaders are removed from the forwarded request so cookies and the
// diagnostic header never reach the target.
var strippedHeaders = []string{"Cookie", "Cookie2", "X-Cors-Headers"}

// hopHeaders are connection-scoped and never forwarded in either direction.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Handler forwards proxied requests. The transport is injected so tests can
// substitute a fake.
type Handler struct {
	client *http.Client
}

// NewHandler creates a proxy handler.
func NewHandler(client *http.Client) *Handler {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Handler{client: client}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w, r)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	target := strings.TrimPrefix(r.URL.Path, "/")
	if target == "" {
		h.writeHelp(w)
		return
	}

	if !hasRequiredHeader(r) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Missing required request header. Must specify one of: %s\n",
			strings.ToLower(strings.Join(requiredHeaders, ",")))
		return
	}

	targetURL, err := parseTarget(target, r.URL.RawQuery)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "Invalid target URL: %v\n", err)
		return
	}

	h.forward(w, r, targetURL)
}

// parseTarget interprets the path remainder as a fully-qualified URL.
// A scheme-less target defaults to http, matching the original proxy.
func parseTarget(target, rawQuery string) (*url.URL, error) {
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "http://" + target
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("missing host in %q", target)
	}
	parsed.RawQuery = rawQuery
	return parsed, nil
}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request, target *url.URL) {
	req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to build upstream request: %v", err), http.StatusInternalServerError)
		return
	}

	// Forward the inbound headers unchanged except for the stripped set and
	// connection-scoped headers. No X-Forwarded-* headers are added: the
	// target must not be able to tell the request was proxied.
	req.Header = r.Header.Clone()
	for _, name := range strippedHeaders {
		req.Header.Del(name)
	}
	for _, name := range hopHeaders {
		req.Header.Del(name)
	}
	req.Host = target.Host

	resp, err := h.client.Do(req)
	if err != nil {
		log.Printf("[proxy] upstream request to %s failed: %v", target.Host, err)
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprintf(w, "Upstream request failed: %v\n", err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	for name, values := range resp.Header {
		if isHopHeader(name) {
			continue
		}
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[proxy] failed to relay response body from %s: %v", target.Host, err)
	}
}

func (h *Handler) writeHelp(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "CORS forwarding proxy.")
	fmt.Fprintln(w, "Usage: prefix the target URL with this server's address, e.g.")
	fmt.Fprintln(w, "  http://localhost:8080/https://api.twitter.com/2/tweets/search/recent?query=...")
	fmt.Fprintln(w, "Requests must carry an Origin or X-Requested-With header.")
}

func hasRequiredHeader(r *http.Request) bool {
	for _, name := range requiredHeaders {
		if r.Header.Get(name) != "" {
			return true
		}
	}
	return false
}

func isHopHeader(name string) bool {
	for _, hop := range hopHeaders {
		if strings.EqualFold(name, hop) {
			return true
		}
	}
	return false
}

func setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
		w.Header().Set("Access-Control-Allow-Headers", requested)
	} else {
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
	}
}

// ListenAndServe runs the proxy on host:port until the server fails.
func ListenAndServe(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	server := &http.Server{
		Addr:         addr,
		Handler:      NewHandler(nil),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("CORS proxy server running at http://%s", addr)
	return server.ListenAndServe()
}
