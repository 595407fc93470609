package zohorecruit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeVendor serves the OAuth endpoint and whatever Recruit routes a test adds
type fakeVendor struct {
	t   *testing.T
	srv *httptest.Server

	mu          sync.Mutex
	tokenCalls  int
	tokenStatus int
	tokenBody   string
	routes      map[string]http.HandlerFunc
	hits        map[string]int
	bodies      map[string][]map[string]any
}

func newFakeVendor(t *testing.T) *fakeVendor {
	t.Helper()

	fv := &fakeVendor{
		t:           t,
		tokenStatus: http.StatusOK,
		routes:      make(map[string]http.HandlerFunc),
		hits:        make(map[string]int),
		bodies:      make(map[string][]map[string]any),
	}
	fv.srv = httptest.NewServer(http.HandlerFunc(fv.serve))
	t.Cleanup(fv.srv.Close)

	return fv
}

func (fv *fakeVendor) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/oauth/v2/token" {
		fv.serveToken(w, r)
		return
	}

	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/recruit/v2")

	fv.mu.Lock()
	fv.hits[key]++
	handler, ok := fv.routes[key]
	if r.Body != nil {
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			var body map[string]any
			if err := json.Unmarshal(raw, &body); err == nil {
				fv.bodies[key] = append(fv.bodies[key], body)
			}
		}
	}
	fv.mu.Unlock()

	if got := r.Header.Get("Authorization"); !strings.HasPrefix(got, "Zoho-oauthtoken tok-") {
		fv.t.Errorf("%s: unexpected Authorization header %q", key, got)
	}

	if !ok {
		http.Error(w, `{"code":"INVALID_URL_PATTERN"}`, http.StatusNotFound)
		return
	}
	handler(w, r)
}

func (fv *fakeVendor) serveToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fv.t.Errorf("token: parse form: %v", err)
	}
	if r.PostForm.Get("grant_type") != "refresh_token" || r.PostForm.Get("refresh_token") != "refresh-1" {
		fv.t.Errorf("token: unexpected form %v", r.PostForm)
	}
	if r.PostForm.Get("client_id") != "client-1" || r.PostForm.Get("client_secret") != "secret-1" {
		fv.t.Errorf("token: client credentials not sent in params: %v", r.PostForm)
	}

	fv.mu.Lock()
	fv.tokenCalls++
	n := fv.tokenCalls
	status := fv.tokenStatus
	body := fv.tokenBody
	fv.mu.Unlock()

	if body == "" {
		body = fmt.Sprintf(`{"access_token":"tok-%d","token_type":"Bearer","expires_in":3600}`, n)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (fv *fakeVendor) handle(method, path string, h http.HandlerFunc) {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	fv.routes[method+" "+path] = h
}

func (fv *fakeVendor) hitCount(method, path string) int {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	return fv.hits[method+" "+path]
}

func (fv *fakeVendor) tokenCount() int {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	return fv.tokenCalls
}

func (fv *fakeVendor) lastBody(method, path string) map[string]any {
	fv.mu.Lock()
	defer fv.mu.Unlock()
	bodies := fv.bodies[method+" "+path]
	if len(bodies) == 0 {
		return nil
	}
	return bodies[len(bodies)-1]
}

func (fv *fakeVendor) config() Config {
	return Config{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RefreshToken: "refresh-1",
		BaseURL:      fv.srv.URL + "/recruit/v2",
		AuthURL:      fv.srv.URL + "/oauth/v2/token",
		HTTPClient:   fv.srv.Client(),
	}
}

func (fv *fakeVendor) client(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(fv.config())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

// fakeClock is a settable time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// pageHandler serves one body per page query value
func pageHandler(t *testing.T, pages map[string]func(http.ResponseWriter)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if r.URL.Query().Get("per_page") == "" {
			t.Errorf("per_page missing on page %s", page)
		}
		serve, ok := pages[page]
		if !ok {
			t.Errorf("unexpected page %q requested", page)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		serve(w)
	}
}

func asError(err error, target **Error) bool {
	return errors.As(err, target)
}
