// Package fakecms is an in-memory stand-in for the CMS backend. It speaks the
// same envelope protocol and is used by tests of the client and the CLI.
package fakecms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Record is one stored entity.
type Record map[string]any

// Recorded captures the parts of an incoming request tests assert on.
type Recorded struct {
	Method      string
	Path        string
	Header      http.Header
	ContentType string
	Fields      map[string][]string
	Files       map[string][]string
}

// Server is a running fake backend. Create with New and stop with Close.
type Server struct {
	*httptest.Server

	// Token is issued on login and required once SetRequireAuth(true).
	Token       string
	requireAuth atomic.Bool

	mu       sync.Mutex
	users    map[string]string
	data     map[string]map[string]Record
	order    map[string][]string
	requests []Recorded
}

// Collections served by the backend.
var Collections = []string{"category", "product", "catalogue", "cordless", "gallery", "instagram", "article"}

// New starts a fake backend with one staff account (email/password).
func New(email, password string) *Server {
	s := &Server{
		Token: "token-" + uuid.NewString(),
		users: map[string]string{email: password},
		data:  map[string]map[string]Record{},
		order: map[string][]string{},
	}
	for _, c := range Collections {
		s.data[c] = map[string]Record{}
	}

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/validate-token", s.handleValidate).Methods(http.MethodGet)
	r.HandleFunc("/plain/{status:[0-9]+}", s.handlePlain)

	api := r.NewRoute().Subrouter()
	api.Use(s.authenticate)
	api.HandleFunc("/{collection}", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/{collection}", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/{collection}/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/{collection}/{id}", s.handleUpdate).Methods(http.MethodPatch, http.MethodPut)
	api.HandleFunc("/{collection}/{id}", s.handleDelete).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// Seed stores rec in collection under rec["id"], generating an id when
// missing. It returns the id.
func (s *Server) Seed(collection string, rec Record) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(collection, rec)
}

// SetRequireAuth makes the content routes answer 401 unless the request
// carries the issued token.
func (s *Server) SetRequireAuth(on bool) { s.requireAuth.Store(on) }

// Requests returns every request received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

// LastRequest returns the most recent request, or the zero value.
func (s *Server) LastRequest() Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Recorded{}
	}
	return s.requests[len(s.requests)-1]
}

// Count returns how many records collection holds.
func (s *Server) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data[collection])
}

func (s *Server) insertLocked(collection string, rec Record) string {
	id, _ := rec["id"].(string)
	if id == "" {
		id = uuid.NewString()
		rec["id"] = id
	}
	if _, exists := s.data[collection][id]; !exists {
		s.order[collection] = append(s.order[collection], id)
	}
	s.data[collection][id] = rec
	return id
}

// ------------------------- handlers -------------------------

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeEnvelope(w, http.StatusBadRequest, "Invalid body", nil)
		return
	}
	s.mu.Lock()
	want, ok := s.users[creds.Email]
	s.mu.Unlock()
	if !ok || want != creds.Password {
		writeEnvelope(w, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}
	writeEnvelope(w, http.StatusOK, "Login successful", map[string]any{
		"token": s.Token,
		"user":  map[string]any{"id": "u1", "name": "Staff", "email": creds.Email, "token": s.Token},
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if bearer(r) != s.Token {
		writeEnvelope(w, http.StatusOK, "Token invalid", map[string]any{"valid": false})
		return
	}
	writeEnvelope(w, http.StatusOK, "Token valid", map[string]any{
		"valid": true,
		"user":  map[string]any{"id": "u1", "name": "Staff"},
	})
}

// handlePlain answers with a text/plain body and the requested status.
func (s *Server) handlePlain(w http.ResponseWriter, r *http.Request) {
	status, err := strconv.Atoi(mux.Vars(r)["status"])
	if err != nil || status < 100 || status > 599 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collection(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	items := make([]Record, 0, len(s.order[collection]))
	for _, id := range s.order[collection] {
		if rec, ok := s.data[collection][id]; ok {
			items = append(items, rec)
		}
	}
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "OK", items)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collection(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	rec, found := s.data[collection][mux.Vars(r)["id"]]
	s.mu.Unlock()
	if !found {
		// The backend reports missing records inside a 200 response.
		writeEnvelope(w, http.StatusOK, "Not found", nil, http.StatusNotFound)
		return
	}
	writeEnvelope(w, http.StatusOK, "OK", rec)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collection(w, r)
	if !ok {
		return
	}
	fields, files, err := readBody(r)
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if msg := missingRequired(collection, fields, files); msg != "" {
		writeEnvelope(w, http.StatusOK, "Validation failed", map[string]string{"error": msg}, http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	rec := Record{}
	s.applyLocked(collection, rec, fields, files)
	s.insertLocked(collection, rec)
	s.mu.Unlock()
	writeEnvelope(w, http.StatusCreated, "Created", rec)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collection(w, r)
	if !ok {
		return
	}
	fields, files, err := readBody(r)
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, found := s.data[collection][mux.Vars(r)["id"]]
	if !found {
		writeEnvelope(w, http.StatusNotFound, "Not found", nil)
		return
	}
	delete(fields, "id")
	s.applyLocked(collection, rec, fields, files)
	writeEnvelope(w, http.StatusOK, "Updated", rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	collection, ok := s.collection(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	_, found := s.data[collection][id]
	if found {
		delete(s.data[collection], id)
		s.order[collection] = removeID(s.order[collection], id)
	}
	s.mu.Unlock()
	if !found {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
		return
	}
	writeEnvelope(w, http.StatusOK, "Deleted", nil)
}

// ------------------------- helpers -------------------------

func (s *Server) collection(w http.ResponseWriter, r *http.Request) (string, bool) {
	c := mux.Vars(r)["collection"]
	s.mu.Lock()
	_, ok := s.data[c]
	s.mu.Unlock()
	if !ok {
		writeEnvelope(w, http.StatusNotFound, "Cannot "+r.Method+" /"+c, nil)
		return "", false
	}
	return c, true
}

// applyLocked copies request fields onto rec using the backend's field
// names for uploaded files.
func (s *Server) applyLocked(collection string, rec Record, fields map[string]string, files map[string][]string) {
	for k, v := range fields {
		rec[k] = v
	}
	switch collection {
	case "category", "gallery", "instagram":
		if f := files["file"]; len(f) > 0 {
			rec["image"] = f[0]
		}
	case "catalogue":
		if f := files["file"]; len(f) > 0 {
			rec["file"] = f[0]
		}
	case "article":
		if f := files["file"]; len(f) > 0 {
			rec["primaryImage"] = f[0]
		}
		if raw, ok := fields["metaTags"]; ok {
			var tags map[string]string
			if json.Unmarshal([]byte(raw), &tags) == nil {
				rec["metaTags"] = tags
			}
		}
		if title, ok := fields["title"]; ok {
			rec["slug"] = strings.ToLower(strings.Join(strings.Fields(title), "-"))
		}
	case "product":
		if f := files["files"]; len(f) > 0 {
			rec["images"] = append([]string(nil), f...)
		} else if _, ok := rec["images"]; !ok {
			rec["images"] = []string{}
		}
	}
	switch collection {
	case "gallery":
		rec["type"] = "web"
	case "instagram":
		rec["type"] = "instagram"
	case "product", "catalogue":
		if id, ok := rec["categoryId"].(string); ok {
			if cat, ok := s.data["category"][id]; ok {
				rec["category"] = Record{"id": cat["id"], "name": cat["name"], "image": cat["image"]}
			}
		}
	}
}

func missingRequired(collection string, fields map[string]string, files map[string][]string) string {
	required := map[string][]string{
		"category":  {"name"},
		"product":   {"name", "categoryId"},
		"catalogue": {"title", "categoryId"},
		"cordless":  {"title"},
		"gallery":   {"title"},
		"instagram": {"title", "link"},
		"article":   {"title"},
	}
	var missing []string
	for _, f := range required[collection] {
		if fields[f] == "" {
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	if len(missing) > 0 {
		return strings.Join(missing, ", ") + " required"
	}
	return ""
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// writeEnvelope writes the standard response envelope. An optional
// envelopeStatus overrides the statusCode inside the body while the
// transport keeps status.
func writeEnvelope(w http.ResponseWriter, status int, message string, data any, envelopeStatus ...int) {
	code := status
	if len(envelopeStatus) > 0 {
		code = envelopeStatus[0]
	}
	body := map[string]any{"statusCode": code, "message": message, "data": data}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
