package fakecms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.requireAuth.Load() && bearer(r) != s.Token {
			writeEnvelope(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// record stores a summary of each request. The body is buffered so handlers
// can still read it.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		rec := Recorded{
			Method:      r.Method,
			Path:        r.URL.Path,
			Header:      r.Header.Clone(),
			ContentType: r.Header.Get("Content-Type"),
		}
		peek := r.Clone(r.Context())
		peek.Body = io.NopCloser(bytes.NewReader(raw))
		if fields, files, err := readBody(peek); err == nil {
			rec.Fields = map[string][]string{}
			for k, v := range fields {
				rec.Fields[k] = []string{v}
			}
			rec.Files = files
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(raw))
		next.ServeHTTP(w, r)
	})
}

// readBody parses a JSON or multipart body into flat fields. Uploaded files
// are returned as the asset paths the backend would store.
func readBody(r *http.Request) (map[string]string, map[string][]string, error) {
	fields := map[string]string{}
	files := map[string][]string{}
	if r.Body == nil {
		return fields, files, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case mediaType == "multipart/form-data":
		if err := r.ParseMultipartForm(8 << 20); err != nil {
			return nil, nil, err
		}
		for k, v := range r.MultipartForm.Value {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
		for k, hs := range r.MultipartForm.File {
			for _, h := range hs {
				files[k] = append(files[k], "/uploads/"+h.Filename)
			}
		}
	case strings.HasPrefix(mediaType, "application/json"):
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
			return nil, nil, err
		}
		for k, v := range body {
			if str, ok := v.(string); ok {
				fields[k] = str
			} else {
				fields[k] = fmt.Sprint(v)
			}
		}
	}
	return fields, files, nil
}
