package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// StorePath is the collection path served by StoreServer.
const StorePath = "/api/tasks"

// StoreTask is a record as the reference store encodes it: untagged
// struct fields, so keys are "ID", "Description" and "Status".
type StoreTask struct {
	ID          int
	Description string
	Status      string
}

// StoreRequest records one request received by StoreServer.
type StoreRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

type storeFailure struct {
	code int
	body string
}

// StoreServer is an in-memory REST task store on an httptest server.
type StoreServer struct {
	*httptest.Server

	mu       sync.Mutex
	nextID   int
	tasks    []StoreTask
	failures map[string]storeFailure
	requests []StoreRequest
}

// NewStoreServer starts a store server that is closed when t finishes.
func NewStoreServer(t *testing.T) *StoreServer {
	t.Helper()

	s := &StoreServer{
		nextID:   1,
		failures: make(map[string]storeFailure),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+StorePath, s.handleList)
	mux.HandleFunc("POST "+StorePath, s.handleCreate)
	mux.HandleFunc("GET "+StorePath+"/{id}", s.handleGet)
	mux.HandleFunc("PUT "+StorePath+"/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE "+StorePath+"/{id}", s.handleDelete)

	s.Server = httptest.NewServer(s.intercept(mux))
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the collection endpoint.
func (s *StoreServer) BaseURL() string {
	return s.URL + StorePath
}

// Seed inserts a task directly and returns its ID.
func (s *StoreServer) Seed(description, status string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(description, status)
}

// Tasks returns a copy of the stored tasks.
func (s *StoreServer) Tasks() []StoreTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]StoreTask, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Requests returns the requests received so far.
func (s *StoreServer) Requests() []StoreRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]StoreRequest, len(s.requests))
	copy(result, s.requests)
	return result
}

// FailWith makes every request with the given method answer code and body.
func (s *StoreServer) FailWith(method string, code int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = storeFailure{code: code, body: body}
}

func (s *StoreServer) insert(description, status string) int {
	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, StoreTask{ID: id, Description: description, Status: status})
	return id
}

func (s *StoreServer) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		rec := StoreRequest{Method: r.Method, Path: r.URL.EscapedPath()}
		if len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		failure, fail := s.failures[r.Method]
		s.mu.Unlock()

		if fail {
			http.Error(w, failure.body, failure.code)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(data))
		next.ServeHTTP(w, r)
	})
}

func (s *StoreServer) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Tasks())
}

func (s *StoreServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in StoreTask
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	s.Seed(in.Description, in.Status)
	writeJSON(w, map[string]any{"success": true})
}

func (s *StoreServer) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			writeJSON(w, t)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *StoreServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var in StoreTask
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i].Description = in.Description
			s.tasks[i].Status = in.Status
			writeJSON(w, map[string]any{"success": true})
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *StoreServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			writeJSON(w, map[string]any{"success": true})
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
