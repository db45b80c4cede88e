// Package fakeapi runs an in-process HTTP server that speaks the storefront
// REST API, for exercising the HTTP backend end to end.
package fakeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"caseshop/internal/service"
)

// DefaultTokenTTL matches the API's access token lifetime.
const DefaultTokenTTL = 30 * time.Minute

type user struct {
	profile service.Profile
	hash    []byte
}

type ctxKey struct{}

// Server is a fake storefront API.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	secret   []byte
	users    map[string]*user // email -> user
	byID     map[string]*user
	tasks    map[string]service.Task
	order    []string
	failures map[string]int // "METHOD /path" -> status

	// TokenTTL is the lifetime of tokens issued by /api/auth/login.
	TokenTTL time.Duration
}

// New starts a fake API server. Callers must Close it.
func New() *Server {
	s := &Server{
		secret:   []byte("fake-secret-" + uuid.NewString()),
		users:    make(map[string]*user),
		byID:     make(map[string]*user),
		tasks:    make(map[string]service.Task),
		failures: make(map[string]int),
		TokenTTL: DefaultTokenTTL,
	}
	s.Server = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.injectFailures)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.register)
		r.Post("/auth/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.bearerAuth)
			r.Get("/auth/me", s.me)
			r.Get("/tasks", s.listTasks)
			r.Post("/tasks", s.createTask)
			r.Put("/tasks/{id}", s.updateTask)
			r.Delete("/tasks/{id}", s.deleteTask)
		})
	})
	return r
}

// AddUser registers an account directly.
func (s *Server) AddUser(name, email, password string) service.Profile {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	u := &user{
		profile: service.Profile{
			ID:        uuid.NewString(),
			Name:      name,
			Email:     email,
			CreatedAt: time.Now().UTC(),
		},
		hash: hash,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = u
	s.byID[u.profile.ID] = u
	return u.profile
}

// IssueToken signs a token for userID that expires after ttl.
// A negative ttl yields an already-expired token.
func (s *Server) IssueToken(userID string, ttl time.Duration) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return tok
}

// FailWith makes every request for method and exact path answer status.
func (s *Server) FailWith(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = status
}

// ClearFailures removes all injected failures.
func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]int)
}

// Tasks returns the stored tasks of userID in creation order.
func (s *Server) Tasks(userID string) []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []service.Task
	for _, id := range s.order {
		if t := s.tasks[id]; t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, ok := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if ok {
			writeDetail(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeDetail(w, http.StatusForbidden, "Not authenticated")
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		})
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		s.mu.Lock()
		u, ok := s.byID[claims.Subject]
		s.mu.Unlock()
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUser(r, u)))
	})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	if len(req.Name) < 2 || !strings.Contains(req.Email, "@") || len(req.Password) < 6 {
		writeDetail(w, http.StatusUnprocessableEntity, "validation error")
		return
	}

	s.mu.Lock()
	_, exists := s.users[req.Email]
	s.mu.Unlock()
	if exists {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}

	writeJSON(w, http.StatusOK, s.AddUser(req.Name, req.Email, req.Password))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	s.mu.Lock()
	u, ok := s.users[req.Email]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(u.hash, []byte(req.Password)) != nil {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": s.IssueToken(u.profile.ID, s.TokenTTL),
		"token_type":   "bearer",
	})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFrom(r).profile)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks := s.Tasks(userFrom(r).profile.ID)
	if tasks == nil {
		tasks = []service.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var draft service.TaskDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	if err := draft.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	now := time.Now().UTC()
	t := service.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      orDefault(draft.Status, service.StatusPending),
		Priority:    orDefault(draft.Priority, service.PriorityMedium),
		Category:    orDefault(draft.Category, service.CategoryGeneral),
		UserID:      userFrom(r).profile.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.tasks[t.ID] = t
	s.order = append(s.order, t.ID)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, t)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch service.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok || t.UserID != userFrom(r).profile.ID {
		writeDetail(w, http.StatusNotFound, "Task not found")
		return
	}
	t = patch.Apply(t)
	t.UpdatedAt = time.Now().UTC()
	s.tasks[id] = t
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok || t.UserID != userFrom(r).profile.ID {
		writeDetail(w, http.StatusNotFound, "Task not found")
		return
	}
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
