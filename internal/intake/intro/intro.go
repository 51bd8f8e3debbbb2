// Package intro handles the lightweight "request an intro" form.
package intro

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"venture-intake/internal/common/logger"
)

// Request is one intro request as submitted.
type Request struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Linkedin string `json:"linkedin,omitempty"`
	Reason   string `json:"reason"`
}

// Result reports the outcome, with the database message verbatim on failure.
type Result struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// Validate checks the request fields in declaration order.
func (r *Request) Validate() string {
	if len([]rune(strings.TrimSpace(r.Name))) < 2 {
		return "Name must be at least 2 characters"
	}
	at := strings.Index(r.Email, "@")
	if at <= 0 || !strings.Contains(r.Email[at:], ".") {
		return "Enter a valid email address"
	}
	if r.Linkedin != "" && !strings.HasPrefix(strings.ToLower(r.Linkedin), "http") {
		return "Enter a valid URL"
	}
	if len([]rune(strings.TrimSpace(r.Reason))) < 10 {
		return "Tell us a bit more about why"
	}
	return ""
}

// Handler persists intro requests.
type Handler struct {
	db     *sql.DB
	logger logger.Logger
	now    func() time.Time
}

func NewHandler(db *sql.DB, log logger.Logger) *Handler {
	return &Handler{db: db, logger: log, now: time.Now}
}

// Execute validates and inserts one intro request.
func (h *Handler) Execute(ctx context.Context, r *Request) *Result {
	if msg := r.Validate(); msg != "" {
		return &Result{OK: false, Error: msg}
	}

	id := uuid.New().String()
	query, args, err := sq.Insert("intro_requests").
		PlaceholderFormat(sq.Dollar).
		Columns("id", "name", "email", "linkedin", "reason", "created_at").
		Values(id, r.Name, r.Email,
			sql.NullString{String: r.Linkedin, Valid: r.Linkedin != ""},
			r.Reason, h.now().UTC().Format(time.RFC3339)).
		ToSql()
	if err == nil {
		_, err = h.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		h.logger.Error("intro request insert failed", map[string]interface{}{"error": err.Error()})
		return &Result{OK: false, Error: err.Error()}
	}

	h.logger.Info("intro request accepted", map[string]interface{}{"id": id})
	return &Result{OK: true, ID: id}
}
