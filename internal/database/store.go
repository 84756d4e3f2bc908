// Package database provides the storage layer for Scribemark.
//
// It persists transcript projects — token sequences, committed highlights,
// and pending suggestions — in SQLite with WAL mode. Highlights are stored
// in their persisted wire shape (timestamps, never token indices); the
// DBService struct is the primary entry point for all database operations.
package database

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/leomorpho/scribemark/internal/highlight"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store defines the interface for project persistence. This abstraction
// allows for mocking in tests and potential future backends beyond SQLite.
type Store interface {
	// CreateProject persists a new project record.
	CreateProject(p *Project) error
	// GetProject returns a project by ID.
	GetProject(projectID string) (*Project, error)
	// ListProjects returns all projects, most recent first.
	ListProjects() ([]*Project, error)
	// DeleteProject removes a project and all its rows.
	DeleteProject(projectID string) error

	// ReplaceTokens swaps a project's full token sequence in one transaction.
	ReplaceTokens(projectID string, tokens []highlight.Token) error
	// LoadTokens returns a project's token sequence ordered by index.
	LoadTokens(projectID string) ([]highlight.Token, error)

	// ReplaceHighlights swaps a project's full highlight list in one
	// transaction. The engine's change notification always carries the full
	// current list, so replacement is the natural write shape.
	ReplaceHighlights(projectID string, hs []highlight.WireInterval) error
	// LoadHighlights returns a project's highlights ordered by start time.
	LoadHighlights(projectID string) ([]highlight.WireInterval, error)

	// ReplaceSuggestions swaps a project's suggestion overlay wholesale.
	ReplaceSuggestions(projectID string, ss []highlight.WireSuggestion) error
	// LoadSuggestions returns a project's suggestions ordered by start token.
	LoadSuggestions(projectID string) ([]highlight.WireSuggestion, error)
	// DeleteSuggestion removes a single suggestion after accept or reject.
	// Deleting an absent ID is a no-op.
	DeleteSuggestion(projectID, suggestionID string) error

	// Close gracefully shuts down the database connection.
	Close() error
}

// Project is one imported transcript with its annotation state.
type Project struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// ============================================================
// DBService Implementation
// ============================================================

// DBService implements the Store interface using SQLite. It manages the
// database connection, prepared statements, and serializes access through a
// read-write mutex.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	// Prepared statements for hot-path operations
	stmtInsertToken      *sql.Stmt
	stmtInsertHighlight  *sql.Stmt
	stmtInsertSuggestion *sql.Stmt
}

// NewDBService creates a new database service, initializes the schema, and
// prepares frequently-used statements.
//
// The path parameter specifies the SQLite database file location.
// Use ":memory:" for in-memory databases (useful for testing).
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_cache_size=-64000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite supports one writer at a time; WAL handles the rest.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

// initSchema reads the embedded schema.sql and executes it to create all
// tables and indexes.
func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

// prepareStatements creates prepared statements for the batch insert paths
// to minimize parsing overhead during token and highlight replacement.
func (s *DBService) prepareStatements() error {
	var err error

	s.stmtInsertToken, err = s.db.Prepare(`
		INSERT INTO tokens (project_id, idx, text, start_time, end_time)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertToken: %w", err)
	}

	s.stmtInsertHighlight, err = s.db.Prepare(`
		INSERT INTO highlights (highlight_id, project_id, start_time, end_time, color)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertHighlight: %w", err)
	}

	s.stmtInsertSuggestion, err = s.db.Prepare(`
		INSERT INTO suggestions (suggestion_id, project_id, start_token, end_token, text, color)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertSuggestion: %w", err)
	}

	return nil
}

// CreateProject persists a new project record.
func (s *DBService) CreateProject(p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO projects (project_id, name, created_at) VALUES (?, ?, ?)
	`, p.ProjectID, p.Name, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting project %s: %w", p.ProjectID, err)
	}
	return nil
}

// GetProject returns a project by ID.
func (s *DBService) GetProject(projectID string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := &Project{}
	err := s.db.QueryRow(`
		SELECT project_id, name, created_at FROM projects WHERE project_id = ?
	`, projectID).Scan(&p.ProjectID, &p.Name, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying project %s: %w", projectID, err)
	}
	return p, nil
}

// ListProjects returns all projects, most recent first.
func (s *DBService) ListProjects() ([]*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT project_id, name, created_at FROM projects ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		if err := rows.Scan(&p.ProjectID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project; cascading deletes clear its tokens,
// highlights, and suggestions.
func (s *DBService) DeleteProject(projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM projects WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", projectID, err)
	}
	return nil
}

// ReplaceTokens swaps a project's full token sequence within a single
// transaction for atomicity and throughput.
func (s *DBService) ReplaceTokens(projectID string, tokens []highlight.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning token transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.Exec(`DELETE FROM tokens WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing tokens for project %s: %w", projectID, err)
	}

	stmt := tx.Stmt(s.stmtInsertToken)
	for _, tok := range tokens {
		if _, err := stmt.Exec(projectID, tok.Index, tok.Text, tok.Start, tok.End); err != nil {
			return fmt.Errorf("inserting token %d: %w", tok.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing token transaction: %w", err)
	}
	return nil
}

// LoadTokens returns a project's token sequence ordered by index.
func (s *DBService) LoadTokens(projectID string) ([]highlight.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT idx, text, start_time, end_time
		FROM tokens
		WHERE project_id = ?
		ORDER BY idx ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying tokens for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var tokens []highlight.Token
	for rows.Next() {
		var tok highlight.Token
		if err := rows.Scan(&tok.Index, &tok.Text, &tok.Start, &tok.End); err != nil {
			return nil, fmt.Errorf("scanning token row: %w", err)
		}
		tokens = append(tokens, tok)
	}
	return tokens, rows.Err()
}

// ReplaceHighlights swaps a project's full highlight list in one transaction.
// The write either fully succeeds or leaves the prior list intact.
func (s *DBService) ReplaceHighlights(projectID string, hs []highlight.WireInterval) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning highlight transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM highlights WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing highlights for project %s: %w", projectID, err)
	}

	stmt := tx.Stmt(s.stmtInsertHighlight)
	for _, h := range hs {
		if _, err := stmt.Exec(h.ID, projectID, h.Start, h.End, h.Color); err != nil {
			return fmt.Errorf("inserting highlight %s: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing highlight transaction: %w", err)
	}
	return nil
}

// LoadHighlights returns a project's highlights ordered by start time.
func (s *DBService) LoadHighlights(projectID string) ([]highlight.WireInterval, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT highlight_id, start_time, end_time, color
		FROM highlights
		WHERE project_id = ?
		ORDER BY start_time ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying highlights for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var hs []highlight.WireInterval
	for rows.Next() {
		var h highlight.WireInterval
		if err := rows.Scan(&h.ID, &h.Start, &h.End, &h.Color); err != nil {
			return nil, fmt.Errorf("scanning highlight row: %w", err)
		}
		hs = append(hs, h)
	}
	return hs, rows.Err()
}

// ReplaceSuggestions swaps a project's suggestion overlay wholesale, the way
// suggestions arrive from their external producer.
func (s *DBService) ReplaceSuggestions(projectID string, ss []highlight.WireSuggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning suggestion transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM suggestions WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing suggestions for project %s: %w", projectID, err)
	}

	stmt := tx.Stmt(s.stmtInsertSuggestion)
	for _, sg := range ss {
		if _, err := stmt.Exec(sg.ID, projectID, sg.Start, sg.End, sg.Text, sg.Color); err != nil {
			return fmt.Errorf("inserting suggestion %s: %w", sg.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing suggestion transaction: %w", err)
	}
	return nil
}

// LoadSuggestions returns a project's suggestions ordered by start token.
func (s *DBService) LoadSuggestions(projectID string) ([]highlight.WireSuggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT suggestion_id, start_token, end_token, text, color
		FROM suggestions
		WHERE project_id = ?
		ORDER BY start_token ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying suggestions for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var ss []highlight.WireSuggestion
	for rows.Next() {
		var sg highlight.WireSuggestion
		if err := rows.Scan(&sg.ID, &sg.Start, &sg.End, &sg.Text, &sg.Color); err != nil {
			return nil, fmt.Errorf("scanning suggestion row: %w", err)
		}
		ss = append(ss, sg)
	}
	return ss, rows.Err()
}

// DeleteSuggestion removes a single suggestion. Absent IDs are a no-op,
// matching the engine's idempotent reject.
func (s *DBService) DeleteSuggestion(projectID, suggestionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		DELETE FROM suggestions WHERE project_id = ? AND suggestion_id = ?
	`, projectID, suggestionID)
	if err != nil {
		return fmt.Errorf("deleting suggestion %s: %w", suggestionID, err)
	}
	return nil
}

// Close gracefully shuts down the database, closing all prepared statements
// and the underlying connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmts := []*sql.Stmt{
		s.stmtInsertToken, s.stmtInsertHighlight, s.stmtInsertSuggestion,
	}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}
