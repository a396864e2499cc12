// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists sample outlines and the history of generated
// outlines in a SQLite database. The outline transform itself never touches
// the library; the CLI uses it to remember samples between runs.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/outline-engine/pkg/types"
)

const dbFile = "library.db"

var (
	// ErrNotFound is returned when no sample or outline matches an ID.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous is returned when an ID prefix matches more than one row.
	ErrAmbiguous = errors.New("ambiguous ID prefix")
)

// Store manages the library SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int

	// now is replaced in tests.
	now func() time.Time
}

// NewStore opens or creates the library database at cfg.Dir/library.db and
// creates the schema if it does not exist.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
		now:        func() time.Time { return time.Now().UTC() },
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS samples (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS generated_outlines (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			sample_id TEXT REFERENCES samples(id) ON DELETE SET NULL,
			topic TEXT NOT NULL,
			topic_type TEXT NOT NULL,
			style TEXT NOT NULL,
			fallback INTEGER NOT NULL,
			outline TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generated_sample_id ON generated_outlines(sample_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func (s *Store) limit(n int) int {
	if n <= 0 {
		return s.maxResults
	}
	return n
}

// --- samples ---

// AddSample stores a sample and returns it with its new ID.
func (s *Store) AddSample(ctx context.Context, name, content string) (*types.Sample, error) {
	sm := &types.Sample{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		CreatedAt: s.now(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO samples (id, name, content, created_at) VALUES (?, ?, ?, ?)`,
		sm.ID, sm.Name, sm.Content, formatTime(sm.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("inserting sample: %w", err)
	}
	return sm, nil
}

// ListSamples returns up to limit samples, most recently added first.
// A limit of zero uses the store default.
func (s *Store) ListSamples(ctx context.Context, limit int) ([]types.Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, content, created_at FROM samples ORDER BY seq DESC LIMIT ?`,
		s.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying samples: %w", err)
	}
	defer rows.Close()

	var samples []types.Sample
	for rows.Next() {
		sm, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, *sm)
	}
	return samples, rows.Err()
}

// GetSample returns the sample whose ID equals or starts with id.
func (s *Store) GetSample(ctx context.Context, id string) (*types.Sample, error) {
	if id == "" {
		return nil, fmt.Errorf("empty sample ID: %w", ErrNotFound)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, content, created_at FROM samples
		WHERE id = ? OR id LIKE ? || '%' ORDER BY (id = ?) DESC, seq DESC LIMIT 2`,
		id, id, id)
	if err != nil {
		return nil, fmt.Errorf("querying sample: %w", err)
	}
	defer rows.Close()

	var found []*types.Sample
	for rows.Next() {
		sm, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pickOne(found, id, func(sm *types.Sample) string { return sm.ID })
}

// LatestSample returns the most recently added sample.
func (s *Store) LatestSample(ctx context.Context) (*types.Sample, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, content, created_at FROM samples ORDER BY seq DESC LIMIT 1`)
	sm, err := scanSample(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("latest sample: %w", ErrNotFound)
	}
	return sm, err
}

// RemoveSample deletes the sample with the given ID or unique ID prefix.
// Generated outlines that used it keep their content but lose the link.
func (s *Store) RemoveSample(ctx context.Context, id string) (*types.Sample, error) {
	sm, err := s.GetSample(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM samples WHERE id = ?`, sm.ID); err != nil {
		return nil, fmt.Errorf("deleting sample: %w", err)
	}
	return sm, nil
}

// --- generated outlines ---

// SaveGenerated records a generated outline, assigning its ID and creation
// time.
func (s *Store) SaveGenerated(ctx context.Context, g *types.GeneratedOutline) error {
	g.ID = uuid.NewString()
	g.CreatedAt = s.now()

	data, err := json.Marshal(g.Outline)
	if err != nil {
		return fmt.Errorf("marshaling outline: %w", err)
	}

	var sampleID sql.NullString
	if g.SampleID != "" {
		sampleID = sql.NullString{String: g.SampleID, Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO generated_outlines (id, sample_id, topic, topic_type, style, fallback, outline, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, sampleID, g.Topic, string(g.TopicType), string(g.Style), g.Fallback, string(data), formatTime(g.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting generated outline: %w", err)
	}
	return nil
}

// HistoryOptions filters ListGenerated.
type HistoryOptions struct {
	// SampleID restricts results to outlines generated from one sample.
	SampleID string

	// TopicType restricts results to one topic type.
	TopicType types.TopicType

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// ListGenerated returns generated outlines, most recent first.
func (s *Store) ListGenerated(ctx context.Context, opts HistoryOptions) ([]types.GeneratedOutline, error) {
	query := `SELECT id, sample_id, topic, topic_type, style, fallback, outline, created_at
		FROM generated_outlines WHERE 1=1`
	var args []any
	if opts.SampleID != "" {
		query += ` AND sample_id = ?`
		args = append(args, opts.SampleID)
	}
	if opts.TopicType != "" {
		query += ` AND topic_type = ?`
		args = append(args, string(opts.TopicType))
	}
	query += ` ORDER BY seq DESC LIMIT ?`
	args = append(args, s.limit(opts.MaxResults))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying generated outlines: %w", err)
	}
	defer rows.Close()

	var out []types.GeneratedOutline
	for rows.Next() {
		g, err := scanGenerated(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

// GetGenerated returns the generated outline whose ID equals or starts
// with id.
func (s *Store) GetGenerated(ctx context.Context, id string) (*types.GeneratedOutline, error) {
	if id == "" {
		return nil, fmt.Errorf("empty outline ID: %w", ErrNotFound)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sample_id, topic, topic_type, style, fallback, outline, created_at
		FROM generated_outlines
		WHERE id = ? OR id LIKE ? || '%' ORDER BY (id = ?) DESC, seq DESC LIMIT 2`,
		id, id, id)
	if err != nil {
		return nil, fmt.Errorf("querying generated outline: %w", err)
	}
	defer rows.Close()

	var found []*types.GeneratedOutline
	for rows.Next() {
		g, err := scanGenerated(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pickOne(found, id, func(g *types.GeneratedOutline) string { return g.ID })
}

// --- scanning helpers ---

type scanner interface {
	Scan(dest ...any) error
}

func scanSample(sc scanner) (*types.Sample, error) {
	var (
		sm      types.Sample
		created string
	)
	if err := sc.Scan(&sm.ID, &sm.Name, &sm.Content, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning sample: %w", err)
	}
	t, err := parseTime(created)
	if err != nil {
		return nil, err
	}
	sm.CreatedAt = t
	return &sm, nil
}

func scanGenerated(sc scanner) (*types.GeneratedOutline, error) {
	var (
		g         types.GeneratedOutline
		sampleID  sql.NullString
		topicType string
		style     string
		outline   string
		created   string
	)
	if err := sc.Scan(&g.ID, &sampleID, &g.Topic, &topicType, &style, &g.Fallback, &outline, &created); err != nil {
		return nil, fmt.Errorf("scanning generated outline: %w", err)
	}
	g.SampleID = sampleID.String
	g.TopicType = types.TopicType(topicType)
	g.Style = types.NumberingStyle(style)
	if err := json.Unmarshal([]byte(outline), &g.Outline); err != nil {
		return nil, fmt.Errorf("decoding outline %s: %w", g.ID, err)
	}
	t, err := parseTime(created)
	if err != nil {
		return nil, err
	}
	g.CreatedAt = t
	return &g, nil
}

// pickOne resolves a lookup that fetched at most two candidates. An exact
// ID match is ordered first by the queries and always wins.
func pickOne[T any](found []*T, id string, idOf func(*T) string) (*T, error) {
	switch {
	case len(found) == 0:
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	case idOf(found[0]) == id, len(found) == 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("%q: %w", id, ErrAmbiguous)
}

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}
