// Package sqlite records finalised terminal actions in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const queueSize = 1024

// Journal appends action outcomes from a single writer goroutine so the
// terminal never waits on disk.
type Journal struct {
	db      *sql.DB
	session string

	ch     chan req
	wg     sync.WaitGroup
	once   sync.Once
	closed atomic.Bool
}

type req struct {
	outcome domain.ActionOutcome
	flushed chan struct{}
}

// Entry is a journal row.
type Entry struct {
	ID      int64
	Session string
	domain.ActionOutcome
}

type rawEntry struct {
	Session        string  `json:"session"`
	Kind           string  `json:"kind"`
	Hostname       string  `json:"hostname"`
	Cancelled      bool    `json:"cancelled"`
	Rejected       bool    `json:"rejected"`
	Success        bool    `json:"success"`
	MoneyGained    float64 `json:"money_gained"`
	ExpGained      float64 `json:"exp_gained"`
	SecurityBefore float64 `json:"security_before"`
	SecurityAfter  float64 `json:"security_after"`
	GrowthPercent  float64 `json:"growth_percent"`
	Duration       float64 `json:"duration_seconds"`
	FinishedAt     string  `json:"finished_at"`
}

var (
	_ ports.ActionJournal       = (*Journal)(nil)
	_ ports.ActionJournalReader = (*Journal)(nil)
)

func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, errors.New("empty journal path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	j := &Journal{
		db:      db,
		session: uuid.NewString(),
		ch:      make(chan req, queueSize),
	}
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		j.loop()
	}()
	return j, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("journal pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS actions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			kind TEXT NOT NULL,
			hostname TEXT NOT NULL,
			cancelled INTEGER NOT NULL,
			rejected INTEGER NOT NULL,
			success INTEGER NOT NULL,
			money_gained REAL NOT NULL,
			exp_gained REAL NOT NULL,
			security_before REAL NOT NULL,
			security_after REAL NOT NULL,
			growth_percent REAL NOT NULL,
			duration_seconds REAL NOT NULL,
			finished_at TEXT NOT NULL,
			raw_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_actions_session ON actions(session, id);`,
		`CREATE INDEX IF NOT EXISTS idx_actions_hostname ON actions(hostname, id);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init journal schema: %w", err)
		}
	}
	return nil
}

// Session identifies the rows written by this process.
func (j *Journal) Session() string {
	return j.session
}

// Record queues an outcome. Outcomes are dropped when the writer falls
// behind or the journal is closed.
func (j *Journal) Record(outcome domain.ActionOutcome) {
	if j == nil || j.closed.Load() {
		return
	}
	select {
	case j.ch <- req{outcome: outcome}:
	default:
	}
}

// Flush waits until every outcome queued before the call is written.
func (j *Journal) Flush(ctx context.Context) error {
	if j.closed.Load() {
		return nil
	}
	done := make(chan struct{})
	select {
	case j.ch <- req{flushed: done}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *Journal) Close() error {
	var err error
	j.once.Do(func() {
		j.closed.Store(true)
		close(j.ch)
		j.wg.Wait()
		err = j.db.Close()
	})
	return err
}

func (j *Journal) loop() {
	insert, err := j.db.Prepare(`INSERT INTO actions(session,kind,hostname,cancelled,rejected,success,money_gained,exp_gained,security_before,security_after,growth_percent,duration_seconds,finished_at,raw_json) VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		for r := range j.ch {
			if r.flushed != nil {
				close(r.flushed)
			}
		}
		return
	}
	defer func() { _ = insert.Close() }()

	for r := range j.ch {
		if r.flushed != nil {
			close(r.flushed)
			continue
		}

		row := toRaw(j.session, r.outcome)
		raw, err := json.Marshal(row)
		if err != nil {
			continue
		}
		_, _ = insert.Exec(row.Session, row.Kind, row.Hostname, row.Cancelled, row.Rejected, row.Success,
			row.MoneyGained, row.ExpGained, row.SecurityBefore, row.SecurityAfter, row.GrowthPercent,
			row.Duration, row.FinishedAt, string(raw))
	}
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.ActionOutcome, error) {
	entries, err := j.Entries(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ActionOutcome, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ActionOutcome)
	}
	return out, nil
}

// Entries returns up to limit rows with their ids and sessions, newest first.
func (j *Journal) Entries(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx, `SELECT id, raw_json FROM actions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			id  int64
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		var row rawEntry
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			return nil, fmt.Errorf("decode journal row %d: %w", id, err)
		}
		out = append(out, Entry{ID: id, Session: row.Session, ActionOutcome: fromRaw(row)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return out, nil
}

func toRaw(session string, o domain.ActionOutcome) rawEntry {
	finished := o.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	return rawEntry{
		Session:        session,
		Kind:           o.Kind.String(),
		Hostname:       o.Hostname,
		Cancelled:      o.Cancelled,
		Rejected:       o.Rejected,
		Success:        o.Success,
		MoneyGained:    o.MoneyGained,
		ExpGained:      o.ExpGained,
		SecurityBefore: o.SecurityBefore,
		SecurityAfter:  o.SecurityAfter,
		GrowthPercent:  o.GrowthPercent,
		Duration:       o.Duration,
		FinishedAt:     finished.UTC().Format(time.RFC3339Nano),
	}
}

func fromRaw(r rawEntry) domain.ActionOutcome {
	kind, _ := domain.ParseActionKind(r.Kind)
	finished, _ := time.Parse(time.RFC3339Nano, r.FinishedAt)
	return domain.ActionOutcome{
		Kind:           kind,
		Hostname:       r.Hostname,
		Cancelled:      r.Cancelled,
		Rejected:       r.Rejected,
		Success:        r.Success,
		MoneyGained:    r.MoneyGained,
		ExpGained:      r.ExpGained,
		SecurityBefore: r.SecurityBefore,
		SecurityAfter:  r.SecurityAfter,
		GrowthPercent:  r.GrowthPercent,
		Duration:       r.Duration,
		FinishedAt:     finished,
	}
}
