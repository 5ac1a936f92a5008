// Package sqlite serves the portal fixtures through an in-memory SQLite
// database. Nothing is written to disk.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/migration"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/storage"
	_ "modernc.org/sqlite"
)

// memoryDSN keeps the database private to the single pooled connection.
const memoryDSN = "file::memory:"

type Store struct {
	now func() time.Time

	mu sync.Mutex
	db *sql.DB
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Load opens the database, applies the embedded migrations and seeds it. Calling Load
// on a loaded store is a no-op.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// every new connection would get its own empty in-memory database
	db.SetMaxOpenConns(1)

	if _, err := migration.NewRunner(db, migrations()).Apply(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := seed(ctx, db, s.now()); err != nil {
		db.Close()
		return fmt.Errorf("failed to seed fixtures: %w", err)
	}

	s.db = db
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) Name() string {
	return constants.DataDriverSQLite
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	return s.db, nil
}

func (s *Store) GetProject(ctx context.Context) (models.Project, error) {
	db, err := s.conn()
	if err != nil {
		return models.Project{}, err
	}

	var p models.Project
	var status string
	err = db.QueryRowContext(ctx, `
		SELECT name, status, start_date, deadline, progress_percent, description
		FROM project WHERE id = 1`).
		Scan(&p.Name, &status, &p.StartDate, &p.Deadline, &p.ProgressPercent, &p.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, fmt.Errorf("project: %w", storage.ErrNotFound)
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to query project: %w", err)
	}
	p.Status = models.ProjectStatus(status)

	rows, err := db.QueryContext(ctx, `SELECT id, name, role FROM members ORDER BY pos`)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to query members: %w", err)
	}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Role); err != nil {
			rows.Close()
			return models.Project{}, err
		}
		p.Team = append(p.Team, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return models.Project{}, err
	}

	rows, err = db.QueryContext(ctx, `SELECT id, title, status, date FROM milestones ORDER BY pos`)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to query milestones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m models.Milestone
		var st string
		if err := rows.Scan(&m.ID, &m.Title, &st, &m.Date); err != nil {
			return models.Project{}, err
		}
		m.Status = models.Status(st)
		p.Milestones = append(p.Milestones, m)
	}
	return p, rows.Err()
}

func (s *Store) GetServices(ctx context.Context) ([]models.Service, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, category, description, icon, features, price
		FROM services ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var svc models.Service
		var category, features string
		if err := rows.Scan(&svc.ID, &svc.Name, &category, &svc.Description, &svc.Icon, &features, &svc.Price); err != nil {
			return nil, err
		}
		svc.Category = models.Category(category)
		if err := json.Unmarshal([]byte(features), &svc.Features); err != nil {
			return nil, fmt.Errorf("parsing features of service %d: %w", svc.ID, err)
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (s *Store) GetThread(ctx context.Context, mode models.ChatMode) ([]models.Message, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if mode != models.ChatModeTeam && mode != models.ChatModeAssistant {
		return nil, fmt.Errorf("thread %q: %w", mode, storage.ErrNotFound)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, text, sender, display_name, timestamp
		FROM messages WHERE mode = ? ORDER BY pos`, string(mode))
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	thread := []models.Message{}
	for rows.Next() {
		var m models.Message
		var sender string
		if err := rows.Scan(&m.ID, &m.Text, &sender, &m.DisplayName, &m.Timestamp); err != nil {
			return nil, err
		}
		m.Sender = models.Sender(sender)
		thread = append(thread, m)
	}
	return thread, rows.Err()
}

func (s *Store) GetTimeline(ctx context.Context) ([]models.TimelineItem, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, title, date, status, icon FROM timeline ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline: %w", err)
	}
	defer rows.Close()

	var items []models.TimelineItem
	for rows.Next() {
		var it models.TimelineItem
		var st string
		if err := rows.Scan(&it.ID, &it.Title, &it.Date, &st, &it.Icon); err != nil {
			return nil, err
		}
		it.Status = models.Status(st)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) GetMetrics(ctx context.Context) (models.MetricSeries, error) {
	db, err := s.conn()
	if err != nil {
		return models.MetricSeries{}, err
	}

	rows, err := db.QueryContext(ctx, `SELECT label, value FROM metrics ORDER BY pos`)
	if err != nil {
		return models.MetricSeries{}, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer rows.Close()

	var series models.MetricSeries
	for rows.Next() {
		var label string
		var value float64
		if err := rows.Scan(&label, &value); err != nil {
			return models.MetricSeries{}, err
		}
		series.Labels = append(series.Labels, label)
		series.Values = append(series.Values, value)
	}
	return series, rows.Err()
}

func (s *Store) GetUpdates(ctx context.Context) ([]models.Update, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT title, at FROM updates ORDER BY at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query updates: %w", err)
	}
	defer rows.Close()

	var updates []models.Update
	for rows.Next() {
		var u models.Update
		var at int64
		if err := rows.Scan(&u.Title, &at); err != nil {
			return nil, err
		}
		u.At = time.Unix(at, 0)
		updates = append(updates, u)
	}
	return updates, rows.Err()
}
