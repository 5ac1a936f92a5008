package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"io/fs"
	"time"

	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/storage/fixtures"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// seed copies the fixtures into the schema in one transaction.
func seed(ctx context.Context, db *sql.DB, now time.Time) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	p := fixtures.Project()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO project (id, name, status, start_date, deadline, progress_percent, description)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		p.Name, string(p.Status), p.StartDate, p.Deadline, p.ProgressPercent, p.Description); err != nil {
		return err
	}
	for i, m := range p.Team {
		if _, err := tx.ExecContext(ctx, `INSERT INTO members (pos, id, name, role) VALUES (?, ?, ?, ?)`,
			i, m.ID, m.Name, m.Role); err != nil {
			return err
		}
	}
	for i, m := range p.Milestones {
		if _, err := tx.ExecContext(ctx, `INSERT INTO milestones (pos, id, title, status, date) VALUES (?, ?, ?, ?, ?)`,
			i, m.ID, m.Title, string(m.Status), m.Date); err != nil {
			return err
		}
	}

	for i, svc := range fixtures.Services() {
		features, err := json.Marshal(svc.Features)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO services (pos, id, name, category, description, icon, features, price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, svc.ID, svc.Name, string(svc.Category), svc.Description, svc.Icon, string(features), svc.Price); err != nil {
			return err
		}
	}

	pos := 0
	for _, mode := range []models.ChatMode{models.ChatModeTeam, models.ChatModeAssistant} {
		for _, m := range fixtures.Thread(mode) {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO messages (pos, mode, id, text, sender, display_name, timestamp)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				pos, string(mode), m.ID, m.Text, string(m.Sender), m.DisplayName, m.Timestamp); err != nil {
				return err
			}
			pos++
		}
	}

	for i, it := range fixtures.Timeline() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO timeline (pos, id, title, date, status, icon) VALUES (?, ?, ?, ?, ?, ?)`,
			i, it.ID, it.Title, it.Date, string(it.Status), it.Icon); err != nil {
			return err
		}
	}

	series := fixtures.Metrics()
	for i, label := range series.Labels {
		if _, err := tx.ExecContext(ctx, `INSERT INTO metrics (pos, label, value) VALUES (?, ?, ?)`,
			i, label, series.Values[i]); err != nil {
			return err
		}
	}

	for _, u := range fixtures.Updates(now) {
		if _, err := tx.ExecContext(ctx, `INSERT INTO updates (title, at) VALUES (?, ?)`,
			u.Title, u.At.Unix()); err != nil {
			return err
		}
	}

	return tx.Commit()
}
