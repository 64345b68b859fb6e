package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/slime-arena/core"
)

// SQLiteDB implements the DB interface using SQLite
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the database file at path
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "enable WAL mode")
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the schema if missing
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS episodes (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			difficulty INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			scoring_side INTEGER NOT NULL DEFAULT 0,
			terminated INTEGER NOT NULL DEFAULT 0,
			truncated INTEGER NOT NULL DEFAULT 0,
			touches INTEGER NOT NULL DEFAULT 0,
			net_hits INTEGER NOT NULL DEFAULT 0,
			reward_right REAL NOT NULL DEFAULT 0,
			reward_left REAL NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			episode_id TEXT NOT NULL,
			step INTEGER NOT NULL,
			kind INTEGER NOT NULL,
			slime INTEGER NOT NULL,
			side INTEGER NOT NULL,
			FOREIGN KEY (episode_id) REFERENCES episodes(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_episode ON events(episode_id, step)`,
		`CREATE INDEX IF NOT EXISTS idx_episodes_created ON episodes(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return errors.Wrap(err, "migration failed")
		}
	}
	return nil
}

// SaveEpisode inserts an episode row, assigning an id and timestamp when unset
func (s *SQLiteDB) SaveEpisode(ep *Episode) error {
	if ep.ID == "" {
		ep.ID = uuid.New().String()
	}
	if ep.CreatedAt.IsZero() {
		ep.CreatedAt = time.Now()
	}

	query := `INSERT INTO episodes (
		id, seed, difficulty, steps, ticks, scoring_side, terminated, truncated,
		touches, net_hits, reward_right, reward_left, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		ep.ID, ep.Seed, ep.Difficulty, ep.Steps, ep.Ticks, int(ep.ScoringSide),
		ep.Terminated, ep.Truncated, ep.Touches, ep.NetHits,
		ep.RewardRight, ep.RewardLeft, ep.CreatedAt.UnixNano(),
	)
	return errors.Wrapf(err, "save episode %s", ep.ID)
}

// SaveEvents stores an episode's event stream in one transaction
func (s *SQLiteDB) SaveEvents(episodeID string, events []core.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO events (episode_id, step, kind, slime, side) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "prepare")
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(episodeID, ev.Step, int(ev.Kind), int(ev.Slime), int(ev.Side)); err != nil {
			return errors.Wrapf(err, "save events for %s", episodeID)
		}
	}

	return tx.Commit()
}

const episodeColumns = `id, seed, difficulty, steps, ticks, scoring_side, terminated, truncated,
	touches, net_hits, reward_right, reward_left, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row scanner) (*Episode, error) {
	var (
		ep      Episode
		side    int
		created int64
	)
	err := row.Scan(
		&ep.ID, &ep.Seed, &ep.Difficulty, &ep.Steps, &ep.Ticks, &side,
		&ep.Terminated, &ep.Truncated, &ep.Touches, &ep.NetHits,
		&ep.RewardRight, &ep.RewardLeft, &created,
	)
	if err != nil {
		return nil, err
	}
	ep.ScoringSide = core.Side(side)
	ep.CreatedAt = time.Unix(0, created)
	return &ep, nil
}

// GetEpisode retrieves an episode by id
func (s *SQLiteDB) GetEpisode(id string) (*Episode, error) {
	row := s.db.QueryRow(`SELECT `+episodeColumns+` FROM episodes WHERE id = ?`, id)
	ep, err := scanEpisode(row)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(ErrEpisodeNotFound, "id %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get episode %s", id)
	}
	return ep, nil
}

// GetEvents retrieves an episode's events in step order with pagination
func (s *SQLiteDB) GetEvents(episodeID string, limit, offset int) ([]core.Event, error) {
	query := `SELECT step, kind, slime, side
		FROM events WHERE episode_id = ?
		ORDER BY id LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, episodeID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "query events")
	}
	defer rows.Close()

	var events []core.Event
	for rows.Next() {
		var ev core.Event
		var kind, slime, side int
		if err := rows.Scan(&ev.Step, &kind, &slime, &side); err != nil {
			return nil, errors.Wrap(err, "scan event")
		}
		ev.Kind = core.EventKind(kind)
		ev.Slime = core.SlimeID(slime)
		ev.Side = core.Side(side)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// ListEpisodes returns episodes newest first
func (s *SQLiteDB) ListEpisodes(limit, offset int) ([]Episode, error) {
	rows, err := s.db.Query(`SELECT `+episodeColumns+` FROM episodes
		ORDER BY created_at DESC, id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "query episodes")
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan episode")
		}
		episodes = append(episodes, *ep)
	}
	return episodes, rows.Err()
}

// Stats aggregates outcomes over every stored episode
func (s *SQLiteDB) Stats() (*Stats, error) {
	query := `SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN scoring_side = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN scoring_side = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(truncated), 0),
		COALESCE(AVG(ticks), 0),
		COALESCE(AVG(touches), 0)
		FROM episodes`

	var st Stats
	err := s.db.QueryRow(query, int(core.SideRight), int(core.SideLeft)).Scan(
		&st.Episodes, &st.RightPoints, &st.LeftPoints, &st.Truncated, &st.AvgTicks, &st.AvgTouches,
	)
	if err != nil {
		return nil, errors.Wrap(err, "stats")
	}
	return &st, nil
}
