package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/lakeview-games/fishbot/internal/economy"
	"github.com/lakeview-games/fishbot/internal/fish"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db         *sql.DB
	getStmt    *sql.Stmt
	upsertStmt *sql.Stmt
	catchStmt  *sql.Stmt
	countStmt  *sql.Stmt
	lbStmts    map[Metric]*sql.Stmt
}

func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// DSN notes:
	// - _pragma=busy_timeout sets a lock wait
	// - _pragma=journal_mode(WAL) enables the write-ahead log
	// - _pragma=synchronous(NORMAL) sets the disk synchronizing
	//	 mode to NORMAL (recommended with WAL enabled)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db, lbStmts: make(map[Metric]*sql.Stmt)}

	prepared := []struct {
		dst **sql.Stmt
		sql string
	}{
		{&s.getStmt, `
			SELECT telegram_id, username, first_name, last_name, balance, energy,
			       rod_level, boat_level, bait_common, bait_rare, last_active_at, last_click_at
			FROM players
			WHERE telegram_id = ?
		`},
		{&s.upsertStmt, `
			INSERT INTO players (telegram_id, username, first_name, last_name, balance, energy,
			                     rod_level, boat_level, bait_common, bait_rare, last_active_at, last_click_at)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
			ON CONFLICT(telegram_id) DO UPDATE SET
				username = excluded.username,
				first_name = excluded.first_name,
				last_name = excluded.last_name,
				balance = excluded.balance,
				energy = excluded.energy,
				rod_level = excluded.rod_level,
				boat_level = excluded.boat_level,
				bait_common = excluded.bait_common,
				bait_rare = excluded.bait_rare,
				last_active_at = excluded.last_active_at,
				last_click_at = excluded.last_click_at
		`},
		{&s.catchStmt, `
			INSERT INTO catches (user_id, fish_id, weight_centis, is_trash, reward, caught_at)
			VALUES (?,?,?,?,?,?)
		`},
		{&s.countStmt, `SELECT COUNT(*) FROM players`},
	}

	for _, p := range prepared {
		stmt, err := db.Prepare(p.sql)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		*p.dst = stmt
	}

	// one aggregation per leaderboard metric; the window lower bound is
	// always bound, with 0 meaning "all time"
	lbSQL := map[Metric]string{
		MetricBalance: `
			SELECT p.first_name, p.last_name, p.username, SUM(c.reward) AS score
			FROM catches c
			JOIN players p ON p.telegram_id = c.user_id
			WHERE c.caught_at >= ?
			GROUP BY c.user_id
			ORDER BY score DESC
			LIMIT 10
		`,
		MetricWeight: `
			SELECT p.first_name, p.last_name, p.username, SUM(c.weight_centis) / 100.0 AS score
			FROM catches c
			JOIN players p ON p.telegram_id = c.user_id
			WHERE c.is_trash = 0 AND c.caught_at >= ?
			GROUP BY c.user_id
			ORDER BY score DESC
			LIMIT 10
		`,
		MetricTrash: `
			SELECT p.first_name, p.last_name, p.username, COUNT(c.id) AS score
			FROM catches c
			JOIN players p ON p.telegram_id = c.user_id
			WHERE c.is_trash = 1 AND c.caught_at >= ?
			GROUP BY c.user_id
			ORDER BY score DESC
			LIMIT 10
		`,
	}
	for m, q := range lbSQL {
		stmt, err := db.Prepare(q)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.lbStmts[m] = stmt
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.getStmt, s.upsertStmt, s.catchStmt, s.countStmt} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
	for _, stmt := range s.lbStmts {
		_ = stmt.Close()
	}
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS players (
			telegram_id    BIGINT PRIMARY KEY,
			username       TEXT NOT NULL DEFAULT '',
			first_name     TEXT NOT NULL DEFAULT '',
			last_name      TEXT NOT NULL DEFAULT '',
			balance        BIGINT NOT NULL DEFAULT 0,
			energy         REAL NOT NULL DEFAULT 0,
			rod_level      INTEGER NOT NULL DEFAULT 1,
			boat_level     INTEGER NOT NULL DEFAULT 0,
			bait_common    INTEGER NOT NULL DEFAULT 0,
			bait_rare      INTEGER NOT NULL DEFAULT 0,
			last_active_at INTEGER NOT NULL DEFAULT 0,
			last_click_at  REAL NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS catches (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id        BIGINT  NOT NULL,
			fish_id        TEXT    NOT NULL,
			weight_centis  INTEGER NOT NULL,
			is_trash       INTEGER NOT NULL,
			reward         BIGINT  NOT NULL,
			caught_at      INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_catches_user
			ON catches (user_id, caught_at);
		CREATE INDEX IF NOT EXISTS idx_catches_window
			ON catches (caught_at, is_trash);
	`)
	return err
}

func (s *SQLiteStore) GetPlayer(ctx context.Context, telegramID int64) (*economy.Player, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	var p economy.Player
	err := s.getStmt.QueryRowContext(ctx, telegramID).Scan(
		&p.TelegramID, &p.Username, &p.FirstName, &p.LastName,
		&p.Balance, &p.Energy, &p.RodLevel, &p.BoatLevel,
		&p.BaitCommon, &p.BaitRare, &p.LastActiveAt, &p.LastClickAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) Commit(ctx context.Context, p *economy.Player, c *fish.Catch) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.StmtContext(ctx, s.upsertStmt).ExecContext(ctx,
		p.TelegramID, p.Username, p.FirstName, p.LastName,
		p.Balance, p.Energy, p.RodLevel, p.BoatLevel,
		p.BaitCommon, p.BaitRare, p.LastActiveAt, p.LastClickAt,
	)
	if err != nil {
		return err
	}

	if c != nil {
		weightCentis := int64(math.Round(c.Weight * 100.0))
		_, err = tx.StmtContext(ctx, s.catchStmt).ExecContext(ctx,
			c.UserID, c.FishID, weightCentis, c.IsTrash, c.Reward, c.CaughtAt.Unix(),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Leaderboard(ctx context.Context, metric Metric, since time.Time) ([]LeaderboardRow, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	stmt, ok := s.lbStmts[metric]
	if !ok {
		return nil, fmt.Errorf("unknown leaderboard metric %q", metric)
	}

	lower := int64(0)
	if !since.IsZero() {
		lower = since.Unix()
	}

	rows, err := stmt.QueryContext(ctx, lower)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardRow, 0, 10)
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.FirstName, &r.LastName, &r.Username, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CountPlayers(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("store not initialized")
	}
	var n int
	if err := s.countStmt.QueryRowContext(ctx).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
