// Package sqlite implements session.RunSink and session.ComparisonProvider
// over a local SQLite database, adapted from speedrun/data.go's
// RunManager (spec §6 "Persistence"). Where the teacher kept one game and
// category per database file, this store keys every row by
// attempt.Target's category short name, so one database serves every
// category a session is pointed at.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nictuku/splitrun/internal/aggregate"
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/timeval"
)

// Store is a RunSink and ComparisonProvider backed by one SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and ensures its
// schema exists, mirroring speedrun/data.go's NewRunManager.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save persists run, collapsing whatever Timing detail it carries down to
// one total-per-split row, and returns session.Saved unless run.Completed
// is false (incomplete runs are recorded for history but the sink still
// reports it ignored them for PB purposes), per speedrun/data.go's
// saveRun.
func (s *Store) Save(ctx context.Context, run attempt.HistoricalRun) (session.Outcome, error) {
	splits, err := splitTotals(run.Timing)
	if err != nil {
		return session.Ignored, err
	}
	total := timeval.Time{}
	for _, t := range splits {
		total = total.Add(t.total)
	}
	if summary, ok := run.Timing.(attempt.SummaryTiming); ok {
		total = summary.Total
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return session.Ignored, fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (game_name, game_short, category_name, category_short, completed, total_ms, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.Target.GameName, run.Target.GameShort.String(), run.Target.CategoryName, run.Target.CategoryShort.String(),
		boolToInt(run.Completed), total.Millis(), run.Timestamp)
	if err != nil {
		return session.Ignored, fmt.Errorf("sqlite: inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return session.Ignored, fmt.Errorf("sqlite: run id: %w", err)
	}

	for seq, sp := range splits {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_splits (run_id, seq, split_short, time_ms) VALUES (?, ?, ?, ?)
		`, runID, seq, sp.short.String(), sp.total.Millis()); err != nil {
			return session.Ignored, fmt.Errorf("sqlite: inserting split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return session.Ignored, fmt.Errorf("sqlite: commit: %w", err)
	}
	if !run.Completed {
		return session.Ignored, nil
	}
	return session.Saved, nil
}

type splitTotal struct {
	short attempt.ShortName
	total timeval.Time
}

// splitTotals flattens any Timing variant to one total per split:
// FullTiming in recorded order, TotalsTiming (a map) in no defined order;
// SummaryTiming carries no per-split breakdown and returns none.
func splitTotals(t attempt.Timing) ([]splitTotal, error) {
	switch v := t.(type) {
	case attempt.FullTiming:
		out := make([]splitTotal, len(v))
		for i, st := range v {
			out[i] = splitTotal{short: st.Short, total: timeval.Sum(st.Times)}
		}
		return out, nil
	case attempt.TotalsTiming:
		out := make([]splitTotal, 0, len(v))
		for short, total := range v {
			out = append(out, splitTotal{short: short, total: total})
		}
		return out, nil
	case attempt.SummaryTiming:
		return nil, nil
	default:
		return nil, fmt.Errorf("sqlite: unknown timing variant %T", t)
	}
}

// Comparison builds a comparison.Comparison for target from every
// completed run stored under its category: the fastest total is the PB
// run (its per-split aggregates become InPbRun), and each split's fastest
// individual total across all completed runs becomes SplitPB — the same
// two-query shape as speedrun/data.go's loadPersonalBest plus
// ComputeBestSegments, merged into one provider call since
// session.ComparisonProvider wants both at once.
func (s *Store) Comparison(ctx context.Context, target attempt.Target) (comparison.Comparison, bool, error) {
	var pbID int64
	var pbTotalMs int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, total_ms FROM runs
		WHERE category_short = ? AND completed = 1
		ORDER BY total_ms ASC LIMIT 1
	`, target.CategoryShort.String()).Scan(&pbID, &pbTotalMs)
	if err == sql.ErrNoRows {
		return comparison.Empty(), false, nil
	}
	if err != nil {
		return comparison.Comparison{}, false, fmt.Errorf("sqlite: querying pb run: %w", err)
	}

	inPbRun, err := s.pbRunAggregates(ctx, pbID)
	if err != nil {
		return comparison.Comparison{}, false, err
	}
	gold, err := s.goldSegments(ctx, target.CategoryShort)
	if err != nil {
		return comparison.Comparison{}, false, err
	}

	shorts := map[attempt.ShortName]struct{}{}
	for short := range inPbRun {
		shorts[short] = struct{}{}
	}
	for short := range gold {
		shorts[short] = struct{}{}
	}

	splits := make(map[attempt.ShortName]comparison.SplitRecord, len(shorts))
	var sumOfBest timeval.Time
	for short := range shorts {
		agg, hasInRun := inPbRun[short]
		g, hasGold := gold[short]
		splits[short] = comparison.SplitRecord{
			SplitPB:    g,
			HasSplitPB: hasGold,
			InPbRun:    agg,
			HasInPbRun: hasInRun,
		}
		if hasGold {
			sumOfBest = sumOfBest.Add(g)
		}
	}

	return comparison.Comparison{
		Splits: splits,
		Run: comparison.RunTotals{
			TotalInPbRun: timeval.FromMillis(uint32(pbTotalMs)),
			HasTotal:     true,
			SumOfBest:    sumOfBest,
			HasSumOfBest: len(gold) > 0,
		},
	}, true, nil
}

func (s *Store) pbRunAggregates(ctx context.Context, runID int64) (map[attempt.ShortName]aggregate.Set, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT split_short, time_ms FROM run_splits WHERE run_id = ? ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: querying pb splits: %w", err)
	}
	defer rows.Close()

	var named []aggregate.Named
	for rows.Next() {
		var short string
		var ms int64
		if err := rows.Scan(&short, &ms); err != nil {
			return nil, fmt.Errorf("sqlite: scanning pb split: %w", err)
		}
		named = append(named, aggregate.Named{Short: attempt.Intern(short), Time: timeval.FromMillis(uint32(ms))})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: reading pb splits: %w", err)
	}

	scanned := aggregate.Scan(named)
	out := make(map[attempt.ShortName]aggregate.Set, len(named))
	for i, n := range named {
		out[n.Short] = scanned[i]
	}
	return out, nil
}

func (s *Store) goldSegments(ctx context.Context, categoryShort attempt.ShortName) (map[attempt.ShortName]timeval.Time, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_splits.split_short, MIN(run_splits.time_ms)
		FROM run_splits
		JOIN runs ON run_splits.run_id = runs.id
		WHERE runs.category_short = ? AND runs.completed = 1
		GROUP BY run_splits.split_short
	`, categoryShort.String())
	if err != nil {
		return nil, fmt.Errorf("sqlite: querying gold segments: %w", err)
	}
	defer rows.Close()

	out := map[attempt.ShortName]timeval.Time{}
	for rows.Next() {
		var short string
		var ms int64
		if err := rows.Scan(&short, &ms); err != nil {
			return nil, fmt.Errorf("sqlite: scanning gold segment: %w", err)
		}
		out[attempt.Intern(short)] = timeval.FromMillis(uint32(ms))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: reading gold segments: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
