package sqlite

// schema creates the store's tables if they don't already exist, adapted
// from speedrun/data.go's initDatabase: the teacher's runs/splits pair
// survives with its columns generalized from one fixed game/category to
// attempt.Target's short/display name pairs, and splits.duration_ns
// becomes one aggregated total per split per run rather than one row per
// raw entered time (a RunSink/ComparisonProvider only ever needs
// per-split totals, never the individual corrections that produced
// them).
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_name TEXT NOT NULL,
	game_short TEXT NOT NULL,
	category_name TEXT NOT NULL,
	category_short TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	total_ms INTEGER NOT NULL,
	timestamp TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS run_splits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL,
	seq INTEGER NOT NULL,
	split_short TEXT NOT NULL,
	time_ms INTEGER NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(id)
);

CREATE INDEX IF NOT EXISTS idx_runs_category ON runs(category_short, completed);
CREATE INDEX IF NOT EXISTS idx_run_splits_run ON run_splits(run_id);
`
