package capture

// Schema DDL for the capture log.
const createCaptures = `CREATE TABLE IF NOT EXISTS captures (
    capture_id TEXT PRIMARY KEY,
    from_frame TEXT NOT NULL,
    to_frame TEXT NOT NULL,
    in_x REAL NOT NULL,
    in_y REAL NOT NULL,
    in_z REAL NOT NULL,
    out_x REAL NOT NULL,
    out_y REAL NOT NULL,
    out_z REAL NOT NULL,
    created_at TEXT NOT NULL
);`

// Index DDL for the common listing and filtering queries.
const (
	idxCapturesCreated = `CREATE INDEX IF NOT EXISTS idx_captures_created ON captures(created_at);`
	idxCapturesFrames  = `CREATE INDEX IF NOT EXISTS idx_captures_frames ON captures(from_frame, to_frame);`
)

// schemaDDL lists all schema statements in execution order.
var schemaDDL = []string{
	createCaptures,
	idxCapturesCreated,
	idxCapturesFrames,
}
