package store

// schemaSQL defines the in-memory dataset schema. The primary key encodes
// the dataset invariant: one observation per (division, state, date).
const schemaSQL = `
CREATE TABLE IF NOT EXISTS observations (
	date          TEXT NOT NULL,
	division      TEXT NOT NULL,
	state         TEXT NOT NULL,
	inflation_mom REAL NOT NULL,
	label         TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (division, state, date)
);

CREATE INDEX IF NOT EXISTS idx_obs_selection ON observations (division, state, date);
`
