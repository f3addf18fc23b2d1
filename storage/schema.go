package storage

const Schema = `
CREATE TABLE IF NOT EXISTS kv (
	namespace TEXT NOT NULL,
	key TEXT NOT NULL,
	value BLOB NOT NULL,
	updated_at DATETIME NOT NULL,
	PRIMARY KEY (namespace, key)
);
`
