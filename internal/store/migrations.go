package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL CHECK(title <> ''),
	description TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	sort_order  INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_todos_sort_order ON todos(sort_order);

CREATE TABLE IF NOT EXISTS tags (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL CHECK(name <> ''),
	color TEXT NOT NULL DEFAULT 'BLUE',
	UNIQUE(name, color)
);

CREATE TABLE IF NOT EXISTS todo_tags (
	todo_id  TEXT NOT NULL REFERENCES todos(id) ON DELETE CASCADE,
	tag_id   TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
	position INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (todo_id, tag_id)
);

CREATE INDEX IF NOT EXISTS idx_todo_tags_tag_id ON todo_tags(tag_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_tags_name ON tags(name);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
