package db

import (
	"database/sql"
	"fmt"
)

// Table DDL for the five output streams plus the manual-resolution report.
// Tags and way members cascade on delete of their parent record so dropping
// an invalid record removes its annotations with it.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS nodes (
		id bigint NOT NULL,
		lat real,
		lon real,
		"user" text,
		uid integer,
		version integer,
		changeset integer,
		"timestamp" text,
		CONSTRAINT nodes_pkey PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS nodes_tags (
		id bigint,
		key text,
		value text,
		type text,
		CONSTRAINT nodes_tags_id_fkey FOREIGN KEY (id)
			REFERENCES nodes (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS ways (
		id bigint NOT NULL,
		"user" text,
		uid integer,
		version text,
		changeset integer,
		"timestamp" text,
		CONSTRAINT ways_pkey PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS ways_nodes (
		id bigint NOT NULL,
		node_id bigint NOT NULL,
		"position" integer NOT NULL,
		CONSTRAINT ways_nodes_id_fkey FOREIGN KEY (id)
			REFERENCES ways (id),
		CONSTRAINT ways_nodes_node_id_fkey FOREIGN KEY (node_id)
			REFERENCES nodes (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS ways_tags (
		id bigint NOT NULL,
		key text NOT NULL,
		value text NOT NULL,
		type text,
		CONSTRAINT ways_tags_id_fkey FOREIGN KEY (id)
			REFERENCES ways (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS problems (
		problem_id serial PRIMARY KEY,
		record_id text NOT NULL,
		category text NOT NULL,
		value text
	)`,
}

var indexStatements = []string{
	"CREATE INDEX IF NOT EXISTS nodes_tags_id_idx ON nodes_tags (id)",
	"CREATE INDEX IF NOT EXISTS nodes_tags_key_idx ON nodes_tags (key)",
	"CREATE INDEX IF NOT EXISTS ways_tags_id_idx ON ways_tags (id)",
	"CREATE INDEX IF NOT EXISTS ways_tags_key_idx ON ways_tags (key)",
	"CREATE INDEX IF NOT EXISTS ways_nodes_id_idx ON ways_nodes (id)",
}

// CreateSchema ensures the output tables exist.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// CreateIndexes builds the lookup indexes. Called after bulk load so the
// load itself stays fast.
func CreateIndexes(db *sql.DB) error {
	for _, stmt := range indexStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
