// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/gyrus-dev/gyrus/internal/memory"
	"github.com/gyrus-dev/gyrus/internal/store"
)

// Compile-time interface check.
var _ store.NodeStore = (*NodeStore)(nil)

// NodeStore implements store.NodeStore backed by a single SQLite database.
type NodeStore struct {
	db *sql.DB
}

// NewNodeStore opens (or creates) a SQLite database at dbPath and
// initialises the nodes table.
func NewNodeStore(dbPath string) (*NodeStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening nodes db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging nodes db: %w", err)
	}

	if err := migrateNodes(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating nodes db: %w", err)
	}

	return &NodeStore{db: db}, nil
}

func migrateNodes(db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS nodes (
	id              TEXT PRIMARY KEY,
	content         TEXT NOT NULL DEFAULT '',
	vector          BLOB NOT NULL DEFAULT x'',
	vector_model_id TEXT NOT NULL DEFAULT '',
	metadata        TEXT NOT NULL DEFAULT '{}',
	created_at      TEXT NOT NULL,
	expires_at      TEXT NOT NULL DEFAULT '',
	circle_id       TEXT NOT NULL DEFAULT 'local'
);

CREATE INDEX IF NOT EXISTS idx_nodes_created_at ON nodes(created_at);
CREATE INDEX IF NOT EXISTS idx_nodes_circle     ON nodes(circle_id);
`
	_, err := db.Exec(ddl)
	return err
}

const nodeColumns = `id, content, vector, vector_model_id, metadata, created_at, expires_at, circle_id`

// Save inserts a new Node. An id collision maps to store.ErrDuplicateID
// and leaves the existing record untouched.
func (s *NodeStore) Save(ctx context.Context, node *memory.Node) error {
	if node == nil || node.ID == "" {
		return fmt.Errorf("node id must not be empty: %w", store.ErrInvalidInput)
	}

	metaJSON := []byte("{}")
	if len(node.Metadata) > 0 {
		var err error
		metaJSON, err = json.Marshal(node.Metadata)
		if err != nil {
			return fmt.Errorf("marshalling metadata for node %s: %w", node.ID, err)
		}
	}

	circleID := node.CircleID
	if circleID == "" {
		circleID = memory.DefaultCircle
	}

	const q = `INSERT INTO nodes (` + nodeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		node.ID, node.Content, encodeVector(node.Vector), node.VectorModelID,
		string(metaJSON), formatTime(node.CreatedAt), formatTime(node.ExpiresAt), circleID,
	)
	if err != nil {
		var sqlErr sqlite3.Error
		if errors.As(err, &sqlErr) && sqlErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("node %s: %w", node.ID, store.ErrDuplicateID)
		}
		return fmt.Errorf("inserting node %s: %w", node.ID, err)
	}
	return nil
}

// FindLast returns up to limit Nodes, newest first, optionally restricted
// to one circle. limit <= 0 yields an empty result.
func (s *NodeStore) FindLast(ctx context.Context, limit int, circleID string) ([]*memory.Node, error) {
	if limit <= 0 {
		return nil, nil
	}

	q := `SELECT ` + nodeColumns + ` FROM nodes`
	args := []any{}
	if circleID != "" {
		q += ` WHERE circle_id = ?`
		args = append(args, circleID)
	}
	q += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recent nodes: %w", err)
	}
	defer rows.Close() //nolint:errcheck // error on read-path close is not actionable

	return scanNodes(rows)
}

// FindSimilar scans stored Nodes sharing queryModelID and returns up to
// limit of them by descending cosine similarity. Nodes embedded by another
// model never participate in the comparison.
func (s *NodeStore) FindSimilar(ctx context.Context, queryVec []float32, queryModelID string, limit int) ([]*memory.Node, error) {
	if limit <= 0 {
		return nil, nil
	}

	const q = `SELECT ` + nodeColumns + ` FROM nodes WHERE vector_model_id = ?`
	rows, err := s.db.QueryContext(ctx, q, queryModelID)
	if err != nil {
		return nil, fmt.Errorf("scanning nodes for similarity: %w", err)
	}
	defer rows.Close() //nolint:errcheck // error on read-path close is not actionable

	nodes, err := scanNodes(rows)
	if err != nil {
		return nil, err
	}

	type scored struct {
		node *memory.Node
		sim  float64
	}
	ranked := make([]scored, len(nodes))
	for i, n := range nodes {
		ranked[i] = scored{node: n, sim: memory.CosineSimilarity(queryVec, n.Vector)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].sim > ranked[j].sim })

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]*memory.Node, len(ranked))
	for i, r := range ranked {
		out[i] = r.node
	}
	return out, nil
}

// DeleteExpired removes every Node whose age exceeds ttl and returns the
// count deleted. Each Node is judged against its own created_at, so a
// Node saved while a sweep runs is only deleted if it is already past the
// TTL at evaluation time.
func (s *NodeStore) DeleteExpired(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := formatTime(time.Now().Add(-ttl))

	result, err := s.db.ExecContext(ctx, `DELETE FROM nodes WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting expired nodes: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting expired deletions: %w", err)
	}
	return deleted, nil
}

// PurgeCircle deletes all Nodes in circleID and returns the count deleted.
func (s *NodeStore) PurgeCircle(ctx context.Context, circleID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM nodes WHERE circle_id = ?`, circleID)
	if err != nil {
		return 0, fmt.Errorf("purging circle %s: %w", circleID, err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged nodes for circle %s: %w", circleID, err)
	}
	return deleted, nil
}

// PurgeAll deletes every Node in every circle and returns the count.
func (s *NodeStore) PurgeAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM nodes`)
	if err != nil {
		return 0, fmt.Errorf("purging all nodes: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged nodes: %w", err)
	}
	return deleted, nil
}

// CountByCircle returns the number of live Nodes in circleID.
func (s *NodeStore) CountByCircle(ctx context.Context, circleID string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM nodes WHERE circle_id = ?`, circleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting nodes for circle %s: %w", circleID, err)
	}
	return count, nil
}

// ListCircles returns the distinct circle ids currently holding Nodes,
// with live counts, ordered by id.
func (s *NodeStore) ListCircles(ctx context.Context) ([]store.CircleCount, error) {
	const q = `SELECT circle_id, COUNT(*) FROM nodes GROUP BY circle_id ORDER BY circle_id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing circles: %w", err)
	}
	defer rows.Close() //nolint:errcheck // error on read-path close is not actionable

	var counts []store.CircleCount
	for rows.Next() {
		var c store.CircleCount
		if err := rows.Scan(&c.CircleID, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning circle count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating circle counts: %w", err)
	}
	return counts, nil
}

// Close closes the underlying database connection.
func (s *NodeStore) Close() error {
	return s.db.Close()
}

func scanNodes(rows *sql.Rows) ([]*memory.Node, error) {
	var nodes []*memory.Node
	for rows.Next() {
		var n memory.Node
		var vecBlob []byte
		var metaJSON, createdAt, expiresAt string
		if err := rows.Scan(
			&n.ID, &n.Content, &vecBlob, &n.VectorModelID,
			&metaJSON, &createdAt, &expiresAt, &n.CircleID,
		); err != nil {
			return nil, fmt.Errorf("scanning node row: %w", err)
		}

		vec, err := decodeVector(vecBlob)
		if err != nil {
			return nil, fmt.Errorf("decoding vector for node %s: %w", n.ID, err)
		}
		n.Vector = vec

		if metaJSON != "" && metaJSON != "{}" {
			if err := json.Unmarshal([]byte(metaJSON), &n.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshalling metadata for node %s: %w", n.ID, err)
			}
		} else {
			n.Metadata = map[string]string{}
		}

		n.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing node %s created_at: %w", n.ID, err)
		}
		n.ExpiresAt, err = parseTime(expiresAt)
		if err != nil {
			return nil, fmt.Errorf("parsing node %s expires_at: %w", n.ID, err)
		}

		nodes = append(nodes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating node rows: %w", err)
	}
	return nodes, nil
}

// encodeVector packs a vector as little-endian IEEE-754 float32, in order.
// Round-trips exactly to float32 precision.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("vector blob length %d is not a multiple of 4", len(blob))
	}
	if len(blob) == 0 {
		return nil, nil
	}
	vec := make([]float32, len(blob)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	return vec, nil
}

// timeLayout is RFC 3339 with a fixed-width nanosecond fraction so stored
// timestamps order lexicographically, which created_at comparisons rely on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime serialises a time for storage. Zero times store as "".
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

// parseTime deserialises a time string stored in the database.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
