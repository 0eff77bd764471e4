// Package store persists indexed documents, their chunks, and chunk
// embeddings in a local SQLite database. Embeddings are stored as
// little-endian float32 blobs and similarity search runs in Go over the
// full embedding set, which stays fast at the corpus sizes a single
// vault holds.
package store

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/leefowlercu/docweave/internal/similarity"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id          TEXT PRIMARY KEY,
	source      TEXT NOT NULL UNIQUE,
	word_count  INTEGER NOT NULL,
	chunk_count INTEGER NOT NULL,
	indexed_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS chunks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	header      TEXT NOT NULL,
	content     TEXT NOT NULL,
	word_count  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS embeddings (
	chunk_id  INTEGER PRIMARY KEY REFERENCES chunks(id) ON DELETE CASCADE,
	model     TEXT NOT NULL,
	dims      INTEGER NOT NULL,
	vector    BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chunks_document ON chunks(document_id);
`

// Store wraps the SQLite database holding the indexed corpus.
type Store struct {
	db *sql.DB
}

// Document is an indexed source document.
type Document struct {
	ID         string
	Source     string
	WordCount  int
	ChunkCount int
	IndexedAt  time.Time
}

// ChunkRecord is a stored chunk with its optional embedding.
type ChunkRecord struct {
	ID        int64
	Position  int
	Header    string
	Content   string
	WordCount int
	Embedding []float32
}

// SearchResult pairs a stored chunk with its similarity to a query vector.
type SearchResult struct {
	Document   string
	Chunk      ChunkRecord
	Similarity float64
}

// Stats summarizes the store contents.
type Stats struct {
	Documents  int
	Chunks     int
	Embeddings int
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database; %w", err)
	}

	// Single writer keeps modernc's locking simple.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode; %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys; %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema; %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertDocument records a document, replacing any prior index of the
// same source along with its chunks and embeddings. It returns the
// document ID.
func (s *Store) UpsertDocument(ctx context.Context, source string, wordCount, chunkCount int) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction; %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM documents WHERE source = ?`, source).Scan(&existing)
	switch {
	case err == nil:
		if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, existing); err != nil {
			return "", fmt.Errorf("failed to replace document; %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
	default:
		return "", fmt.Errorf("failed to look up document; %w", err)
	}

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, source, word_count, chunk_count, indexed_at) VALUES (?, ?, ?, ?, ?)`,
		id, source, wordCount, chunkCount, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert document; %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit document; %w", err)
	}
	return id, nil
}

// InsertChunks stores chunks for a document in positional order.
// vectors may be nil, or must have one entry per chunk; a nil entry
// stores the chunk without an embedding.
func (s *Store) InsertChunks(ctx context.Context, documentID string, chunks []ChunkRecord, vectors [][]float32, model string) error {
	if vectors != nil && len(vectors) != len(chunks) {
		return fmt.Errorf("vector count %d does not match chunk count %d", len(vectors), len(chunks))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction; %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, c := range chunks {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO chunks (document_id, position, header, content, word_count) VALUES (?, ?, ?, ?, ?)`,
			documentID, i, c.Header, c.Content, c.WordCount)
		if err != nil {
			return fmt.Errorf("failed to insert chunk %d; %w", i, err)
		}

		if vectors == nil || vectors[i] == nil {
			continue
		}
		chunkID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read chunk id; %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO embeddings (chunk_id, model, dims, vector) VALUES (?, ?, ?, ?)`,
			chunkID, model, len(vectors[i]), serializeVector(vectors[i]))
		if err != nil {
			return fmt.Errorf("failed to insert embedding for chunk %d; %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chunks; %w", err)
	}
	return nil
}

// Documents lists all indexed documents ordered by source.
func (s *Store) Documents(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, word_count, chunk_count, indexed_at FROM documents ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents; %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Source, &d.WordCount, &d.ChunkCount, &d.IndexedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document; %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Chunks returns the stored chunks of a document in positional order,
// embeddings included where present.
func (s *Store) Chunks(ctx context.Context, documentID string) ([]ChunkRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.position, c.header, c.content, c.word_count, e.vector
		FROM chunks c
		LEFT JOIN embeddings e ON e.chunk_id = c.id
		WHERE c.document_id = ?
		ORDER BY c.position`, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks; %w", err)
	}
	defer func() { _ = rows.Close() }()

	var chunks []ChunkRecord
	for rows.Next() {
		var c ChunkRecord
		var blob []byte
		if err := rows.Scan(&c.ID, &c.Position, &c.Header, &c.Content, &c.WordCount, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan chunk; %w", err)
		}
		if blob != nil {
			c.Embedding = deserializeVector(blob)
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// FindDocument resolves a document by source path.
func (s *Store) FindDocument(ctx context.Context, source string) (Document, error) {
	var d Document
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, word_count, chunk_count, indexed_at FROM documents WHERE source = ?`,
		source).Scan(&d.ID, &d.Source, &d.WordCount, &d.ChunkCount, &d.IndexedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, source)
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to look up document; %w", err)
	}
	return d, nil
}

// DeleteDocument removes a document and, through cascade, its chunks and
// embeddings.
func (s *Store) DeleteDocument(ctx context.Context, documentID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document; %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, documentID)
	}
	return nil
}

// Search ranks all embedded chunks against the query vector and returns
// the top limit results above zero similarity.
func (s *Store) Search(ctx context.Context, query []float32, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT d.source, c.id, c.position, c.header, c.content, c.word_count, e.vector
		FROM embeddings e
		JOIN chunks c ON c.id = e.chunk_id
		JOIN documents d ON d.id = c.document_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query embeddings; %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var blob []byte
		if err := rows.Scan(&r.Document, &r.Chunk.ID, &r.Chunk.Position, &r.Chunk.Header,
			&r.Chunk.Content, &r.Chunk.WordCount, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan embedding; %w", err)
		}
		r.Chunk.Embedding = deserializeVector(blob)
		r.Similarity = similarity.Cosine(query, r.Chunk.Embedding)
		if r.Similarity > 0 {
			results = append(results, r)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Stats reports row counts across the store.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	row := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM documents),
			(SELECT COUNT(*) FROM chunks),
			(SELECT COUNT(*) FROM embeddings)`)
	if err := row.Scan(&st.Documents, &st.Chunks, &st.Embeddings); err != nil {
		return Stats{}, fmt.Errorf("failed to read stats; %w", err)
	}
	return st, nil
}

// serializeVector packs a vector as little-endian float32 bytes.
func serializeVector(vector []float32) []byte {
	blob := make([]byte, len(vector)*4)
	for i, v := range vector {
		binary.LittleEndian.PutUint32(blob[i*4:], math.Float32bits(v))
	}
	return blob
}

// deserializeVector unpacks a little-endian float32 blob.
func deserializeVector(blob []byte) []float32 {
	vector := make([]float32, len(blob)/4)
	for i := range vector {
		bits := binary.LittleEndian.Uint32(blob[i*4:])
		vector[i] = math.Float32frombits(bits)
	}
	return vector
}
