package camera

import (
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/marktremmel/ca-mera/gbcam"
	_ "github.com/mattn/go-sqlite3"
)

// ErrShotNotFound is returned when a gallery id does not exist.
var ErrShotNotFound = errors.New("camera: shot not found")

// Shot is one gallery entry: a processed 128x112 frame stored as PNG
// together with the settings that produced it. Listing operations
// leave PNG nil.
type Shot struct {
	ID        int64
	SHA1      string
	Palette   string
	Contrast  float64
	Edge      float64
	PNG       []byte
	CreatedAt time.Time
}

// Gallery is the persistent shot store.
type Gallery struct {
	db *sql.DB
}

func OpenGallery(file string) (*Gallery, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS shot (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, palette TEXT NOT NULL, contrast REAL NOT NULL, edge REAL NOT NULL, png BLOB NOT NULL, created_at TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	return &Gallery{
		db: db,
	}, nil
}

func (g *Gallery) Close() error {
	return g.db.Close()
}

// Save stores a PNG-encoded shot and returns its id. Shots are
// deduplicated by content hash; saving identical bytes again returns
// the existing id.
func (g *Gallery) Save(png []byte, palette string, params gbcam.Params) (int64, error) {
	sha := fmt.Sprintf("%X", sha1.Sum(png))

	var id int64
	switch err := g.db.QueryRow("SELECT id FROM shot WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := g.db.Exec("INSERT INTO shot (sha1, palette, contrast, edge, png, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			sha, palette, params.Contrast, params.EdgeStrength, png, time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// Shots lists every stored shot, oldest first, without the PNG
// payloads.
func (g *Gallery) Shots() ([]Shot, error) {
	rows, err := g.db.Query("SELECT id, sha1, palette, contrast, edge, created_at FROM shot ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shots []Shot
	for rows.Next() {
		var s Shot
		var created string
		if err := rows.Scan(&s.ID, &s.SHA1, &s.Palette, &s.Contrast, &s.Edge, &created); err != nil {
			return nil, err
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, err
		}
		shots = append(shots, s)
	}

	return shots, rows.Err()
}

// Shot fetches a single stored shot including its PNG payload.
func (g *Gallery) Shot(id int64) (*Shot, error) {
	s := Shot{ID: id}
	var created string
	switch err := g.db.QueryRow("SELECT sha1, palette, contrast, edge, png, created_at FROM shot WHERE id = ?", id).
		Scan(&s.SHA1, &s.Palette, &s.Contrast, &s.Edge, &s.PNG, &created); err {
	case sql.ErrNoRows:
		return nil, ErrShotNotFound
	case nil:
		var err error
		if s.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, err
		}
		return &s, nil
	default:
		return nil, err
	}
}

// Delete removes a shot by id.
func (g *Gallery) Delete(id int64) error {
	result, err := g.db.Exec("DELETE FROM shot WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShotNotFound
	}

	return nil
}
