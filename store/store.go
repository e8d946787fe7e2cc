/*
Package store keeps named profile pictures in a SQLite database. Each picture
is stored in its 128 byte binary form.
*/
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bodgit/profileimage/picture"
	_ "github.com/mattn/go-sqlite3" // register the sqlite3 driver
)

// ErrNotFound is returned when no picture is stored under a name
var ErrNotFound = errors.New("store: picture not found")

// Store is a database of profile pictures
type Store struct {
	db *sql.DB
}

// Open opens, creating if necessary, the database in file
func Open(file string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS profile (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, picture BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db: db,
	}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores img under name, replacing any existing picture
func (s *Store) Put(name string, img *picture.Image) error {
	if name == "" {
		return errors.New("store: empty name")
	}
	if _, err := s.db.Exec("INSERT INTO profile (name, picture) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET picture = excluded.picture", name, img.Bytes()); err != nil {
		return err
	}
	return nil
}

// Get returns the picture stored under name
func (s *Store) Get(name string) (*picture.Image, error) {
	var b []byte
	switch err := s.db.QueryRow("SELECT picture FROM profile WHERE name = ?", name).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, ErrNotFound
	case nil:
		return picture.FromBytes(b)
	default:
		return nil, err
	}
}

// Delete removes the picture stored under name
func (s *Store) Delete(name string) error {
	result, err := s.db.Exec("DELETE FROM profile WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Names returns the names of every stored picture in alphabetical order
func (s *Store) Names() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM profile ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
