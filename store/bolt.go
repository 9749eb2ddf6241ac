// Package store persists saved builds in a local bbolt key-value database.
//
// The whole snapshot collection lives under a single key and is read and
// rewritten in full on every change. That is a simplicity-over-scalability
// choice: the data is user-scale, tens of builds at most.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hgrv/partlog"
	"github.com/hgrv/partlog/date"
	"go.etcd.io/bbolt"
)

const (
	bucketBuilds = "builds"    // key: "snapshots" -> []partlog.SavedBuild JSON
	keySnapshots = "snapshots" // the one key holding the whole collection
)

// ErrNotFound is returned when no saved build carries the requested id.
var ErrNotFound = errors.New("saved build not found")

// DB wraps the bbolt database holding the saved-build collection.
type DB struct {
	storage *bbolt.DB
}

// Open creates or opens the database at the specified path.
func Open(path string) (*DB, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketBuilds))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &DB{storage: instance}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.storage.Close()
}

// readAll decodes the whole snapshot collection from the bucket.
// A missing key decodes as an empty collection.
func readAll(tx *bbolt.Tx) ([]partlog.SavedBuild, error) {
	v := tx.Bucket([]byte(bucketBuilds)).Get([]byte(keySnapshots))
	if v == nil {
		return nil, nil
	}
	var builds []partlog.SavedBuild
	if err := json.Unmarshal(v, &builds); err != nil {
		return nil, fmt.Errorf("cannot decode saved builds: %w", err)
	}
	return builds, nil
}

// writeAll rewrites the whole snapshot collection under the single key.
func writeAll(tx *bbolt.Tx, builds []partlog.SavedBuild) error {
	data, err := json.Marshal(builds)
	if err != nil {
		return fmt.Errorf("cannot encode saved builds: %w", err)
	}
	return tx.Bucket([]byte(bucketBuilds)).Put([]byte(keySnapshots), data)
}

// SaveBuild snapshots the given parts under a new named build and appends it
// to the stored collection. An empty (or whitespace) name is rejected and
// nothing is written.
func (d *DB) SaveBuild(name string, on date.Date, parts []partlog.Part) (partlog.SavedBuild, error) {
	build, err := partlog.NewSavedBuild(name, on, parts)
	if err != nil {
		return partlog.SavedBuild{}, err
	}

	err = d.storage.Update(func(tx *bbolt.Tx) error {
		builds, err := readAll(tx)
		if err != nil {
			return err
		}
		return writeAll(tx, append(builds, build))
	})
	if err != nil {
		return partlog.SavedBuild{}, err
	}
	return build, nil
}

// Builds returns the stored collection in insertion order.
func (d *DB) Builds() ([]partlog.SavedBuild, error) {
	var builds []partlog.SavedBuild

	err := d.storage.View(func(tx *bbolt.Tx) error {
		var err error
		builds, err = readAll(tx)
		return err
	})

	return builds, err
}

// Build returns one saved build by id, or ErrNotFound.
func (d *DB) Build(id string) (partlog.SavedBuild, error) {
	var found partlog.SavedBuild

	err := d.storage.View(func(tx *bbolt.Tx) error {
		builds, err := readAll(tx)
		if err != nil {
			return err
		}
		for _, b := range builds {
			if b.ID == id {
				found = b
				return nil
			}
		}
		return fmt.Errorf("build %q: %w", id, ErrNotFound)
	})

	return found, err
}

// DeleteBuild removes exactly the build with the given id and rewrites the
// collection, leaving the others' order and content untouched.
func (d *DB) DeleteBuild(id string) error {
	return d.storage.Update(func(tx *bbolt.Tx) error {
		builds, err := readAll(tx)
		if err != nil {
			return err
		}
		next := builds[:0]
		found := false
		for _, b := range builds {
			if b.ID == id {
				found = true
				continue
			}
			next = append(next, b)
		}
		if !found {
			return fmt.Errorf("build %q: %w", id, ErrNotFound)
		}
		return writeAll(tx, next)
	})
}
