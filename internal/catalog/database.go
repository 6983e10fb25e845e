package catalog

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
	"sigs.k8s.io/yaml"
)

// LoadHook runs once, after the catalog entries finish loading.
type LoadHook func(entries []*Entry)

// Database holds the catalog entries and the hooks that post-process them.
type Database struct {
	entries  []*Entry
	loaded   bool
	hooksRan bool
	hooks    []LoadHook
	log      logr.Logger
}

type catalogFile struct {
	Items []*Entry `json:"items"`
}

// NewDatabase returns an empty, not yet loaded database.
func NewDatabase(log logr.Logger) *Database {
	return &Database{log: log}
}

// AddLoadHook registers fn to run the first time Ready succeeds.
func (db *Database) AddLoadHook(fn LoadHook) {
	db.hooks = append(db.hooks, fn)
}

// LoadFile reads a YAML catalog of the form `items: [...]`.
func (db *Database) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read catalog %s", path)
	}
	entries, err := Decode(data)
	if err != nil {
		return errors.Wrapf(err, "parse catalog %s", path)
	}
	db.SetEntries(entries)
	db.log.Info("catalog loaded", "path", path, "entries", len(entries))
	return nil
}

// Decode parses and validates catalog YAML. Names and notes are normalised
// to NFC.
func Decode(data []byte) ([]*Entry, error) {
	var file catalogFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(file.Items))
	for i, entry := range file.Items {
		if entry == nil {
			return nil, fmt.Errorf("item %d is empty", i)
		}
		if entry.ID <= 0 {
			return nil, fmt.Errorf("item %q: id must be positive", entry.Name)
		}
		if seen[entry.ID] {
			return nil, fmt.Errorf("item %q: duplicate id %d", entry.Name, entry.ID)
		}
		if entry.Quantity < 0 {
			return nil, fmt.Errorf("item %q: negative quantity", entry.Name)
		}
		seen[entry.ID] = true
		entry.Name = norm.NFC.String(entry.Name)
		entry.Description = norm.NFC.String(entry.Description)
		entry.Note = norm.NFC.String(entry.Note)
	}
	return file.Items, nil
}

// SetEntries replaces the entries and marks the database loaded. Hooks run
// again on the next Ready call.
func (db *Database) SetEntries(entries []*Entry) {
	db.entries = entries
	db.loaded = true
	db.hooksRan = false
}

// Ready reports whether the catalog is loaded, running the load hooks the
// first time it is.
func (db *Database) Ready() bool {
	if !db.loaded {
		return false
	}
	if !db.hooksRan {
		db.hooksRan = true
		for _, fn := range db.hooks {
			fn(db.entries)
		}
	}
	return true
}

// Entries returns the loaded entries in catalog order.
func (db *Database) Entries() []*Entry {
	return db.entries
}

// Entry looks an entry up by id.
func (db *Database) Entry(id int) *Entry {
	for _, entry := range db.entries {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}
