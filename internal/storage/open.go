package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/lovecount/internal/keyring"
	"github.com/julianstephens/lovecount/internal/logger"
	"github.com/julianstephens/lovecount/internal/storage/postgres"
	"github.com/julianstephens/lovecount/internal/storage/sqlite"
)

const (
	// MemoryTarget selects the in-process store.
	MemoryTarget = ":memory:"
	// KeyringTarget selects PostgreSQL with the connection string kept in the OS keyring.
	KeyringTarget = "keyring"
)

// Kind names a backend for diagnostics.
type Kind string

const (
	KindMemory   Kind = "memory"
	KindJSON     Kind = "json"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// KindOf classifies a store target without touching it.
func KindOf(target string) Kind {
	switch {
	case target == MemoryTarget:
		return KindMemory
	case target == KeyringTarget, strings.HasPrefix(target, "postgres://"), strings.HasPrefix(target, "postgresql://"):
		return KindPostgres
	case strings.EqualFold(filepath.Ext(target), ".json"):
		return KindJSON
	}
	return KindSQLite
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("could not resolve home directory", "error", err)
		return path
	}
	return filepath.Join(home, path[2:])
}

// New builds the backend for target. The returned provider still needs
// Init or Load.
func New(target string) (Provider, error) {
	switch KindOf(target) {
	case KindMemory:
		return NewMemoryStore(), nil
	case KindJSON:
		return NewJSONStore(ExpandHome(target)), nil
	case KindSQLite:
		return sqlite.NewStore(ExpandHome(target)), nil
	}

	if target == KeyringTarget {
		// The keyring is where the password is allowed to live.
		connStr, err := keyring.GetConnectionString()
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("no connection string in keyring, run 'lovecount keyring set' first")
		}
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	}

	if err := postgres.ValidateConnString(target); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, fmt.Errorf("%w: use the OS keyring (lovecount keyring set), PGPASSWORD, or a .pgpass file", err)
		}
		return nil, err
	}
	return postgres.New(target), nil
}

// Open builds and loads the backend for target.
func Open(target string) (Provider, error) {
	p, err := New(target)
	if err != nil {
		return nil, err
	}
	if err := p.Load(); err != nil {
		return nil, err
	}
	logger.Debug("store opened", "kind", KindOf(target))
	return p, nil
}
