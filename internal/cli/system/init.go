package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing store file before initialization."`
	Source string `help:"Store path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.deleteExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized lovecount storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		n, err := copyKeys(ctx.Store, c.Source)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Printf("Copied %d record set(s).\n", n)
	}
	return nil
}

func (c *InitCmd) deleteExisting(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	switch storage.KindOf(dbPath) {
	case storage.KindJSON, storage.KindSQLite:
	default:
		return fmt.Errorf("--force only applies to file stores")
	}

	if c.Source != "" {
		absDB, err := filepath.Abs(dbPath)
		if err == nil {
			dbPath = absDB
		}
		absSource, err := filepath.Abs(storage.ExpandHome(c.Source))
		if err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing store: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing store: %w", err)
		}
		ctx.Printf("Deleted existing store at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing store: %w", err)
	}
	return nil
}

// copyKeys copies every app key present in the source into dst.
func copyKeys(dst storage.Provider, source string) (int, error) {
	src, err := storage.Open(source)
	if err != nil {
		return 0, fmt.Errorf("failed to load source store: %w", err)
	}
	defer src.Close()

	n := 0
	for _, key := range constants.AllKeys {
		raw, ok, err := src.Get(key)
		if err != nil {
			return n, fmt.Errorf("failed to read %s from source: %w", key, err)
		}
		if !ok {
			continue
		}
		if err := dst.Set(key, raw); err != nil {
			return n, fmt.Errorf("failed to write %s: %w", key, err)
		}
		n++
	}
	return n, nil
}
