// Package backup writes compressed snapshots of every stored key and
// restores them into any storage backend.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/logger"
	"github.com/julianstephens/lovecount/internal/storage"
)

const snapshotVersion = 1

var ErrInvalidBackup = errors.New("backup file is corrupted or invalid")

// Snapshot is the decoded content of a backup file.
type Snapshot struct {
	Version   int               `json:"version"`
	CreatedAt string            `json:"createdAt"`
	Source    string            `json:"source"`
	Entries   map[string]string `json:"entries"`
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations
type Manager struct {
	store     storage.Provider
	backupDir string
	now       func() time.Time
}

// NewManager creates a backup manager writing into backupDir.
func NewManager(store storage.Provider, backupDir string) *Manager {
	return &Manager{
		store:     store,
		backupDir: backupDir,
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0o700)
}

// CreateBackup snapshots the store and rotates old backups.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// skipRotation keeps a pre-restore backup from evicting the one being restored.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	snap, err := m.snapshot()
	if err != nil {
		return "", err
	}

	backupPath, err := m.uniquePath()
	if err != nil {
		return "", err
	}
	if err := writeSnapshot(backupPath, snap); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	logger.Info("backup created", "path", backupPath, "keys", len(snap.Entries))

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("failed to rotate old backups", "error", err)
		}
	}
	return backupPath, nil
}

func (m *Manager) snapshot() (Snapshot, error) {
	snap := Snapshot{
		Version:   snapshotVersion,
		CreatedAt: m.now().UTC().Format(constants.TimestampFormat),
		Source:    string(storage.KindOf(m.store.GetConfigPath())),
		Entries:   map[string]string{},
	}
	for _, key := range constants.AllKeys {
		raw, ok, err := m.store.Get(key)
		if err != nil {
			return snap, fmt.Errorf("read %s: %w", key, err)
		}
		if ok {
			snap.Entries[key] = raw
		}
	}
	return snap, nil
}

// uniquePath picks a free file name; minute precision first, then seconds,
// then a counter.
func (m *Manager) uniquePath() (string, error) {
	now := m.now()
	name := func(stamp string) string {
		return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	}

	p := name(now.Format("20060102-1504"))
	if !exists(p) {
		return p, nil
	}
	stamp := now.Format("20060102-150405")
	p = name(stamp)
	for counter := 1; exists(p); counter++ {
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		p = name(fmt.Sprintf("%s-%d", stamp, counter))
	}
	return p, nil
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func writeSnapshot(path string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer enc.Close()
	data := enc.EncodeAll(raw, make([]byte, 0, len(raw)/2))

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// ReadSnapshot decodes and checks a backup file.
func ReadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, err
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return snap, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return snap, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snap, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if snap.Version != snapshotVersion {
		return snap, fmt.Errorf("%w: unsupported version %d", ErrInvalidBackup, snap.Version)
	}
	if snap.Entries == nil {
		snap.Entries = map[string]string{}
	}
	return snap, nil
}

// ListBackups returns a list of all available backups, sorted by timestamp (newest first)
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if errors.Is(err, os.ErrNotExist) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		timestamp, ok := parseStamp(strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix))
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseStamp reads YYYYMMDD-HHMM or YYYYMMDD-HHMMSS with an optional -N counter.
func parseStamp(s string) (time.Time, bool) {
	parts := strings.Split(s, "-")
	if len(parts) == 3 {
		s = parts[0] + "-" + parts[1]
	}
	for _, layout := range []string{"20060102-1504", "20060102-150405"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces every app key with the backup's content. The
// current data is backed up first and that path is returned.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if !exists(backupPath) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	snap, err := ReadSnapshot(backupPath)
	if err != nil {
		return "", err
	}

	current, err := m.createBackup(true)
	if err != nil {
		return "", fmt.Errorf("failed to backup current data before restore: %w", err)
	}

	for _, key := range constants.AllKeys {
		raw, ok := snap.Entries[key]
		if ok {
			err = m.store.Set(key, raw)
		} else {
			err = m.store.Remove(key)
		}
		if err != nil {
			return current, fmt.Errorf("failed to restore %s: %w", key, err)
		}
	}
	logger.Info("backup restored", "path", backupPath, "previous", current)
	return current, nil
}
