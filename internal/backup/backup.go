// Package backup snapshots file-backed stores (SQLite or JSON) into a
// sibling "backups" directory and restores them.
package backup

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/logger"
)

// ErrUnsupported is returned for stores that do not live in a local file.
var ErrUnsupported = errors.New("backups are only available for file-backed stores")

type kind int

const (
	kindSQLite kind = iota
	kindJSON
)

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int
}

// Manager creates, lists, rotates and restores snapshots of one store file.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
	kind      kind
	keep      int
	now       func() time.Time
}

// NewManager returns a manager for storePath. JSON stores are recognised by
// their extension; everything else is treated as SQLite.
func NewManager(storePath string) *Manager {
	m := &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		suffix:    ".db",
		kind:      kindSQLite,
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
	if strings.EqualFold(filepath.Ext(storePath), ".json") {
		m.suffix = ".json"
		m.kind = kindJSON
	}
	return m
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// Create snapshots the store and prunes snapshots beyond the retention limit.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if _, err := os.Stat(m.storePath); err != nil {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}

	switch m.kind {
	case kindJSON:
		if err := verifyJSON(m.storePath); err != nil {
			return "", fmt.Errorf("store appears to be corrupted: %w", err)
		}
		err = copyFile(m.storePath, path)
	default:
		err = vacuumInto(m.storePath, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up store: %w", err)
	}

	logger.Info("Backup created", "path", path)
	return path, nil
}

// nextPath picks "<prefix><timestamp><suffix>", adding a counter when two
// snapshots land in the same second.
func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(constants.TimestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if n > 100 {
			return "", errors.New("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, n, m.suffix))
	}
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	if err := verifyDB(db); err != nil {
		return fmt.Errorf("store appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

// List returns snapshots newest first. Files that do not follow the naming
// scheme are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, seq, ok := m.parseName(entry.Name())
		if !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      fi.Size(),
			seq:       seq,
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].seq > backups[j].seq
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) parseName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
		return time.Time{}, 0, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)

	// Strip a collision counter: YYYYMMDD-HHMMSS-N.
	seq := 0
	if n := len(constants.TimestampFormat); len(stamp) > n {
		counter, ok := strings.CutPrefix(stamp[n:], "-")
		if !ok {
			return time.Time{}, 0, false
		}
		var err error
		if seq, err = strconv.Atoi(counter); err != nil {
			return time.Time{}, 0, false
		}
		stamp = stamp[:n]
	}

	ts, err := time.ParseInLocation(constants.TimestampFormat, stamp, time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}
	return ts, seq, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store with the snapshot at path. The current store is
// snapshotted first; the returned path is that safety copy, empty when there
// was no store to save. Restore itself never rotates, so a snapshot restored
// from the tail of the list survives. The safety copy is an ordinary backup
// and ages out under the usual retention on later Creates.
func (m *Manager) Restore(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("backup file does not exist: %s", path)
	}
	if err := m.verify(path); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var safety string
	if _, err := os.Stat(m.storePath); err == nil {
		if safety, err = m.create(); err != nil {
			return "", fmt.Errorf("failed to back up current store before restore: %w", err)
		}
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return "", fmt.Errorf("failed to restore store: %w", err)
	}

	logger.Info("Backup restored", "from", path, "safety", safety)
	return safety, nil
}

func (m *Manager) verify(path string) error {
	if m.kind == kindJSON {
		return verifyJSON(path)
	}
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	return verifyDB(db)
}

func verifyDB(db *sql.DB) error {
	var n int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&n)
}

func verifyJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return errors.New("not a JSON document")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
