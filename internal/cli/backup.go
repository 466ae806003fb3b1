package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/agenda/internal/backup"
	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/logger"
)

func (c *Context) backupManager() (*backup.Manager, error) {
	path, ok := StorePath(c.Config)
	if !ok {
		return nil, backup.ErrUnsupported
	}
	return backup.NewManager(path), nil
}

// AutoBackup snapshots a file store and keeps going on failure.
func (c *Context) AutoBackup() {
	mgr, err := c.backupManager()
	if err != nil {
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	if _, err := ctx.Storage(); err != nil {
		return err
	}

	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Fprintf(ctx.Out, "✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}

	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		fmt.Fprintln(ctx.Out, "No backups found.")
		fmt.Fprintf(ctx.Out, "Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	fmt.Fprintf(ctx.Out, "Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		fmt.Fprintf(ctx.Out, "  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	fmt.Fprintf(ctx.Out, "\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Path or file name of the backup to restore."`
	Yes  bool   `help:"Do not ask for confirmation." short:"y"`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}

	path := c.File
	if !filepath.IsAbs(path) {
		if candidate := filepath.Join(mgr.Dir(), path); exists(candidate) {
			path = candidate
		}
	}
	if !exists(path) {
		return fmt.Errorf("backup file not found: %s", path)
	}

	if !c.Yes {
		fmt.Fprintln(ctx.Out, "This will replace your current week with the backup.")
		fmt.Fprintln(ctx.Out, "A backup of the current storage is taken first.")
		fmt.Fprintf(ctx.Out, "\nRestore from: %s\n", filepath.Base(path))
		fmt.Fprint(ctx.Out, "Continue? [y/N]: ")

		answer, err := bufio.NewReader(ctx.In).ReadString('\n')
		if err != nil && answer == "" {
			return err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(ctx.Out, "Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close storage: %v\n", err)
	}

	safety, err := mgr.Restore(path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if safety != "" {
		fmt.Fprintf(ctx.Out, "Saved current storage as: %s\n", filepath.Base(safety))
	}
	fmt.Fprintln(ctx.Out, "✓ Week restored")
	return nil
}
