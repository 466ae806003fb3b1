// Package cli holds the kong command tree and the per-invocation context the
// commands share.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/models"
	"github.com/julianstephens/agenda/internal/persistence"
	"github.com/julianstephens/agenda/internal/schedule"
	"github.com/julianstephens/agenda/internal/storage"
)

// CLI is the command grammar parsed by kong.
type CLI struct {
	Version kong.VersionFlag `help:"Print version and exit."`
	Config  string           `help:"Storage location: a .db or .json file, a postgres:// or redis:// URL, or 'keyring'. Database passwords must not be passed here; store them with 'agenda keyring set'." default:"${config}"`
	Debug   bool             `help:"Log debug output to stderr."`

	Tui      TuiCmd      `cmd:"" help:"Open the weekly planner." default:"1"`
	Init     InitCmd     `cmd:"" help:"Initialize agenda storage."`
	Show     ShowCmd     `cmd:"" help:"Print the week grid."`
	Progress ProgressCmd `cmd:"" help:"Print weekly progress."`
	Set      SetCmd      `cmd:"" help:"Set the task text of a cell."`
	Done     DoneCmd     `cmd:"" help:"Toggle the done flag of a cell."`
	Priority PriorityCmd `cmd:"" help:"Set the priority of a cell."`
	Reset    ResetCmd    `cmd:"" help:"Clear the whole week."`
	Export   ExportCmd   `cmd:"" help:"Write a printable copy of the week."`
	Backup   struct {
		Create  BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    BackupListCmd    `cmd:"" help:"List available backups."`
		Restore BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Keyring struct {
		Set    KeyringSetCmd    `cmd:"" help:"Store a database connection string in the OS keyring."`
		Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage the connection string kept in the OS keyring."`
}

// Vars are the interpolation variables the CLI grammar expects.
func Vars() kong.Vars {
	return kong.Vars{
		"version": constants.Version,
		"config":  constants.DefaultConfigPath,
	}
}

// Context is shared by every command of one invocation. Storage and the
// schedule are opened lazily so commands that need neither stay cheap.
type Context struct {
	Config string
	Out    io.Writer
	In     io.Reader
	Now    func() time.Time

	provider storage.Provider
	week     *schedule.Store
	saveErr  error
}

func NewContext(config string) *Context {
	return &Context{
		Config: config,
		Out:    os.Stdout,
		In:     os.Stdin,
		Now:    time.Now,
	}
}

// Storage returns the loaded provider. A file store that does not exist yet
// is initialized on first use.
func (c *Context) Storage() (storage.Provider, error) {
	if c.provider != nil {
		return c.provider, nil
	}

	p, err := NewProvider(c.Config)
	if err != nil {
		return nil, err
	}
	if path, ok := StorePath(c.Config); ok && !exists(path) {
		err = p.Init()
	} else {
		err = p.Load()
	}
	if err != nil {
		return nil, err
	}
	c.provider = p
	return p, nil
}

// Week returns the schedule store for this invocation, backed by Storage.
func (c *Context) Week() (*schedule.Store, error) {
	if c.week != nil {
		return c.week, nil
	}
	p, err := c.Storage()
	if err != nil {
		return nil, err
	}
	adapter := persistence.New(p)
	initial, found, err := adapter.Open()
	if err != nil {
		return nil, err
	}
	c.week = schedule.New(&trackingPersister{Adapter: adapter, ctx: c, initial: initial, found: found})
	return c.week, nil
}

// SaveErr returns and clears the last failed save. One-shot commands use it
// to report a write the schedule store only logged.
func (c *Context) SaveErr() error {
	err := c.saveErr
	c.saveErr = nil
	return err
}

func (c *Context) Close() error {
	if c.provider == nil {
		return nil
	}
	err := c.provider.Close()
	c.provider = nil
	c.week = nil
	return err
}

// trackingPersister hands the store the week Week already read and records
// failed saves on the context.
type trackingPersister struct {
	*persistence.Adapter
	ctx     *Context
	initial models.Schedule
	found   bool
}

func (p *trackingPersister) Load() (models.Schedule, bool) {
	return p.initial, p.found
}

func (p *trackingPersister) Save(s models.Schedule) error {
	err := p.Adapter.Save(s)
	if err != nil {
		p.ctx.saveErr = err
	}
	return err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
