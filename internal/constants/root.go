package constants

const (
	AppName            = "agenda"
	Version            = "v0.1.0"
	DefaultConfigPath  = "~/.config/agenda/agenda.db"
	DefaultKeyringUser = "database-connection"

	// StorageKey is the single key under which the serialized week is kept.
	StorageKey = "agenda-tasks"

	// ConnectionEnvVar overrides the keyring when --config=keyring is used.
	ConnectionEnvVar = "AGENDA_DB_CONNECTION"
	// KeyringConfig is the --config value that reads the connection string from the OS keyring.
	KeyringConfig = "keyring"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "agenda-"

	// Export constants
	ExportDirName    = "exports"
	ExportFilePrefix = "agenda-week-"
	ExportFileSuffix = ".txt"

	// TimestampFormat is used in backup and export file names.
	TimestampFormat = "20060102-150405"
)
