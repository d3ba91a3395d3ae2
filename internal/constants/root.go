package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "lovecount"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/lovecount"
	DefaultStorePath   = "~/.config/lovecount/lovecount.db"
	DefaultConfigFile  = "~/.config/lovecount/config.yaml"
	Version            = "v0.3.0"

	// DateFormat is the calendar day format used for day keys and meeting dates (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the time-of-day format used for meeting times (HH:MM)
	TimeFormat = "15:04"

	// TimestampFormat matches the millisecond ISO-8601 instants already present in stored records
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

	// DefaultMeetingTime pre-fills the setup form
	DefaultMeetingTime = "18:00"
	DefaultAge         = 18

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lovecount-"
	BackupFileSuffix = ".json.zst"

	// Notify constants
	NotifierLockfileName   = "lovecount-notifier.lock"
	NotificationDurationMs = 8000
	TrayAppIdentifier      = "com.julianstephens.lovecount"
	TrayAppExecutable      = "lovecount-tray"

	// Countdown constants
	DefaultTickInterval = time.Second
)

// Session States
const (
	StateCountdown SessionState = iota
	StateMood
	StateMiss
	StateDiary
	StateCapsule
	StateWheel
	StateStats
	StateForm
	StateConfirm
)
