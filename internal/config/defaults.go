package config

const (
	defaultMarker              = " "
	defaultHashAlgorithm       = "sha1"
	defaultChunkSize           = 1024
	defaultConfirmDelaySeconds = 10
	defaultLockPath            = "~/.local/share/dupesweep/dupesweep.lock"
	defaultHistoryPath         = "~/.local/share/dupesweep/history.db"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// DefaultExtensions is the case-sensitive media extension allow-list used when
// the configuration does not provide one.
var DefaultExtensions = []string{"jpeg", "JPG", "jpg", "gif", "GIF", "png", "PNG", "mov", "MOV", "mp4"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions:    append([]string(nil), DefaultExtensions...),
			Marker:        defaultMarker,
			HashAlgorithm: defaultHashAlgorithm,
			ChunkSize:     defaultChunkSize,
		},
		Safety: Safety{
			ConfirmDelaySeconds: defaultConfirmDelaySeconds,
			LockPath:            defaultLockPath,
		},
		History: History{
			Path: defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
