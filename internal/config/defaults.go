package config

// Kernel interfaces read by the helpers.
const (
	DefaultLEDsDir       = "/sys/class/leds"
	DefaultBacklightRoot = "/sys/class/backlight"
	DefaultNetDir        = "/sys/class/net"
	DefaultBlockDir      = "/sys/block"
)

// DefaultFehPath is where distributions install feh.
const DefaultFehPath = "/usr/bin/feh"

// DefaultDisplay is assumed when DISPLAY is unset.
const DefaultDisplay = ":0"

// Environment variables read by ApplyEnvOverrides.
const (
	EnvLogLevel     = "OBUTILS_LOG_LEVEL"
	EnvLogFormat    = "OBUTILS_LOG_FORMAT"
	EnvLEDsDir      = "OBUTILS_LEDS_DIR"
	EnvBacklightDir = "OBUTILS_BACKLIGHT_DIR"
	EnvNetDir       = "OBUTILS_NET_DIR"
	EnvBlockDir     = "OBUTILS_BLOCK_DIR"
	EnvNetInterface = "OBUTILS_NET_INTERFACE"
	EnvFehPath      = "OBUTILS_FEH_PATH"
	EnvDisplay      = "DISPLAY"
)
