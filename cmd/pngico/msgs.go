package pngico

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Convert PNG folders to .ico files and back"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgConfigShort  = "Print the effective configuration"

	// Version output
	MsgVersionFormat = "pngico version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConvert    = "Conversion: auto, ico (folder to .ico) or png (.ico to folder)"
	MsgFlagOutput     = "Output file or folder (default: next to the input, named after it)"
	MsgFlagOverwrite  = "Replace the output if it already exists"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/pngico/config.toml)"
	MsgFlagFormat     = "Output format: auto, term, text or json"
	MsgFlagConfigPath = "Print the user config folder instead"

	// Error messages
	MsgErrMode   = "invalid --convert value"
	MsgErrFormat = "invalid output format"
	MsgErrDump   = "failed to print configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
