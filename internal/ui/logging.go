package ui

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// LogLevelEnvKey is the environment variable controlling log verbosity.
// Accepted values: trace, debug, info, warn. Defaults to info.
const LogLevelEnvKey = "POE2GO_LOG_LEVEL"

type LogLevel int

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarning
)

var currentLevel = LevelInfo

var tracePrinter = pterm.Debug.WithPrefix(pterm.Prefix{
	Text:  "TRACE",
	Style: pterm.Debug.Prefix.Style,
})

// Init sets the log level filter from the environment. The --verbose flag
// can only lower the filter, it never raises it above the env setting.
func Init(verbose bool) {
	currentLevel = levelFromEnv()
	if verbose && currentLevel > LevelDebug {
		currentLevel = LevelDebug
	}
	pterm.PrintDebugMessages = currentLevel <= LevelDebug
}

func levelFromEnv() LogLevel {
	return ParseLogLevel(os.Getenv(LogLevelEnvKey))
}

func ParseLogLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarning
	default:
		return LevelInfo
	}
}

func Printf(format string, a ...interface{}) {
	pterm.Printf(format, a...)
}

func Printfln(format string, a ...interface{}) {
	pterm.Printfln(format, a...)
}

func Trace(format string, a ...interface{}) {
	if currentLevel > LevelTrace {
		return
	}
	tracePrinter.Printfln(format, a...)
}

func Debug(format string, a ...interface{}) {
	if currentLevel > LevelDebug {
		return
	}
	pterm.Debug.Printfln(format, a...)
}

func Info(format string, a ...interface{}) {
	if currentLevel > LevelInfo {
		return
	}
	pterm.Info.Printfln(format, a...)
}

func Success(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

func Warning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

func Error(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

func Fatal(format string, a ...interface{}) {
	pterm.Fatal.Printfln(format, a...)
}

func FatalWithoutStacktrace(format string, a ...interface{}) {
	pterm.Fatal.WithFatal(false).Printfln(format, a...)
	os.Exit(1)
}
