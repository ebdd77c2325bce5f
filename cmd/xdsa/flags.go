package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/benz9527/xdsa/xlog"
)

const (
	envLogLevel        = "XLOG_LVL"
	envMaxRenderHeight = "XDSA_MAX_RENDER_HEIGHT"

	defaultMaxRenderHeight = 8
)

type logLevelFlag struct {
	level string
}

var _ pflag.Value = (*logLevelFlag)(nil)

// Type implements pflag.Value.
func (lvl *logLevelFlag) Type() string { return "loglevel" }

// Set implements pflag.Value.
func (lvl *logLevelFlag) Set(str string) error {
	switch s := strings.ToLower(str); s {
	case "debug", "info", "warn", "error":
		lvl.level = s
	case "warning":
		lvl.level = "warn"
	default:
		return fmt.Errorf("invalid log level: %q", str)
	}
	return nil
}

// String implements pflag.Value.
func (lvl *logLevelFlag) String() string { return lvl.level }

func (lvl *logLevelFlag) option() xlog.XLoggerOption {
	return xlog.WithXLoggerLevel(xlog.ParseLogLevel(lvl.level))
}

type logFormatFlag struct {
	format string
}

var _ pflag.Value = (*logFormatFlag)(nil)

// Type implements pflag.Value.
func (f *logFormatFlag) Type() string { return "logformat" }

// Set implements pflag.Value.
func (f *logFormatFlag) Set(str string) error {
	if _, ok := xlog.ParseLogEncoder(str); !ok {
		return fmt.Errorf("invalid log format: %q", str)
	}
	f.format = strings.ToLower(str)
	return nil
}

// String implements pflag.Value.
func (f *logFormatFlag) String() string { return f.format }

func (f *logFormatFlag) option() xlog.XLoggerOption {
	enc, _ := xlog.ParseLogEncoder(f.format)
	return xlog.WithXLoggerEncoder(enc)
}

// defaultLogLevel reads XLOG_LVL, the CLI is quieter than the
// library default.
func defaultLogLevel() logLevelFlag {
	lvl := logLevelFlag{level: "info"}
	if env, ok := os.LookupEnv(envLogLevel); ok {
		if err := lvl.Set(env); err != nil {
			return logLevelFlag{level: "info"}
		}
	}
	return lvl
}

func defaultRenderHeight() int {
	env, ok := os.LookupEnv(envMaxRenderHeight)
	if !ok {
		return defaultMaxRenderHeight
	}
	h, err := strconv.Atoi(strings.TrimSpace(env))
	if err != nil || h <= 0 {
		return defaultMaxRenderHeight
	}
	return h
}
