// Package config defines symtool configuration. All fields are optional;
// the zero value reproduces the tool's built-in behavior, so running without
// a config file needs no special casing anywhere.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aloe-os/symtool/pkg/mapline"
)

// Config is the root configuration, loaded from .symtool.yaml.
type Config struct {
	// AddressWindow overrides the accepted address range for map-line
	// parsing. Values are hex strings, with or without a 0x prefix.
	AddressWindow WindowConfig `yaml:"address_window"`

	// SourceExtensions lists the file extensions scanned by extract.
	SourceExtensions []string `yaml:"source_extensions"`

	// HeaderExtensions lists the extensions used with --headers.
	HeaderExtensions []string `yaml:"header_extensions"`

	// ExtraKeywords adds identifiers filtered at call-like sites on top of
	// the built-in C keyword list.
	ExtraKeywords []string `yaml:"extra_keywords"`

	// Exclude lists glob patterns skipped during source discovery.
	Exclude []string `yaml:"exclude"`
}

// WindowConfig is the half-open [start, end) address range.
type WindowConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Window resolves the configured address window, falling back to the
// default range when unset.
func (c *Config) Window() (mapline.Window, error) {
	win := mapline.DefaultWindow()
	if c.AddressWindow.Start != "" {
		lo, err := parseHex32(c.AddressWindow.Start)
		if err != nil {
			return win, fmt.Errorf("address_window.start: %w", err)
		}
		win.Lo = lo
	}
	if c.AddressWindow.End != "" {
		hi, err := parseHex32(c.AddressWindow.End)
		if err != nil {
			return win, fmt.Errorf("address_window.end: %w", err)
		}
		win.Hi = hi
	}
	if win.Hi <= win.Lo {
		return win, fmt.Errorf("address_window end %08X is not above start %08X", win.Hi, win.Lo)
	}
	return win, nil
}

// Extensions returns the effective extension set for discovery.
func (c *Config) Extensions(headerOnly bool) []string {
	if headerOnly {
		if len(c.HeaderExtensions) > 0 {
			return c.HeaderExtensions
		}
		return []string{".h"}
	}
	if len(c.SourceExtensions) > 0 {
		return c.SourceExtensions
	}
	return []string{".c", ".h", ".cc"}
}

func parseHex32(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse hex value %q: %w", s, err)
	}
	return uint32(v), nil
}
