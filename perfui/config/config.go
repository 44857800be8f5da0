// Package config loads overlay settings from TOML or HCL files.
//
// Both formats share one layout; every key is optional and missing keys keep
// their defaults:
//
//	entries        = "default"      # all, default, framerate, fixed_time, window, system
//	system_info    = true
//	display_labels = true
//	display_units  = true
//	placeholder    = "N/A"
//	corner         = "top-right"
//	margin         = 8
//	font_size      = 16
//
//	[colors]                        # colors { ... } in HCL
//	warning = "#ffc832"
//	critical = "#ff4646ff"
package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/plus3/perfui/perfui"
)

// Config is the decoded overlay configuration.
type Config struct {
	Root       perfui.Root
	SystemInfo bool
	// Entries names the bundle to spawn.
	Entries string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Root:    perfui.DefaultRoot(),
		Entries: "default",
	}
}

type fileColors struct {
	Label      *string `toml:"label" hcl:"label,optional"`
	Value      *string `toml:"value" hcl:"value,optional"`
	Warning    *string `toml:"warning" hcl:"warning,optional"`
	Critical   *string `toml:"critical" hcl:"critical,optional"`
	Missing    *string `toml:"missing" hcl:"missing,optional"`
	Background *string `toml:"background" hcl:"background,optional"`
}

type fileConfig struct {
	Entries       *string     `toml:"entries" hcl:"entries,optional"`
	SystemInfo    *bool       `toml:"system_info" hcl:"system_info,optional"`
	DisplayLabels *bool       `toml:"display_labels" hcl:"display_labels,optional"`
	DisplayUnits  *bool       `toml:"display_units" hcl:"display_units,optional"`
	Placeholder   *string     `toml:"placeholder" hcl:"placeholder,optional"`
	Corner        *string     `toml:"corner" hcl:"corner,optional"`
	Margin        *float64    `toml:"margin" hcl:"margin,optional"`
	FontSize      *float64    `toml:"font_size" hcl:"font_size,optional"`
	Colors        *fileColors `toml:"colors" hcl:"colors,block"`
}

// Load reads the file at path. The format is chosen by extension: .toml or .hcl.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load overlay config: %w", err)
	}
	return Decode(path, src)
}

// Decode parses src as the format implied by filename's extension.
func Decode(filename string, src []byte) (Config, error) {
	var raw fileConfig
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		if err := decodeTOML(src, &raw); err != nil {
			return Config{}, err
		}
	case ".hcl":
		if err := decodeHCL(filename, src, &raw); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported overlay config format %q", ext)
	}
	return raw.apply(Default())
}

func decodeTOML(src []byte, raw *fileConfig) error {
	meta, err := toml.Decode(string(src), raw)
	if err != nil {
		return fmt.Errorf("decode overlay config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("decode overlay config: unknown keys %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeHCL(filename string, src []byte, raw *fileConfig) error {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("parse overlay config %s: %w", filename, diags)
	}
	if diags := gohcl.DecodeBody(file.Body, nil, raw); diags.HasErrors() {
		return fmt.Errorf("decode overlay config %s: %w", filename, diags)
	}
	return nil
}

func (raw *fileConfig) apply(cfg Config) (Config, error) {
	root := &cfg.Root

	if raw.Entries != nil {
		name := strings.TrimSpace(*raw.Entries)
		if _, err := BundleFor(name); err != nil {
			return Config{}, err
		}
		cfg.Entries = name
	}
	if raw.SystemInfo != nil {
		cfg.SystemInfo = *raw.SystemInfo
	}
	if raw.DisplayLabels != nil {
		root.DisplayLabels = *raw.DisplayLabels
	}
	if raw.DisplayUnits != nil {
		root.DisplayUnits = *raw.DisplayUnits
	}
	if raw.Placeholder != nil {
		root.Placeholder = *raw.Placeholder
	}
	if raw.Corner != nil {
		corner, err := perfui.ParseCorner(*raw.Corner)
		if err != nil {
			return Config{}, fmt.Errorf("parse corner: %w", err)
		}
		root.Corner = corner
	}
	if raw.Margin != nil {
		root.Margin = *raw.Margin
	}
	if raw.FontSize != nil {
		if *raw.FontSize <= 0 {
			return Config{}, fmt.Errorf("font_size must be positive, got %v", *raw.FontSize)
		}
		root.FontSize = *raw.FontSize
	}

	if c := raw.Colors; c != nil {
		for _, field := range []struct {
			name string
			src  *string
			dst  *color.RGBA
		}{
			{"label", c.Label, &root.LabelColor},
			{"value", c.Value, &root.ValueColor},
			{"warning", c.Warning, &root.WarningColor},
			{"critical", c.Critical, &root.CriticalColor},
			{"missing", c.Missing, &root.MissingColor},
			{"background", c.Background, &root.BackgroundColor},
		} {
			if field.src == nil {
				continue
			}
			parsed, err := ParseColor(*field.src)
			if err != nil {
				return Config{}, fmt.Errorf("parse colors.%s: %w", field.name, err)
			}
			*field.dst = parsed
		}
	}

	return cfg, nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c := color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// BundleFor returns the bundle with the given name.
func BundleFor(name string) (perfui.Bundle, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "_") {
	case "all":
		return perfui.NewAllEntries(), nil
	case "all_system":
		return perfui.NewAllEntries().WithSystem(), nil
	case "default", "":
		return perfui.NewDefaultEntries(), nil
	case "framerate":
		return perfui.NewFramerateEntries(), nil
	case "fixed_time":
		return perfui.NewFixedTimeEntries(), nil
	case "window":
		return perfui.NewWindowEntries(), nil
	case "system":
		return perfui.NewSystemEntries(), nil
	}
	return nil, fmt.Errorf("unknown entries bundle %q", name)
}

// Bundle returns the bundle named by c.Entries. With SystemInfo enabled, "all"
// includes the system entries.
func (c Config) Bundle() (perfui.Bundle, error) {
	if c.SystemInfo && strings.EqualFold(strings.TrimSpace(c.Entries), "all") {
		return perfui.NewAllEntries().WithSystem(), nil
	}
	return BundleFor(c.Entries)
}
