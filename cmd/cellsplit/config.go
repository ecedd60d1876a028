package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const defaultConfigPath = "cellsplit.toml"

// Config mirrors the command-line flags for a cellsplit.toml file
// Flags given explicitly on the command line override file values
type Config struct {
	Layout string `toml:"layout"`
	Color  string `toml:"color"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Watch  bool   `toml:"watch"`
	Debug  bool   `toml:"debug"`
}

// loadConfig reads path; a missing file yields the zero Config
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// options is the resolved run configuration
type options struct {
	layout string
	color  string
	width  int
	height int
	inline bool
	tea    bool
	watch  bool
	debug  bool
}

// merge fills options from cfg for every flag not named in set
func (o *options) merge(cfg Config, set map[string]bool) {
	if !set["layout"] && cfg.Layout != "" {
		o.layout = cfg.Layout
	}
	if !set["color"] && cfg.Color != "" {
		o.color = cfg.Color
	}
	if !set["width"] && cfg.Width > 0 {
		o.width = cfg.Width
	}
	if !set["height"] && cfg.Height > 0 {
		o.height = cfg.Height
	}
	if !set["watch"] && cfg.Watch {
		o.watch = true
	}
	if !set["debug"] && cfg.Debug {
		o.debug = true
	}
}

// watchPath returns the layout file to watch, empty when -watch is off
// Watching needs a layout file and the tcell screen
func (o options) watchPath() (string, error) {
	switch {
	case !o.watch:
		return "", nil
	case o.layout == "":
		return "", errors.New("-watch needs a layout file, the built-in demo cannot change")
	case o.inline:
		return "", errors.New("-watch has no effect with -inline")
	case o.tea:
		return "", errors.New("-watch has no effect with -tea")
	}
	return o.layout, nil
}
