package app

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"lifegrid/internal/render"
	"lifegrid/pkg/life"
)

// Duration is a time.Duration that reads from JSON as either a string such
// as "60ms" or a number of nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration must be a string or integer: %s", b)
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// String implements flag.Value.
func (d *Duration) String() string { return time.Duration(*d).String() }

// Set implements flag.Value.
func (d *Duration) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Pattern string `json:"pattern"`
	Workers int    `json:"workers"`
	Seed    int64  `json:"seed"`
	// Load names a plain-text grid file that replaces Pattern.
	Load string `json:"load"`

	Generations int      `json:"generations"`
	Interval    Duration `json:"interval"`

	Scale int `json:"scale"`
	TPS   int `json:"tps"`
	GPS   int `json:"gps"`

	Format string `json:"format"`
	Out    string `json:"out"`
	TUI    bool   `json:"tui"`
	Debug  bool   `json:"debug"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       80,
		Height:      38,
		Pattern:     life.Random.String(),
		Workers:     4,
		Generations: 10100,
		Interval:    Duration(60 * time.Millisecond),
		Scale:       8,
		TPS:         60,
		GPS:         15,
		Format:      string(render.PNG),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: "+patternList())
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines per engine")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern (0 = clock)")
	fs.StringVar(&c.Load, "load", c.Load, "plain-text grid file ('*' live, '.' dead)")
	fs.IntVar(&c.Generations, "n", c.Generations, "generations to run (0 = forever)")
	fs.Var(&c.Interval, "interval", "delay between generations")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second in the window")
	fs.StringVar(&c.Format, "format", c.Format, "image format for -out: png or bmp")
	fs.StringVar(&c.Out, "out", c.Out, "write the final generation as an image to this file")
	fs.BoolVar(&c.TUI, "tui", c.TUI, "full-screen terminal view")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "print generation timings instead of the board")
}

func patternList() string {
	names := make([]string, 0, 4)
	for _, p := range life.Patterns() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) *Config {
	c := NewConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("w", &c.Width)
	positive("h", &c.Height)
	positive("workers", &c.Workers)
	positive("scale", &c.Scale)
	positive("tps", &c.TPS)
	positive("gps", &c.GPS)
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if p, err := life.ParsePattern(v); err == nil {
			c.Pattern = p.String()
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.Interval = Duration(parsed)
		}
	}
	if v, ok := cfg["format"]; ok {
		if f, err := render.ParseFormat(v); err == nil {
			c.Format = string(f)
		}
	}
	if v, ok := cfg["load"]; ok {
		c.Load = v
	}
	return c
}

// LoadConfig reads a JSON file over the defaults.
func LoadConfig(path string) (*Config, error) {
	c := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Validate reports every setting the engine would reject.
func (c *Config) Validate() error {
	var errs []error
	if c.Load == "" {
		if c.Width <= 0 || c.Height <= 0 {
			errs = append(errs, fmt.Errorf("%w: %dx%d", life.ErrInvalidSize, c.Width, c.Height))
		}
		if _, err := life.ParsePattern(c.Pattern); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", life.ErrInvalidWorkers, c.Workers))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must not be negative: %d", c.Generations))
	}
	if c.Interval < 0 {
		errs = append(errs, fmt.Errorf("interval must not be negative: %s", time.Duration(c.Interval)))
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NewEngine validates the configuration and builds the engine it describes.
func (c *Config) NewEngine() (*life.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Load != "" {
		f, err := os.Open(c.Load)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := life.ParseGrid(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Load, err)
		}
		return life.NewFromGrid(g, c.Workers)
	}
	p, err := life.ParsePattern(c.Pattern)
	if err != nil {
		return nil, err
	}
	return life.NewWithConfig(life.Config{
		Width:   c.Width,
		Height:  c.Height,
		Pattern: p,
		Workers: c.Workers,
		Seed:    c.Seed,
	})
}

// Overlay re-applies every flag explicitly set on fs to c, so a config file
// loaded after flag parsing keeps the command-line overrides.
func (c *Config) Overlay(fs *flag.FlagSet) error {
	bound := flag.NewFlagSet("overlay", flag.ContinueOnError)
	c.Bind(bound)
	var errs []error
	fs.Visit(func(f *flag.Flag) {
		if bound.Lookup(f.Name) == nil {
			return
		}
		if err := bound.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}
