// Package config holds the configuration of a maze run: grid size, seed, styles and
// rendering options.
//
// The defaults can be overridden by environment variables (MAZE_WIDTH, MAZE_HEIGHT,
// MAZE_SEED, MAZE_STYLES, MAZE_OPTIONS and MAZE_TITLES), optionally loaded from a
// .env file, and then by command-line flags (see RegisterFlags).
package config

import (
	"flag"
	"github.com/janpfeifer/mazeGo/internal/generics"
	"github.com/janpfeifer/mazeGo/internal/randomness"
	"github.com/janpfeifer/mazeGo/internal/render"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"io/fs"
	"k8s.io/klog/v2"
	"os"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultWidth  = 20
	DefaultHeight = 15

	// RandomSeedValue given to -seed or MAZE_SEED asks for a random seed.
	RandomSeedValue = "random"
)

// Environment variables read by FromEnv.
const (
	EnvWidth   = "MAZE_WIDTH"
	EnvHeight  = "MAZE_HEIGHT"
	EnvSeed    = "MAZE_SEED"
	EnvStyles  = "MAZE_STYLES"
	EnvOptions = "MAZE_OPTIONS"
	EnvTitles  = "MAZE_TITLES"
)

// ErrInvalidConfig is the cause of every error returned by Validate and by the parsing functions.
var ErrInvalidConfig = errors.New("invalid maze configuration")

// Config of a maze run.
type Config struct {
	// Width is the number of rows and Height the number of columns of the grid.
	Width, Height int

	// Seed of the random number generator. Any value, negative included, is a valid seed.
	Seed int64

	// RandomSeed makes ResolveSeed replace Seed by a random one.
	RandomSeed bool

	// Styles to render, in increasing order, without repetitions.
	Styles []render.Style

	// Titles enables the header and the title lines before each style.
	Titles bool

	// Render options: views of the Blocks style and glyphs of the Box style.
	Render render.Options
}

// Default returns the configuration of the classic output: a 20x15 maze with a random
// seed, rendered in the Lines and Blocks styles, followed by its transposed view.
func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		RandomSeed: true,
		Styles:     []render.Style{render.Lines, render.Blocks},
		Titles:     true,
		Render:     render.Options{Views: []render.View{render.Transposed}},
	}
}

// LoadDotEnv loads the given .env files (".env" if none is given) into the environment.
// Variables already set are not overwritten, and missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if errors.Is(err, fs.ErrNotExist) {
			klog.V(1).Infof("config: %q not found, skipping", filename)
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to load environment from %q", filename)
		}
		klog.V(1).Infof("config: loaded environment from %q", filename)
	}
	return nil
}

// lookupEnv returns the value of the environment variable, if it is set and not empty.
func lookupEnv(key string) (string, bool) {
	value, found := os.LookupEnv(key)
	return value, found && value != ""
}

// FromEnv returns the Default configuration, overridden by the MAZE_* environment variables.
func FromEnv() (Config, error) {
	cfg := Default()
	for _, v := range []struct {
		key   string
		parse func(string) error
	}{
		{EnvWidth, intParser(&cfg.Width)},
		{EnvHeight, intParser(&cfg.Height)},
		{EnvSeed, seedParser(&cfg)},
		{EnvStyles, stylesParser(&cfg.Styles)},
		{EnvOptions, optionsParser(&cfg.Render)},
		{EnvTitles, boolParser(&cfg.Titles)},
	} {
		value, found := lookupEnv(v.key)
		if !found {
			continue
		}
		if err := v.parse(value); err != nil {
			return cfg, errors.WithMessagef(err, "environment variable %s", v.key)
		}
	}
	return cfg, nil
}

// RegisterFlags registers command-line flags that set the fields of cfg. The current
// values of cfg are the defaults of the flags.
func RegisterFlags(flags *flag.FlagSet, cfg *Config) {
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Number of rows of the maze.")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Number of columns of the maze.")
	flags.Func("seed", "Seed of the random number generator, any integer. If \""+RandomSeedValue+"\", "+
		"a random seed in [0, 1000] is used and reported. (default \""+FormatSeed(*cfg)+"\")",
		seedParser(cfg))
	flags.BoolVar(&cfg.Titles, "titles", cfg.Titles, "Print the header and a title before each style.")
	flags.Func("styles", "Comma-separated styles to print, by number or name: "+
		"1 or lines, 2 or blocks, 3 or box, or \"all\". (default \""+FormatStyles(cfg.Styles)+"\")",
		stylesParser(&cfg.Styles))
	flags.Func("options", "Comma-separated rendering options: the views of the blocks style ("+
		"transposed, inverted, reflected, mirrored, windowed) and glyphs=box|legacy for the box style.",
		optionsParser(&cfg.Render))
}

// Validate checks the configuration. Errors are caused by ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.WithMessagef(ErrInvalidConfig, "maze size must be positive, got %dx%d", c.Width, c.Height)
	}
	if len(c.Styles) == 0 {
		return errors.WithMessage(ErrInvalidConfig, "no style selected")
	}
	for _, s := range c.Styles {
		if !s.Valid() {
			return errors.WithMessagef(ErrInvalidConfig, "invalid style %s", s)
		}
	}
	return nil
}

// ResolveSeed replaces Seed by a random one if RandomSeed is set, and returns the seed.
// Once resolved, RandomSeed is cleared.
func (c *Config) ResolveSeed() int64 {
	if c.RandomSeed {
		c.Seed = randomness.RandomSeed()
		c.RandomSeed = false
		klog.V(1).Infof("config: using random seed %d", c.Seed)
	}
	return c.Seed
}

// FormatSeed returns the seed as accepted by -seed and MAZE_SEED.
func FormatSeed(c Config) string {
	if c.RandomSeed {
		return RandomSeedValue
	}
	return strconv.FormatInt(c.Seed, 10)
}

// ParseStyles parses a comma-separated list of styles (see render.ParseStyle), or "all".
// The result is sorted and without repetitions.
func ParseStyles(txt string) ([]render.Style, error) {
	if strings.TrimSpace(txt) == "all" {
		return slices.Clone(render.Styles), nil
	}
	var styles []render.Style
	for _, part := range strings.Split(txt, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		s, err := render.ParseStyle(part)
		if err != nil {
			return nil, errors.WithMessage(ErrInvalidConfig, err.Error())
		}
		styles = append(styles, s)
	}
	if len(styles) == 0 {
		return nil, errors.WithMessagef(ErrInvalidConfig, "no style in %q", txt)
	}
	slices.Sort(styles)
	return slices.Compact(styles), nil
}

// FormatStyles is the inverse of ParseStyles.
func FormatStyles(styles []render.Style) string {
	return strings.Join(generics.SliceMap(styles, render.Style.String), ",")
}

func intParser(target *int) func(string) error {
	return func(value string) error {
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.WithMessagef(ErrInvalidConfig, "%q is not an integer", value)
		}
		*target = v
		return nil
	}
}

func seedParser(cfg *Config) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == RandomSeedValue {
			cfg.RandomSeed = true
			return nil
		}
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errors.WithMessagef(ErrInvalidConfig, "%q is not a valid seed", value)
		}
		cfg.Seed, cfg.RandomSeed = v, false
		return nil
	}
}

func boolParser(target *bool) func(string) error {
	return func(value string) error {
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return errors.WithMessagef(ErrInvalidConfig, "%q is not a boolean", value)
		}
		*target = v
		return nil
	}
}

func stylesParser(target *[]render.Style) func(string) error {
	return func(value string) error {
		styles, err := ParseStyles(value)
		if err != nil {
			return err
		}
		*target = styles
		return nil
	}
}

func optionsParser(target *render.Options) func(string) error {
	return func(value string) error {
		opts, err := render.ParseOptions(value)
		if err != nil {
			return errors.WithMessage(ErrInvalidConfig, err.Error())
		}
		*target = opts
		return nil
	}
}
