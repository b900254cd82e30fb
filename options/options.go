package options

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"linklist/util"
	"os"
	"path/filepath"
	"strings"
)

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:     "script",
		Aliases:  []string{"s"},
		Usage:    "path to an operation script, one operation per line",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "ops",
		Aliases:  []string{"o"},
		Usage:    "inline operation script, operations separated by ';'",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "kinds",
		Aliases:  []string{"k"},
		Value:    "",
		Usage:    "patterns of list kinds to run (singly, doubly, circular), comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "stats",
		Value:    "",
		Usage:    "write run statistics as JSON to this file",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "workers",
		Value:    3,
		Usage:    "number of list kinds replayed concurrently",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "strict",
		Value:    false,
		Usage:    "fail when an operation is not supported by a selected list kind",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
}

type Options struct {
	ScriptPath     string
	InlineOps      string
	KindPatterns   []string
	StatsPath      string
	Workers        int
	Strict         bool
	VerboseLogging bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	patterns := strings.Split(flag, ",")
	for i, pattern := range patterns {
		patterns[i] = strings.TrimSpace(pattern)
	}
	return patterns
}

func validateDirectory(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist at %v", dirPath)
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

func validateFile(filePath string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist at %v", filePath)
	}
	if err != nil {
		return fmt.Errorf("file error at %v: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("file is actually a directory at %v", filePath)
	}
	return nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		ScriptPath:     c.String("script"),
		InlineOps:      c.String("ops"),
		KindPatterns:   splitListFlag(c.String("kinds")),
		StatsPath:      c.String("stats"),
		Workers:        c.Int("workers"),
		Strict:         c.Bool("strict"),
		VerboseLogging: c.Bool("verbose"),
	}

	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks flag combinations and the paths they point at.
func (opts *Options) Validate() error {
	hasScript, hasInline := len(opts.ScriptPath) > 0, len(opts.InlineOps) > 0
	if hasScript == hasInline {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_SCRIPT_PATH,
			InternalError: fmt.Errorf("exactly one of --script or --ops is required"),
		}
	}

	if hasScript {
		err := validateFile(opts.ScriptPath)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_SCRIPT_PATH,
				InternalError: fmt.Errorf("script at '%v' is missing or invalid: %v", opts.ScriptPath, err),
			}
		}
	}

	if len(opts.StatsPath) > 0 {
		err := validateDirectory(filepath.Dir(opts.StatsPath))
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_STATS_PATH,
				InternalError: err,
			}
		}
	}

	if opts.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %v", opts.Workers)
	}
	return nil
}
