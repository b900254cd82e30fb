package options

import (
	"linklist/util"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/urfave/cli/v2"
)

type optionsTestSuite struct {
	suite.Suite
	dirPath    string
	scriptPath string
}

func TestOptionsTestSuite(t *testing.T) {
	suite.Run(t, new(optionsTestSuite))
}

func (optionsSuite *optionsTestSuite) SetupTest() {
	var err error
	optionsSuite.dirPath, err = os.MkdirTemp("", "linklist-options-")
	if err != nil {
		panic(err)
	}
	optionsSuite.scriptPath = filepath.Join(optionsSuite.dirPath, "script.ops")
	err = os.WriteFile(optionsSuite.scriptPath, []byte("append 1\n"), 0644)
	if err != nil {
		panic(err)
	}
}

func (optionsSuite *optionsTestSuite) TearDownTest() {
	err := os.RemoveAll(optionsSuite.dirPath)
	if err != nil {
		panic(err)
	}
}

func (optionsSuite *optionsTestSuite) parse(args ...string) (*Options, error) {
	var opts *Options
	var parseErr error
	app := &cli.App{
		Name:  "linklist",
		Flags: Flags,
		Action: func(ctx *cli.Context) error {
			opts, parseErr = ParseOptions(ctx)
			return nil
		},
	}
	optionsSuite.Require().NoError(app.Run(append([]string{"linklist"}, args...)))
	return opts, parseErr
}

func (optionsSuite *optionsTestSuite) requireCode(err error, code int) {
	var withCode *util.ErrorWithCode
	optionsSuite.Require().ErrorAs(err, &withCode)
	optionsSuite.Equal(code, withCode.StatusCode)
}

func (optionsSuite *optionsTestSuite) TestDefaults() {
	opts, err := optionsSuite.parse("--ops", "append 1")
	optionsSuite.Require().NoError(err)
	optionsSuite.Equal(&Options{
		InlineOps:    "append 1",
		KindPatterns: []string{},
		Workers:      3,
	}, opts)
}

func (optionsSuite *optionsTestSuite) TestAllFlags() {
	statsPath := filepath.Join(optionsSuite.dirPath, "stats.json")
	opts, err := optionsSuite.parse(
		"-s", optionsSuite.scriptPath,
		"-k", "singly, *ly",
		"--stats", statsPath,
		"--workers", "1",
		"--strict",
		"--vv",
	)
	optionsSuite.Require().NoError(err)
	optionsSuite.Equal(&Options{
		ScriptPath:     optionsSuite.scriptPath,
		KindPatterns:   []string{"singly", "*ly"},
		StatsPath:      statsPath,
		Workers:        1,
		Strict:         true,
		VerboseLogging: true,
	}, opts)
}

func (optionsSuite *optionsTestSuite) TestScriptSourceRequired() {
	_, err := optionsSuite.parse()
	optionsSuite.requireCode(err, util.ERROR_BAD_SCRIPT_PATH)

	_, err = optionsSuite.parse("--script", optionsSuite.scriptPath, "--ops", "append 1")
	optionsSuite.requireCode(err, util.ERROR_BAD_SCRIPT_PATH)
}

func (optionsSuite *optionsTestSuite) TestMissingScript() {
	_, err := optionsSuite.parse("--script", filepath.Join(optionsSuite.dirPath, "missing.ops"))
	optionsSuite.requireCode(err, util.ERROR_BAD_SCRIPT_PATH)

	_, err = optionsSuite.parse("--script", optionsSuite.dirPath)
	optionsSuite.requireCode(err, util.ERROR_BAD_SCRIPT_PATH)
}

func (optionsSuite *optionsTestSuite) TestBadStatsDirectory() {
	_, err := optionsSuite.parse("--ops", "append 1", "--stats", filepath.Join(optionsSuite.dirPath, "missing", "stats.json"))
	optionsSuite.requireCode(err, util.ERROR_BAD_STATS_PATH)

	_, err = optionsSuite.parse("--ops", "append 1", "--stats", filepath.Join(optionsSuite.scriptPath, "stats.json"))
	optionsSuite.requireCode(err, util.ERROR_BAD_STATS_PATH)
}

func (optionsSuite *optionsTestSuite) TestWorkersMustBePositive() {
	_, err := optionsSuite.parse("--ops", "append 1", "--workers", "0")
	optionsSuite.EqualError(err, "workers must be at least 1, got 0")
}
