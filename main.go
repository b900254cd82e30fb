package main

import (
	"errors"
	"github.com/urfave/cli/v2"
	"linklist/options"
	"linklist/runner"
	"linklist/util"
	"log"
	"os"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate =
		`NAME:
   linklist - 1.0.0 - Replay a list operation script against singly, doubly and circular linked lists.

USAGE:
   linklist --script value        [optional flags]
   linklist --ops value           [optional flags]

OPTIONS:
   --script value, -s value   path to an operation script, one operation per line
   --ops value, -o value      inline operation script, operations separated by ';'
   --kinds value, -k value    patterns of list kinds to run (singly, doubly, circular), comma delimited, may contain any glob pattern
   --stats value              write run statistics as JSON to this file
   --workers value            number of list kinds replayed concurrently (default: 3)
   --strict                   fail when an operation is not supported by a selected list kind (default: false)
   --verbose, --vv            verbose logging (default: false)
   --help, -h                 show help (default: false)
   --version, -v              print the version (default: false)

OPERATIONS:
   insertFirst <value>        singly, doubly
   append <value>             singly, doubly, circular
   appendAt <index> <value>   singly
   delete <value>             circular
   traverse                   singly, doubly, circular
   traverseRev                doubly

EXIT CODES:
  0    Success
  201  Script path is missing or invalid
  202  Script could not be parsed
  203  Kind pattern could not be compiled
  204  No list kind matches the patterns
  205  Stats path is invalid
  206  Operation not supported by a selected kind (--strict)
  1    Any other error
`

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
	app := &cli.App{
		Name:    "linklist",
		Usage:   "Replay a list operation script against singly, doubly and circular linked lists.",
		Flags:   options.Flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			opts, err := options.ParseOptions(ctx)
			if err != nil {
				return err
			}
			_, err = runner.Run(opts, os.Stdout)
			if err == nil {
				log.Printf("Completed successfully")
			}
			return err
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		var errorWithCode *util.ErrorWithCode
		if errors.As(err, &errorWithCode) {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
