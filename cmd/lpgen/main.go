// Command lpgen generates random linear-programming problems and writes
// them to a JSON file.
//
// Usage:
//
//	lpgen [generate] [-count N] [-output FILE] [-no-output] [-seed S] [-archive DB] [-progress]
//	lpgen inspect -file FILE
//	lpgen archive list -db DB
//	lpgen archive export -db DB -id ID -output FILE
//	lpgen version
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"pkg.jsn.cam/lpgen/internal/version"
)

const usage = `Usage:
  lpgen [generate] [flags]      generate a batch of LP problems
  lpgen inspect -file FILE      summarize a problems file
  lpgen archive list -db DB     list archived batches
  lpgen archive export ...      write an archived batch to a file
  lpgen version                 print the version

Run 'lpgen <command> -h' for command flags.
`

// cli carries the process streams so commands can be exercised in tests.
type cli struct {
	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	log.SetFlags(0)

	c := &cli{
		stdin:  bufio.NewReader(os.Stdin),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	if err := c.run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *cli) run(args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return c.generate(args)
	}

	switch args[0] {
	case "generate":
		return c.generate(args[1:])
	case "inspect":
		return c.inspect(args[1:])
	case "archive":
		return c.archive(args[1:])
	case "version":
		fmt.Fprintln(c.stdout, "lpgen", version.Current)
		return nil
	case "help":
		fmt.Fprint(c.stdout, usage)
		return nil
	default:
		fmt.Fprint(c.stderr, usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// prompt writes msg and reads one line from stdin. EOF with no input
// yields an empty answer.
func (c *cli) prompt(msg string) (string, error) {
	fmt.Fprint(c.stdout, msg)

	line, err := c.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
