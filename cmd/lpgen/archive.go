package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/lpgen/pkg/generator"
	"pkg.jsn.cam/lpgen/pkg/storage"
)

const defaultArchivePath = "lpgen.db"

var (
	errMissingBatchID    = errors.New("batch id is required")
	errMissingArchiveCmd = errors.New("archive needs a subcommand: list or export")
	errUnknownArchiveCmd = errors.New("unknown archive subcommand")
)

func (c *cli) archive(args []string) error {
	if len(args) == 0 {
		return errMissingArchiveCmd
	}

	switch args[0] {
	case "list":
		return c.archiveList(args[1:])
	case "export":
		return c.archiveExport(args[1:])
	default:
		return fmt.Errorf("%w: %s", errUnknownArchiveCmd, args[0])
	}
}

func (c *cli) archiveList(args []string) error {
	fs := flag.NewFlagSet("archive list", flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	dbPath := fs.String("db", defaultArchivePath, "Archive database path")

	if err := fs.Parse(args); err != nil {
		return err
	}

	archive, err := storage.OpenArchive(*dbPath)
	if err != nil {
		return err
	}
	defer archive.Close()

	infos, err := archive.List()
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Fprintln(c.stdout, "No batches archived")
		return nil
	}

	fmt.Fprintf(c.stdout, "%-36s %-8s %-8s %s\n", "BATCH ID", "COUNT", "VERSION", "CREATED")
	fmt.Fprintln(c.stdout, "─────────────────────────────────────────────────────────────────────────")
	for _, info := range infos {
		fmt.Fprintf(c.stdout, "%-36s %-8s %-8s %s\n",
			info.ID,
			humanize.Comma(int64(info.Count)),
			info.Version,
			humanize.Time(info.CreatedAt))
	}

	return nil
}

func (c *cli) archiveExport(args []string) error {
	fs := flag.NewFlagSet("archive export", flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	dbPath := fs.String("db", defaultArchivePath, "Archive database path")
	id := fs.String("id", "", "Batch ID to export")
	output := fs.String("output", generator.DefaultOutputPath, "Output JSON file path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errMissingBatchID
	}

	archive, err := storage.OpenArchive(*dbPath)
	if err != nil {
		return err
	}
	defer archive.Close()

	problems, err := archive.Get(*id)
	if err != nil {
		return err
	}

	if err := storage.WriteProblemsFile(*output, problems); err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "Exported %s problems from batch %s to %s\n",
		humanize.Comma(int64(len(problems))), *id, *output)

	return nil
}
