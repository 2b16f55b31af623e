package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/lpgen/pkg/generator"
	"pkg.jsn.cam/lpgen/pkg/storage"
)

func (c *cli) generate(args []string) error {
	// seed only affects draws, not the description or default count
	defaults := generator.NewDefault(generator.NewSource(0))

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		fmt.Fprintf(c.stderr, "Usage: lpgen generate [flags]\n\nGenerates %s\n\n", defaults.Description())
		fs.PrintDefaults()
	}

	count := fs.Int("count", 0, "Number of problems to generate (prompted for when omitted)")
	output := fs.String("output", generator.DefaultOutputPath, "Output JSON file path")
	noOutput := fs.Bool("no-output", false, "Generate without writing a file")
	seed := fs.Uint64("seed", 0, "Random seed (random when omitted)")
	archivePath := fs.String("archive", "", "Also store the batch in this bbolt archive")
	progress := fs.Bool("progress", false, "Show a progress bar on stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}

	interactive := !isFlagSet(fs, "count")
	if interactive {
		answer, err := c.prompt(fmt.Sprintf("Number of LP problems to generate (default %d): ", defaults.DefaultCount()))
		if err != nil {
			return err
		}
		if answer == "" {
			*count = defaults.DefaultCount()
		} else {
			n, err := generator.ParseCount(answer)
			if err != nil {
				return err
			}
			*count = n
		}
	} else if *count < 0 {
		return fmt.Errorf("%w: %d", generator.ErrInvalidCount, *count)
	}

	dest := *output
	if *noOutput {
		dest = ""
	} else if interactive && !isFlagSet(fs, "output") {
		answer, err := c.prompt(fmt.Sprintf("Output file (default %s): ", generator.DefaultOutputPath))
		if err != nil {
			return err
		}
		if answer != "" {
			dest = answer
		}
	}

	var src *generator.RandSource
	if isFlagSet(fs, "seed") {
		src = generator.NewSource(*seed)
	} else {
		src = generator.NewRandomSource()
		log.Printf("[LPGEN] Using seed %d", src.Seed())
	}
	gen := generator.NewDefault(src)

	var opts []generator.BatchOption
	if *progress && *count > 0 {
		bar := progressbar.NewOptions(*count,
			progressbar.OptionSetWriter(c.stderr),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		opts = append(opts, generator.WithProgress(func(done, total int) {
			_ = bar.Set(done)
		}))
		defer bar.Finish()
	}

	problems, err := gen.GenerateBatch(*count, dest, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "Generated %s LP problems\n", humanize.Comma(int64(len(problems))))

	if dest != "" {
		if st, err := os.Stat(dest); err == nil {
			fmt.Fprintf(c.stdout, "Saved to %s (%s)\n", dest, humanize.Bytes(uint64(st.Size())))
		} else {
			fmt.Fprintf(c.stdout, "Saved to %s\n", dest)
		}
	}

	if *archivePath != "" {
		archive, err := storage.OpenArchive(*archivePath)
		if err != nil {
			return err
		}
		defer archive.Close()

		info, err := archive.Put(problems)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "Archived as batch %s\n", info.ID)
	}

	return nil
}
