package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/lpgen/pkg/generator"
	"pkg.jsn.cam/lpgen/pkg/storage"
)

func (c *cli) inspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	path := fs.String("file", generator.DefaultOutputPath, "Problems file to inspect")

	if err := fs.Parse(args); err != nil {
		return err
	}

	problems, err := storage.ReadProblemsFile(*path)
	if err != nil {
		return err
	}

	if len(problems) == 0 {
		fmt.Fprintf(c.stdout, "%s contains no problems\n", *path)
		return nil
	}

	fmt.Fprintf(c.stdout, "%-6s %-4s %-7s %-5s %-8s %s\n", "#", "N", "M_INEQ", "M_EQ", "EQ_RANK", "SENSE")
	fmt.Fprintln(c.stdout, "────────────────────────────────────────────────")

	var rows, dependent int
	for i, p := range problems {
		rank := p.EqualityRank()
		sense := "min"
		if p.IsMaximization {
			sense = "max"
		}

		note := ""
		if rank < p.MEq() {
			note = "  (dependent equality rows)"
			dependent++
		}

		fmt.Fprintf(c.stdout, "%-6d %-4d %-7d %-5d %-8d %s%s\n",
			i, p.N(), p.MIneq(), p.MEq(), rank, sense, note)
		rows += p.MIneq() + p.MEq()
	}

	fmt.Fprintln(c.stdout)
	fmt.Fprintf(c.stdout, "Problems:    %s\n", humanize.Comma(int64(len(problems))))
	fmt.Fprintf(c.stdout, "Constraints: %s\n", humanize.Comma(int64(rows)))
	if dependent > 0 {
		fmt.Fprintf(c.stdout, "Dependent:   %d problem(s) have linearly dependent equality rows\n", dependent)
	}

	if st, err := os.Stat(*path); err == nil {
		fmt.Fprintf(c.stdout, "File size:   %s\n", humanize.Bytes(uint64(st.Size())))
	}

	return nil
}
