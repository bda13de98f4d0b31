package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

// listLeads dumps the lead book for manual follow-up, oldest first.
func (cli *commandLine) listLeads() error {
	leads, err := cli.leadRepo.QueryAllLeads(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tEMAIL\tKEYWORD\tREGISTERED")
	for _, ld := range leads {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			ld.ID, ld.FullName, ld.Email, ld.Keyword, ld.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
