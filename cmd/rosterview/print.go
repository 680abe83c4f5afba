package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rosterview/internal/config"
	"rosterview/internal/roster"
	"rosterview/internal/ui"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func newPrintCmd(cfg *config.Config, verbose *bool) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Fetch the roster once and print it grouped by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
			}
			ctx := cmd.Context()
			s, err := startServices(ctx, cfg, *verbose)
			if err != nil {
				return err
			}
			defer s.close()
			return printRoster(ctx, cmd.OutOrStdout(), s.fetcher(cfg), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	return cmd
}

// printRoster fetches once and writes the grouped roster to w.
func printRoster(ctx context.Context, w io.Writer, f roster.Fetcher, format string) error {
	records, err := f.Fetch(ctx)
	if err != nil {
		return err
	}
	g := roster.GroupByDate(records)
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}
	return writeText(w, g)
}

// writeText renders one block per date:
//
//	10/01/2022
//	  ✈  AMS - MAD    06:55 - 09:40
//	  ⌂  Layover      10:25 - 08:55
//	     MAD
func writeText(w io.Writer, g *roster.Grouped) error {
	if g.Len() == 0 {
		_, err := fmt.Fprintln(w, "No data found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
	first := true
	g.Each(func(date string, recs []roster.DutyRecord) {
		if !first {
			fmt.Fprintln(tw)
		}
		first = false
		fmt.Fprintln(tw, date)
		for _, rec := range recs {
			d := roster.Present(rec)
			fmt.Fprintf(tw, "  %s  %s\t%s\n", ui.IconGlyph(d.Icon), d.Primary, d.Times)
			if d.HasSecondary || d.MatchCrew {
				line := d.Secondary
				if d.MatchCrew {
					line = strings.TrimSpace(line + "  (Match Crew)")
				}
				fmt.Fprintf(tw, "     %s\t\n", line)
			}
		}
	})
	return tw.Flush()
}
