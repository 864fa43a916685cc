package cli

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func (a *App) moviesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "movies",
		Short: "List movies and their showtimes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			t := table.NewWriter()
			t.SetOutputMirror(a.Out)
			t.AppendHeader(table.Row{"#", "Title", "Showtimes"})
			for _, m := range e.ListMovies() {
				times := make([]string, len(m.Showtimes))
				for i, st := range m.Showtimes {
					times[i] = numbered(i, st)
				}
				t.AppendRow(table.Row{m.Index + 1, m.Title, strings.Join(times, "  ")})
			}
			t.AppendFooter(table.Row{"", "Price per seat", e.PricePerSeat()})
			t.Render()
			return nil
		},
	}
}

func numbered(i int, s string) string {
	return "[" + strconv.Itoa(i+1) + "] " + s
}
