package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/iliyamo/cinebook/internal/model"
)

const (
	seatFree     = "O"
	seatBooked   = "X"
	seatSelected = "*"
)

func (a *App) seatsCmd() *cobra.Command {
	var movie, showtime int
	cmd := &cobra.Command{
		Use:   "seats",
		Short: "Show the seat map of a showtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			sm, err := e.GetSeatMap(movie-1, showtime-1)
			if err != nil {
				return err
			}
			renderSeatMap(a, sm, nil)
			return nil
		},
	}
	addShowFlags(cmd, &movie, &showtime)
	return cmd
}

// renderSeatMap prints rows A to M with one column per seat number.
func renderSeatMap(a *App, sm model.SeatMap, sel *model.Selection) {
	t := table.NewWriter()
	t.SetOutputMirror(a.Out)
	header := table.Row{""}
	for c := 1; c <= model.SeatCols; c++ {
		header = append(header, c)
	}
	t.AppendHeader(header)
	for r := 0; r < model.SeatRows; r++ {
		row := table.Row{model.RowLabel(r)}
		for c := 0; c < model.SeatCols; c++ {
			id := model.SeatID{Row: r, Col: c}
			switch {
			case sel != nil && sel.Contains(id):
				row = append(row, seatSelected)
			case sm.SeatAvailable(id):
				row = append(row, seatFree)
			default:
				row = append(row, seatBooked)
			}
		}
		t.AppendRow(row)
	}
	t.Render()
	legend := fmt.Sprintf("%s free  %s booked", seatFree, seatBooked)
	if sel != nil {
		legend += fmt.Sprintf("  %s selected (%d)", seatSelected, sel.Len())
	}
	fmt.Fprintf(a.Out, "%s  %d available\n", legend, sm.AvailableCount())
}
