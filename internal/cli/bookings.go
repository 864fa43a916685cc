package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/iliyamo/cinebook/internal/model"
	"github.com/iliyamo/cinebook/internal/receipt"
)

func (a *App) bookingsCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List confirmed bookings, or show one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			if id != "" {
				rec, err := e.FindBooking(id)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.Out, strings.Join(receipt.Lines(rec), "\n"))
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(a.Out)
			t.AppendHeader(table.Row{"Booking ID", "Movie", "Showtime", "Seats", "Total", "Card", "Booked At"})
			total := 0
			for _, r := range e.ListBookings() {
				t.AppendRow(table.Row{
					r.BookingID,
					r.MovieTitle,
					r.Showtime,
					strings.Join(model.SeatLabels(r.Seats), ","),
					r.TotalAmount,
					"****" + r.PaymentLast4,
					r.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
				total += r.TotalAmount
			}
			t.AppendFooter(table.Row{"", "", "", "", total, "", ""})
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "booking id to show")
	return cmd
}
