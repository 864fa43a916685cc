package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iliyamo/cinebook/internal/booking"
	"github.com/iliyamo/cinebook/internal/model"
	"github.com/iliyamo/cinebook/internal/receipt"
)

type bookFlags struct {
	movie, showtime int
	seats           []string
	card            string
	expiry          string
	cvv             string
	receiptDir      string
}

func (a *App) bookCmd() *cobra.Command {
	var f bookFlags
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book seats for a showtime",
		Long: `Book seats for a showtime.  Seats come from --seats or, when omitted,
are picked interactively.  Missing payment details are prompted for.`,
		Example: `  cinebook book --movie 1 --showtime 2 --seats A1,A2 --card "1111 2222 3333 4444" --expiry 12/27 --cvv 123`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			req := booking.CommitRequest{MovieIndex: f.movie - 1, ShowtimeIndex: f.showtime - 1}
			view, err := e.GetSeatMap(req.MovieIndex, req.ShowtimeIndex)
			if err != nil {
				return err
			}

			if len(f.seats) > 0 {
				req.Seats, err = model.ParseSeatIDs(f.seats)
			} else {
				req.Seats, err = a.pickSeats(view)
			}
			if err != nil {
				return err
			}
			if req.Payment, err = a.payment(f); err != nil {
				return err
			}

			rec, err := e.Commit(req)
			if err != nil {
				return err
			}
			if err := a.save(cmd.Context(), e); err != nil {
				return fmt.Errorf("booking %s confirmed but state not saved: %w", rec.BookingID, err)
			}

			fmt.Fprintln(a.Out, "Booking confirmed")
			for _, line := range receipt.Lines(rec) {
				fmt.Fprintln(a.Out, "  "+line)
			}
			if f.receiptDir != "" {
				path, err := receipt.Write(f.receiptDir, rec, a.Now())
				if err != nil {
					return err
				}
				fmt.Fprintln(a.Out, "Receipt saved to "+path)
			}
			return nil
		},
	}
	addShowFlags(cmd, &f.movie, &f.showtime)
	cmd.Flags().StringSliceVar(&f.seats, "seats", nil, "comma separated seat labels, e.g. A1,A2")
	cmd.Flags().StringVar(&f.card, "card", "", "card number, 16 digits")
	cmd.Flags().StringVar(&f.expiry, "expiry", "", "card expiry as MM/YY")
	cmd.Flags().StringVar(&f.cvv, "cvv", "", "card security code, 3 digits")
	cmd.Flags().StringVar(&f.receiptDir, "receipt", "", "directory to save a ticket file in")
	return cmd
}

// pickSeats toggles seats one label at a time until a blank line.
func (a *App) pickSeats(view model.SeatMap) ([]model.SeatID, error) {
	var sel model.Selection
	for {
		renderSeatMap(a, view, &sel)
		label, err := a.Prompt.Ask("Seat to toggle (blank to finish)", false, func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			_, err := model.ParseSeatID(s)
			return err
		})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(label) == "" {
			break
		}
		seat, err := model.ParseSeatID(label)
		if err != nil {
			return nil, err
		}
		if _, err := sel.Toggle(seat, view); err != nil {
			if errors.Is(err, model.ErrSeatConflict) || errors.Is(err, model.ErrSelectionTooLarge) {
				fmt.Fprintln(a.Out, err)
				continue
			}
			return nil, err
		}
	}
	if sel.Len() == 0 {
		return nil, model.ErrEmptySelection
	}
	return sel.Seats(), nil
}

func (a *App) payment(f bookFlags) (booking.PaymentToken, error) {
	p := booking.PaymentToken{CardNumber: f.card, Expiry: f.expiry, CVV: f.cvv}
	fields := []struct {
		dst    *string
		label  string
		secret bool
	}{
		{&p.CardNumber, "Card number", false},
		{&p.Expiry, "Expiry (MM/YY)", false},
		{&p.CVV, "CVV", true},
	}
	for _, fl := range fields {
		if *fl.dst != "" {
			continue
		}
		v, err := a.Prompt.Ask(fl.label, fl.secret, nil)
		if err != nil {
			return booking.PaymentToken{}, err
		}
		*fl.dst = v
	}
	return p, nil
}
