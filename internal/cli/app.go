// Package cli implements the cinebook command line.  Every invocation
// loads the persisted state, performs one operation and saves the state
// again when the operation changed it.  Movie and showtime numbers on the
// command line start at 1.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/cinebook/internal/booking"
	"github.com/iliyamo/cinebook/internal/repository"
)

// App carries what the commands share.
type App struct {
	Store        repository.StateStore
	Out          io.Writer
	Prompt       Prompter
	Now          func() time.Time
	PricePerSeat int
}

// NewApp returns an App that prompts on the terminal.
func NewApp(store repository.StateStore, out io.Writer, pricePerSeat int) *App {
	return &App{
		Store:        store,
		Out:          out,
		Prompt:       terminalPrompter{},
		Now:          time.Now,
		PricePerSeat: pricePerSeat,
	}
}

func (a *App) engine(ctx context.Context) (*booking.Engine, error) {
	catalog, records, err := repository.LoadOrDefault(ctx, a.Store)
	if err != nil {
		return nil, err
	}
	return booking.NewEngine(catalog, records,
		booking.WithClock(a.Now),
		booking.WithPricePerSeat(a.PricePerSeat),
	), nil
}

func (a *App) save(ctx context.Context, e *booking.Engine) error {
	catalog, bookings := e.Snapshot()
	return a.Store.Save(ctx, catalog, bookings)
}

// RootCmd builds the command tree.
func (a *App) RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cinebook",
		Short:         "Cinema seat booking",
		Long:          `Browse movies, inspect seat maps and book seats from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.Out)
	root.AddCommand(a.moviesCmd(), a.seatsCmd(), a.bookCmd(), a.bookingsCmd())
	return root
}

// addShowFlags registers --movie and --showtime on cmd.
func addShowFlags(cmd *cobra.Command, movie, showtime *int) {
	cmd.Flags().IntVar(movie, "movie", 0, "movie number, as listed by \"movies\"")
	cmd.Flags().IntVar(showtime, "showtime", 0, "showtime number, as listed by \"movies\"")
	_ = cmd.MarkFlagRequired("movie")
	_ = cmd.MarkFlagRequired("showtime")
}
