package model

import "fmt"

// Catalog is the ordered list of movies on offer.  The default catalog
// has three movies; a catalog restored from persisted state may have any
// number.
type Catalog struct {
	Movies []Movie
}

// DefaultCatalog returns the three built-in movies with every seat free.
func DefaultCatalog() *Catalog {
	return &Catalog{Movies: []Movie{
		NewMovie("Inception", "10:00 AM", "01:00 PM", "04:00 PM", "07:00 PM", "10:00 PM"),
		NewMovie("The Matrix", "09:00 AM", "12:00 PM", "03:00 PM", "06:00 PM", "09:00 PM"),
		NewMovie("Interstellar", "11:00 AM", "02:00 PM", "05:00 PM", "08:00 PM", "11:00 PM"),
	}}
}

// ListMovies projects titles and showtimes for display.
func (c *Catalog) ListMovies() []MovieSummary {
	out := make([]MovieSummary, 0, len(c.Movies))
	for i, m := range c.Movies {
		out = append(out, MovieSummary{
			Index:     i,
			Title:     m.Title,
			Showtimes: append([]string(nil), m.Showtimes...),
		})
	}
	return out
}

// Movie returns the movie at movieIndex.
func (c *Catalog) Movie(movieIndex int) (*Movie, error) {
	if movieIndex < 0 || movieIndex >= len(c.Movies) {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieIndex)
	}
	return &c.Movies[movieIndex], nil
}

// SeatMap returns a pointer to the live seat map of a showtime.  The
// pointer aliases catalog state; callers outside the engine should copy
// the value instead of mutating it.
func (c *Catalog) SeatMap(movieIndex, showtimeIndex int) (*SeatMap, error) {
	m, err := c.Movie(movieIndex)
	if err != nil {
		return nil, err
	}
	if showtimeIndex < 0 || showtimeIndex >= len(m.Showtimes) || showtimeIndex >= len(m.SeatMaps) {
		return nil, fmt.Errorf("%w: showtime %d of movie %d", ErrNotFound, showtimeIndex, movieIndex)
	}
	return &m.SeatMaps[showtimeIndex], nil
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{Movies: make([]Movie, len(c.Movies))}
	for i, m := range c.Movies {
		out.Movies[i] = m.Clone()
	}
	return out
}
