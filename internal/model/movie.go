package model

// DefaultShowtimeCount is the number of screenings each built-in movie has.
const DefaultShowtimeCount = 5

// Movie is a title with a fixed list of showtimes and one seat map per
// showtime.  Title and Showtimes never change after construction; only
// the seat maps are mutated, and only by the booking engine.
//
// Fields:
//  Title     – display title.
//  Showtimes – ordered time labels such as "10:00 AM".
//  SeatMaps  – availability grid for each showtime, same length and order
//              as Showtimes.
type Movie struct {
	Title     string
	Showtimes []string
	SeatMaps  []SeatMap
}

// NewMovie creates a movie whose showtimes all start fully available.
func NewMovie(title string, showtimes ...string) Movie {
	maps := make([]SeatMap, len(showtimes))
	for i := range maps {
		maps[i] = NewSeatMap()
	}
	return Movie{
		Title:     title,
		Showtimes: append([]string(nil), showtimes...),
		SeatMaps:  maps,
	}
}

// Clone returns a deep copy of the movie.
func (m Movie) Clone() Movie {
	return Movie{
		Title:     m.Title,
		Showtimes: append([]string(nil), m.Showtimes...),
		SeatMaps:  append([]SeatMap(nil), m.SeatMaps...),
	}
}

// MovieSummary is the read-only projection handed to listing views.
type MovieSummary struct {
	Index     int      `json:"index"`
	Title     string   `json:"title"`
	Showtimes []string `json:"show_times"`
}
