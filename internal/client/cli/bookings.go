package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

func (a *App) Bookings(ctx context.Context) error {
	list, err := a.bookings.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No bookings")
		return nil
	}
	for _, b := range list {
		printBooking(a.out, &b)
	}
	return nil
}

// Book asks for dates and guests and books property args[0].
func (a *App) Book(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("book <propertyId>")
	}
	data := models.CreateBookingData{PropertyID: args[0]}

	var err error
	if data.CheckIn, err = a.askDate("Check-in date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if data.CheckOut, err = a.askDate("Check-out date (YYYY-MM-DD)"); err != nil {
		return err
	}
	guests, err := getSimpleText(a.reader, "Guests", a.out)
	if err != nil {
		return err
	}
	if err := intInto("guests", &data.Guests)(guests); err != nil {
		return err
	}

	b, err := a.bookings.Create(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booked %d night(s), booking %s is %s\n",
		models.Booking{CheckIn: data.CheckIn, CheckOut: data.CheckOut}.Nights(), b.ID, b.Status)
	return nil
}

func (a *App) askDate(prompt string) (time.Time, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date", models.ErrValidation, s)
	}
	return d, nil
}

func (a *App) Cancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("cancel <bookingId>")
	}
	b, err := a.bookings.Cancel(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking %s is %s\n", b.ID, b.Status)
	return nil
}
