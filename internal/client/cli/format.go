package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
	"github.com/dmitrijs2005/rentverse/internal/common"
)

func printUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "ID:     %s\n", u.ID)
	fmt.Fprintf(w, "Name:   %s\n", u.Name)
	fmt.Fprintf(w, "Email:  %s\n", u.Email)
	fmt.Fprintf(w, "Phone:  %s\n", common.Deref(u.Phone))
	fmt.Fprintf(w, "Avatar: %s\n", common.Deref(u.Avatar))
	fmt.Fprintf(w, "Role:   %s\n", u.Role)
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Since:  %s\n", u.CreatedAt.Format("2006-01-02"))
	}
}

func printProperties(w io.Writer, list []models.Property) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No properties found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tPRICE\tBEDS\tBATHS")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%d\t%d\n", p.ID, p.Title, p.Location, p.Price, p.Bedrooms, p.Bathrooms)
	}
	_ = tw.Flush()
}

func printProperty(w io.Writer, p *models.Property) {
	fmt.Fprintf(w, "%s (%s)\n", p.Title, p.ID)
	fmt.Fprintf(w, "%s, %s\n", p.Address, p.Location)
	fmt.Fprintf(w, "Price: %.0f / month\n", p.Price)
	fmt.Fprintf(w, "%d bed, %d bath, %.0f sq ft\n", p.Bedrooms, p.Bathrooms, p.Area)
	if p.Rating > 0 {
		fmt.Fprintf(w, "Rating: %.1f (%d reviews)\n", p.Rating, p.Reviews)
	}
	if len(p.Amenities) > 0 {
		fmt.Fprintf(w, "Amenities: %s\n", strings.Join(p.Amenities, ", "))
	}
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
}

func printBooking(w io.Writer, b *models.Booking) {
	fmt.Fprintf(w, "%s\t%s\t%s → %s\t%d night(s)\t%d guest(s)\t%s\n",
		b.ID, b.PropertyID,
		b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
		b.Nights(), b.Guests, b.Status)
}
