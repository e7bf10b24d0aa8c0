package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/rentverse/internal/client/location"
	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

// Locate reverse geocodes "lat lon", or shows the default location when no
// coordinates are given.
func (a *App) Locate(ctx context.Context, args []string) error {
	var info location.Info
	switch len(args) {
	case 0:
		info = location.DefaultLocation()
	case 2:
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil || lat < -90 || lat > 90 {
			return fmt.Errorf("%w: invalid latitude %q", models.ErrValidation, args[0])
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil || lon < -180 || lon > 180 {
			return fmt.Errorf("%w: invalid longitude %q", models.ErrValidation, args[1])
		}
		info = a.geo.Reverse(ctx, lat, lon)
	default:
		return usageError("locate [lat lon]")
	}

	fmt.Fprintf(a.out, "%s, %s, %s (%s) at %.4f, %.4f\n",
		info.City, info.State, info.Country, info.CountryCode, info.Coords.Latitude, info.Coords.Longitude)
	return nil
}
