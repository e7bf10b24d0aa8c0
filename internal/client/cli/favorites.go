package cli

import (
	"context"
	"fmt"
)

func (a *App) Favorites(ctx context.Context) error {
	favs, err := a.favs.List(ctx)
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Fprintln(a.out, "No favorites yet")
		return nil
	}
	for _, f := range favs {
		title := f.PropertyID
		if f.Property != nil {
			title = f.Property.Title
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", f.ID, f.PropertyID, title)
	}
	return nil
}

// Fav toggles args[0] in the favorites list.
func (a *App) Fav(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("fav <propertyId>")
	}
	on, err := a.favs.Toggle(ctx, args[0])
	if err != nil {
		return err
	}
	if on {
		fmt.Fprintln(a.out, "Added to favorites")
	} else {
		fmt.Fprintln(a.out, "Removed from favorites")
	}
	return nil
}
