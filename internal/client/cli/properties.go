package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

// Properties lists properties matching key=value filter arguments.
func (a *App) Properties(ctx context.Context, args []string) error {
	filter, err := parseFilter(args)
	if err != nil {
		return err
	}
	list, err := a.props.List(ctx, filter)
	if err != nil {
		return err
	}
	printProperties(a.out, list)
	return nil
}

func (a *App) Property(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("property <id>")
	}
	p, err := a.props.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printProperty(a.out, p)
	return nil
}

func (a *App) Mine(ctx context.Context) error {
	list, err := a.props.Mine(ctx)
	if err != nil {
		return err
	}
	printProperties(a.out, list)
	return nil
}

// Create walks the user through a new listing.
func (a *App) Create(ctx context.Context) error {
	var (
		d   models.PropertyData
		err error
	)
	text := func(prompt string, dst *string) {
		if err == nil {
			*dst, err = getSimpleText(a.reader, prompt, a.out)
		}
	}
	number := func(prompt string, parse func(string) error) {
		if err != nil {
			return
		}
		var s string
		if s, err = getSimpleText(a.reader, prompt, a.out); err == nil {
			err = parse(s)
		}
	}

	text("Title", &d.Title)
	if err == nil {
		d.Description, err = GetMultiline(a.reader, "Description", a.out)
	}
	number("Monthly price", floatInto("price", &d.Price))
	text("Location (city)", &d.Location)
	text("Address", &d.Address)
	number("Bedrooms", intInto("bedrooms", &d.Bedrooms))
	number("Bathrooms", intInto("bathrooms", &d.Bathrooms))
	number("Area (sq ft)", floatInto("area", &d.Area))
	if err == nil {
		d.Amenities, err = GetList(a.reader, "Amenities", a.out)
	}
	if err == nil {
		d.Images, err = GetList(a.reader, "Image URLs", a.out)
	}
	if err != nil {
		return err
	}

	p, err := a.props.Create(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Property created:", p.ID)
	return nil
}

func floatInto(name string, dst *float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", models.ErrValidation, name)
		}
		*dst = v
		return nil
	}
}

func intInto(name string, dst *int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number", models.ErrValidation, name)
		}
		*dst = v
		return nil
	}
}

// parseFilter reads "key=value" arguments into a PropertyFilter.
//
//	city= state= country= type= search= sort=
//	min= max= beds= baths= page= limit= furnished=
//	lat= lon= radius=
func parseFilter(args []string) (models.PropertyFilter, error) {
	var f models.PropertyFilter
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok || val == "" {
			return f, fmt.Errorf("%w: filter %q must be key=value", models.ErrValidation, arg)
		}

		var err error
		switch key {
		case "city":
			f.City = val
		case "state":
			f.State = val
		case "country":
			f.Country = val
		case "type":
			f.PropertyTypeID = val
		case "search", "q":
			f.Search = val
		case "sort":
			f.SortBy = models.SortOrder(val)
		case "page":
			err = intInto(key, &f.Page)(val)
		case "limit":
			err = intInto(key, &f.Limit)(val)
		case "min":
			f.MinPrice, err = floatPtr(key, val)
		case "max":
			f.MaxPrice, err = floatPtr(key, val)
		case "lat":
			f.Latitude, err = floatPtr(key, val)
		case "lon":
			f.Longitude, err = floatPtr(key, val)
		case "radius":
			f.Radius, err = floatPtr(key, val)
		case "beds":
			f.Bedrooms, err = intPtr(key, val)
		case "baths":
			f.Bathrooms, err = intPtr(key, val)
		case "furnished":
			var b bool
			if b, err = strconv.ParseBool(val); err != nil {
				err = fmt.Errorf("%w: furnished must be true or false", models.ErrValidation)
			}
			f.Furnished = &b
		default:
			err = fmt.Errorf("%w: unknown filter %q", models.ErrValidation, key)
		}
		if err != nil {
			return f, err
		}
	}
	return f, nil
}

func floatPtr(name, s string) (*float64, error) {
	var v float64
	if err := floatInto(name, &v)(s); err != nil {
		return nil, err
	}
	return &v, nil
}

func intPtr(name, s string) (*int, error) {
	var v int
	if err := intInto(name, &v)(s); err != nil {
		return nil, err
	}
	return &v, nil
}
