// Package location resolves coordinates to a city, state and country using
// the OpenStreetMap Nominatim reverse-geocoding API.
package location

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/rentverse/internal/logging"
)

const (
	Unknown            = "Unknown"
	DefaultCountryCode = "MY"
)

type Coords struct {
	Latitude  float64
	Longitude float64
}

type Info struct {
	Coords      Coords
	City        string
	State       string
	Country     string
	CountryCode string
	Address     string
}

// DefaultLocation is used when the device position is not available.
func DefaultLocation() Info {
	return Info{
		Coords:      Coords{Latitude: 5.4164, Longitude: 100.3327},
		City:        "George Town",
		State:       "Penang",
		Country:     "Malaysia",
		CountryCode: DefaultCountryCode,
	}
}

// Getter is the part of api.Client the geocoder needs.
type Getter interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

type Service struct {
	api Getter
	log logging.Logger
}

// NewService expects api to be rooted at the Nominatim base URL and to send
// an identifying User-Agent, which Nominatim requires.
func NewService(api Getter, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{api: api, log: log}
}

type reverseResponse struct {
	DisplayName string          `json:"display_name"`
	Address     *nominatimAddrs `json:"address"`
}

type nominatimAddrs struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
	Village      string `json:"village"`
	State        string `json:"state"`
	Province     string `json:"province"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
}

// Reverse looks up lat/lon. It never fails: on any error the result names
// an Unknown city in the default country.
func (s *Service) Reverse(ctx context.Context, lat, lon float64) Info {
	unknown := Info{
		Coords:      Coords{Latitude: lat, Longitude: lon},
		City:        Unknown,
		CountryCode: DefaultCountryCode,
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("zoom", "10")
	q.Set("addressdetails", "1")

	var resp reverseResponse
	if err := s.api.Get(ctx, "/reverse", q, &resp); err != nil {
		s.log.Warn(ctx, "reverse geocoding failed", "lat", lat, "lon", lon, "error", err)
		return unknown
	}
	if resp.Address == nil {
		return unknown
	}

	a := resp.Address
	return Info{
		Coords:      unknown.Coords,
		City:        titleCase(firstNonEmpty(a.City, a.Town, a.Municipality, a.County, a.Village, Unknown)),
		State:       titleCase(firstNonEmpty(a.State, a.Province, a.Region)),
		Country:     titleCase(a.Country),
		CountryCode: strings.ToUpper(a.CountryCode),
		Address:     resp.DisplayName,
	}
}

// CityFromCoords returns just the city, or Unknown.
func (s *Service) CityFromCoords(ctx context.Context, lat, lon float64) string {
	if city := s.Reverse(ctx, lat, lon).City; city != "" {
		return city
	}
	return Unknown
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// titleCase upper-cases the first letter of every space-separated word and
// lower-cases the rest.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
