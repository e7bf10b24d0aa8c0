package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/rentverse/internal/client/location"
	"github.com/dmitrijs2005/rentverse/internal/client/models"
	"github.com/dmitrijs2005/rentverse/internal/client/session"
	"github.com/dmitrijs2005/rentverse/internal/logging"
)

type fakeSession struct {
	user *models.User
	err  error

	loginCreds   models.LoginCredentials
	registerData models.RegisterData
	patch        *models.UserPatch
	avatarName   string
	avatarBody   string
	loggedOut    bool
}

func (f *fakeSession) Init(ctx context.Context) {}
func (f *fakeSession) Status() session.Status {
	if f.user != nil {
		return session.StatusAuthenticated
	}
	return session.StatusUnauthenticated
}
func (f *fakeSession) User() *models.User    { return f.user }
func (f *fakeSession) IsAuthenticated() bool { return f.user != nil }
func (f *fakeSession) Close() error          { return nil }

func (f *fakeSession) Login(ctx context.Context, creds models.LoginCredentials, _ ...session.LoginOption) (*models.User, error) {
	f.loginCreds = creds
	if f.err != nil {
		return nil, f.err
	}
	f.user = &models.User{ID: "u1", Name: "Alice", Email: creds.Email}
	return f.user, nil
}

func (f *fakeSession) Register(ctx context.Context, data models.RegisterData, _ ...session.LoginOption) (*models.User, error) {
	f.registerData = data
	if f.err != nil {
		return nil, f.err
	}
	f.user = &models.User{ID: "u1", Name: data.Name, Email: data.Email}
	return f.user, nil
}

func (f *fakeSession) Logout(ctx context.Context) error {
	f.loggedOut = true
	f.user = nil
	return nil
}

func (f *fakeSession) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	f.patch = &patch
	return f.err
}

func (f *fakeSession) UploadAvatar(ctx context.Context, filename string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.avatarName, f.avatarBody = filename, string(b)
	return "https://cdn.example.com/" + filename, f.err
}

type fakeProps struct {
	list    []models.Property
	filter  models.PropertyFilter
	created *models.PropertyData
	err     error
}

func (f *fakeProps) List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	f.filter = filter
	return f.list, f.err
}
func (f *fakeProps) Get(ctx context.Context, id string) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.list {
		if f.list[i].ID == id {
			return &f.list[i], nil
		}
	}
	return nil, f.err
}
func (f *fakeProps) Create(ctx context.Context, data models.PropertyData) (*models.Property, error) {
	f.created = &data
	if f.err != nil {
		return nil, f.err
	}
	return &models.Property{ID: "new-1", Title: data.Title}, nil
}
func (f *fakeProps) Update(ctx context.Context, id string, data models.PropertyData) (*models.Property, error) {
	return nil, f.err
}
func (f *fakeProps) Delete(ctx context.Context, id string) error { return f.err }
func (f *fakeProps) Mine(ctx context.Context) ([]models.Property, error) {
	return f.list, f.err
}

type fakeFavs struct {
	list    []models.Favorite
	toggled []string
	state   bool
}

func (f *fakeFavs) List(ctx context.Context) ([]models.Favorite, error) { return f.list, nil }
func (f *fakeFavs) Add(ctx context.Context, propertyID string) (*models.Favorite, error) {
	return &models.Favorite{PropertyID: propertyID}, nil
}
func (f *fakeFavs) Remove(ctx context.Context, favoriteID string) error { return nil }
func (f *fakeFavs) Toggle(ctx context.Context, propertyID string) (bool, error) {
	f.toggled = append(f.toggled, propertyID)
	f.state = !f.state
	return f.state, nil
}

type fakeBookings struct {
	list      []models.Booking
	created   *models.CreateBookingData
	cancelled string
}

func (f *fakeBookings) List(ctx context.Context) ([]models.Booking, error) { return f.list, nil }
func (f *fakeBookings) Get(ctx context.Context, id string) (*models.Booking, error) {
	return &models.Booking{ID: id}, nil
}
func (f *fakeBookings) Create(ctx context.Context, data models.CreateBookingData) (*models.Booking, error) {
	f.created = &data
	return &models.Booking{ID: "b1", PropertyID: data.PropertyID, Status: models.BookingPending}, nil
}
func (f *fakeBookings) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	f.cancelled = id
	return &models.Booking{ID: id, Status: models.BookingCancelled}, nil
}
func (f *fakeBookings) ForProperty(ctx context.Context, propertyID string) ([]models.Booking, error) {
	return nil, nil
}

type fakeLocator struct {
	lat, lon float64
}

func (f *fakeLocator) Reverse(ctx context.Context, lat, lon float64) location.Info {
	f.lat, f.lon = lat, lon
	return location.Info{
		Coords:      location.Coords{Latitude: lat, Longitude: lon},
		City:        "Kuala Lumpur",
		State:       "Wilayah Persekutuan",
		Country:     "Malaysia",
		CountryCode: "MY",
	}
}

type testApp struct {
	*App
	sess     *fakeSession
	props    *fakeProps
	favs     *fakeFavs
	bookings *fakeBookings
	geo      *fakeLocator
	out      *bytes.Buffer
}

// newTestApp builds an App over fakes that reads its prompts from input.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	ta := &testApp{
		sess:     &fakeSession{},
		props:    &fakeProps{},
		favs:     &fakeFavs{},
		bookings: &fakeBookings{},
		geo:      &fakeLocator{},
		out:      &bytes.Buffer{},
	}
	ta.App = &App{
		session:      ta.sess,
		props:        ta.props,
		favs:         ta.favs,
		bookings:     ta.bookings,
		geo:          ta.geo,
		log:          logging.Nop(),
		reader:       rdr(input),
		out:          ta.out,
		maxImageSize: 16,
	}
	return ta
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = old })
}
