package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
	"github.com/dmitrijs2005/rentverse/internal/client/session"
	"github.com/dmitrijs2005/rentverse/internal/common"
	"github.com/google/uuid"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, password and an optional phone number,
// validates them and creates the account. The new user is signed in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}

	data := models.RegisterData{Name: name, Email: email, Password: string(password), Phone: phone}
	if err := data.Validate(); err != nil {
		return err
	}

	u, err := a.session.Register(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	creds := models.LoginCredentials{Email: email, Password: string(password)}
	if err := creds.Validate(); err != nil {
		return err
	}

	u, err := a.session.Login(ctx, creds)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", u.Name)
	return nil
}

// Operator access is checked locally and never reaches the API.
const (
	operatorLogin    = "admin"
	operatorPassword = "admin"
	operatorRole     = "admin"
)

var errInvalidOperator = fmt.Errorf("%w: invalid admin credentials", models.ErrValidation)

// Admin signs in the built-in operator account. The session is built from a
// local response, so no request is sent.
func (a *App) Admin(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter admin login", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if login != operatorLogin || string(password) != operatorPassword {
		return errInvalidOperator
	}

	resp := models.AuthResponse{
		Token: "operator-" + uuid.NewString(),
		User: models.User{
			ID:        "admin_1",
			Name:      "Admin User",
			Email:     "admin@rentverse.com",
			Role:      operatorRole,
			CreatedAt: time.Now().UTC(),
		},
	}
	creds := models.LoginCredentials{Email: login, Password: string(password)}

	u, err := a.session.Login(ctx, creds, session.WithResponse(resp))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", u.Name, u.Role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		return common.ErrNotAuthenticated
	}
	printUser(a.out, u)
	return nil
}

// Profile asks for new name, email and phone. Empty answers keep the
// current value.
func (a *App) Profile(ctx context.Context) error {
	var patch models.UserPatch
	for _, f := range []struct {
		prompt string
		dst    **string
	}{
		{"New name (empty to keep)", &patch.Name},
		{"New email (empty to keep)", &patch.Email},
		{"New phone (empty to keep)", &patch.Phone},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = common.Ptr(v)
		}
	}

	if patch.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	if err := a.session.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

// Avatar uploads the image at args[0] as the profile picture.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("avatar <image file>")
	}
	path := args[0]

	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if a.maxImageSize > 0 && st.Size() > a.maxImageSize {
		return fmt.Errorf("%w: image is larger than %d bytes", models.ErrValidation, a.maxImageSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	avatarURL, err := a.session.UploadAvatar(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Avatar updated:", avatarURL)
	return nil
}
