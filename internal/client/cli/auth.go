package cli

import (
	"context"
	"fmt"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
	"github.com/claranceliberi/uni-resource-hub/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details, creates the account and logs the
// user straight in with the same credentials.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	reg := models.Registration{
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := a.session.Register(ctx, reg); err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s! Your account is ready and you are logged in.\n", a.session.Identity().FullName())
	return nil
}

// Login prompts for credentials and authenticates against the backend. On
// success the session (credential + identity) is persisted locally.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.session.Identity().Email)
	return nil
}

// Logout discards the local session. The server is not contacted, and
// logging out twice is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.handleErr(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
