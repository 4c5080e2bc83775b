package cli

import (
	"context"
	"errors"
	"fmt"

	"todoapp/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.client.Register(ctx, username, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err.Error())
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", user.Username)
	return nil
}

// Login prompts for credentials and authenticates against the server.
// On a failed login it prints a generic message and leaves the session
// untouched, so the caller cannot tell a bad password from an unknown user.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Invalid username or password")
		} else {
			fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		}
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}

// Logout drops the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
