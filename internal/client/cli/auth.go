package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Register prompts for account details and establishes a session.
func (a *App) Register(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if err := a.authService.Register(ctx, email, string(password), name); err != nil {
		log.Println(err.Error())
		return err
	}

	a.userEmail = email
	fmt.Println("Registered and logged in.")
	return nil
}

// Login prompts for credentials and establishes a session.
func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if err := a.authService.Login(ctx, email, string(password)); err != nil {
		log.Println(err.Error())
		return err
	}

	a.userEmail = email
	fmt.Println("Logged in.")
	return nil
}

// Logout tears down the session: the guard locks before the revocation call
// so nothing else slips out mid-teardown.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Println(err.Error())
	}

	a.userEmail = ""
	fmt.Println("Logged out.")
	return nil
}
