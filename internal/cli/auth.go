package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/keyring"
)

type LoginCmd struct {
	Username string `arg:"" optional:"" help:"Account username."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	username := c.Username
	var password string

	fields := []huh.Field{}
	if username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&username).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("username is required")
				}
				return nil
			}))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("password is required")
			}
			return nil
		}))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return err
	}

	profile, token, err := ctx.Client.Login(context.Background(), username, password)
	if err != nil {
		return err
	}

	if err := keyring.SetToken(token); err != nil {
		if errors.Is(err, keyring.ErrKeyringUnavailable) {
			fmt.Println("Warning: no system keyring available, session will not persist.")
		} else {
			return err
		}
	}

	fmt.Printf("Logged in as %s.\n", profile.Username)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Client.Logout(context.Background()); err != nil {
		// The local token is cleared regardless so logout always works
		// offline.
		fmt.Printf("Warning: backend logout failed: %v\n", err)
	}

	if err := keyring.DeleteToken(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	profile, err := ctx.Client.GetProfile(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", profile.Username, profile.Email)
	fmt.Printf("Daily calorie goal: %d kcal\n", profile.CalorieGoal)
	return nil
}
