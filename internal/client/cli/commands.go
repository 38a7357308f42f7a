package cli

import (
	"context"
	"fmt"
	"time"
)

const commandTimeout = 5 * time.Second

func (a *App) Register() {
	email, err := a.promptLine("Email")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	resp, err := a.api.Register(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return
	}

	if err := a.session.LogIn(resp.User.Email, resp.Token); err != nil {
		fmt.Fprintln(a.out, "Warning: could not save session:", err)
	}
	fmt.Fprintln(a.out, "Registered and logged in as", resp.User.Email)
}

func (a *App) Login() {
	email, err := a.promptLine("Email")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}

	if err := a.session.LogIn(resp.User.Email, resp.Token); err != nil {
		fmt.Fprintln(a.out, "Warning: could not save session:", err)
	}
	fmt.Fprintln(a.out, "Logged in as", resp.User.Email)
}

func (a *App) WhoAmI() {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	resp, err := a.api.Me(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintln(a.out, resp.User.Email)
}

// Logout always clears the local session, even when the server round
// trip fails: the stored flag is a UI convenience, not the boundary.
func (a *App) Logout() {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if _, err := a.api.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Warning: logout request failed:", err)
	}
	a.api.SetToken("")

	if err := a.session.LogOut(); err != nil {
		fmt.Fprintln(a.out, "Warning: could not clear session:", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}
