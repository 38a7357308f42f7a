// Package cli implements the interactive command loop of the auth client.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shivamvijaywargi/auth-service/internal/client/api"
	"github.com/shivamvijaywargi/auth-service/internal/client/session"
)

type App struct {
	api     *api.Client
	session *session.Session
	in      *bufio.Reader
	out     io.Writer
}

func NewApp(apiClient *api.Client, sess *session.Session) *App {
	apiClient.SetToken(sess.Token())

	return &App{
		api:     apiClient,
		session: sess,
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) Main() {
	fmt.Fprintln(a.out, "auth-service CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "auth %s> ", a.showLogin())
		line, err := a.in.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.session.LoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}
		case "register":
			a.Register()
		case "login":
			a.Login()
		case "whoami":
			a.WhoAmI()
		case "logout":
			a.Logout()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) showLogin() string {
	if a.session.LoggedIn() {
		return "[" + a.session.Email() + "] "
	}
	return ""
}
