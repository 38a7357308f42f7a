package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func (a *App) promptLine(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) promptPassword(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	password, err := readPassword()
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
