package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"todoapp/internal/client/api"
	"todoapp/internal/client/config"
)

// App wires the REPL commands to the HTTP API client and holds the
// session state (the currently logged-in user).
type App struct {
	config *config.Config
	client *api.Client
	user   *api.User
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.New(c.ServerAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Todo CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
