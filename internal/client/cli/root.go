package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if identity := a.session.Identity(); identity != nil {
		return fmt.Sprintf("(%s)", identity.Email)
	}
	return "(guest)"
}

// Root prints the welcome banner and hands control to the command loop.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to UniResource Hub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
