package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s) ", a.userName)
	}
	if a.isLoggedIn() {
		return "(logged in) "
	}
	return ""
}

// Root prints the welcome banner and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to EzyCook CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
