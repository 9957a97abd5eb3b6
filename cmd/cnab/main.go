// Command cnab ingests CNAB files and queries the store ledger from the shell.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/cnab-ledger/cmd/cnab/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
