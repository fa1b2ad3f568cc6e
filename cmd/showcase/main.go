// Command showcase lists and runs the solidstream demonstrations.
//
//	showcase list
//	showcase run distinct groupby
//	showcase all
//	showcase solid lsp
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(nil).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
