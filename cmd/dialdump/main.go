// Command dialdump loads a YAML scene fixture and inspects the dial values,
// value operations and dependency graph of its parameters.
//
//	dialdump describe  --scene andy.yaml --actor hip --parm bend
//	dialdump range     --scene andy.yaml --actor hip --parm bend --first 0 --last 29
//	dialdump graph     --scene andy.yaml
//	dialdump check     scenes/*.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
