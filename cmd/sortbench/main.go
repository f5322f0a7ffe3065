// Command sortbench times the partitioning strategies of package sort on
// generated inputs and verifies every result.
//
//	sortbench run --strategy bucket,quad-pivot --size 1000,1000000 --dist random
//	sortbench run --config plan.toml
//	sortbench list
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd, logger := newRootCommand()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		sig := <-sc
		logger().Warn("received signal to exit", zap.Stringer("signal", sig))
		cancel()
		fmt.Fprintln(os.Stderr, "stopping after the current run, press ^C again to force exit")
		<-sc
		os.Exit(1)
	}()

	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		logger().Error("sortbench failed", zap.Error(err))
		os.Exit(1) // nolint:gocritic
	}
}
