package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"patri/internal/adapters/console"
	"patri/internal/theme"
	"patri/logging"
	"patri/version"
)

// RunCmd starts the interactive intake session
type RunCmd struct{}

// Run executes the session: the loop goroutine owns all session state, the
// bus consumer feeds it, and the console reader feeds the bus. The process
// exits on Ctrl+C, SIGTERM, or end of input.
func (r *RunCmd) Run(cli *CLI) error {
	c := cli.Container

	fmt.Println(theme.AppNameStyle.Render("patri") + " " + theme.VersionStyle.Render(version.Info()))
	fmt.Println(theme.TaglineStyle.Render(version.Tagline))
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := c.Inbox.Events(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Loop.Run(gctx)
	})

	g.Go(func() error {
		for ev := range events {
			ev := ev
			c.Loop.Post(func() {
				// gctx so in-flight collaborator calls observe shutdown
				c.Dispatcher.Dispatch(gctx, ev)
			})
		}
		return nil
	})

	g.Go(func() error {
		// End of input ends the session
		defer cancel()
		reader := console.NewReader(os.Stdin, os.Stdout, c.OperatorID, c.Inbox.Publish)
		return reader.Run(gctx)
	})

	err = g.Wait()
	c.Debouncer.StopAll()
	logging.Logger.Info("Session stopped")

	if err != nil && err != context.Canceled {
		return err
	}
	return nil
}
