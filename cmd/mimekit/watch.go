package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gobeaver/mimekit/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var include, exclude []string

	cmd := &cobra.Command{
		Use:   "watch DIR...",
		Short: "Print the content type of files as they are written",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := watch.New(a.resolver, watch.Include(include...), watch.Exclude(exclude...))
			if err != nil {
				return err
			}
			defer w.Close()

			for _, dir := range args {
				if err := w.Add(dir); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			err = w.Run(ctx, func(ev watch.Event) {
				fmt.Fprintf(out, "%s %s: %s\n", ev.Op, ev.Path, ev.Type)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "Only report files matching these glob patterns")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Skip files matching these glob patterns")

	return cmd
}
