package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the source list whenever it changes",
	Long: `Print the current source list, then print it again every time another
process rewrites the storage file. Stops on Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchSources(ctx, cmd)
}

func watchSources(ctx context.Context, cmd *cobra.Command) error {
	svc, err := collectionService()
	if err != nil {
		return err
	}
	w, err := storeWatcher()
	if err != nil {
		return err
	}

	show := func() error {
		sources, err := svc.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list sources: %w", err)
		}
		printSources(cmd, sources)
		return nil
	}
	if err := show(); err != nil {
		return err
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", svc.Path())
	return w.Watch(ctx, func() {
		cmd.Println("---")
		if err := show(); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	})
}
