package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-sources/internal/core/domain"
)

var (
	sourceType  string
	sourceOrder int
)

var (
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	typeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List collection sources in order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a collection source",
	Long: `Add a collection source. If the source is already present it is moved.

Without --order the source is appended. An --order outside the list also
appends.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Remove a collection source",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var moveCmd = &cobra.Command{
	Use:   "move <url> <position>",
	Short: "Move a collection source to a position",
	Long:  `Move a collection source to a zero-based position. Positions past the end append.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

var existsCmd = &cobra.Command{
	Use:   "exists <url>",
	Short: "Report whether a collection source is stored",
	Args:  cobra.ExactArgs(1),
	RunE:  runExists,
}

func init() {
	for _, cmd := range []*cobra.Command{addCmd, removeCmd, moveCmd, existsCmd} {
		cmd.Flags().StringVarP(&sourceType, "type", "t", string(domain.SourceTypeJSON), "source type")
	}
	addCmd.Flags().IntVarP(&sourceOrder, "order", "o", 0, "zero-based insert position (default: append)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(existsCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, err := collectionService()
	if err != nil {
		return err
	}

	sources, err := svc.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}
	printSources(cmd, sources)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, err := collectionService()
	if err != nil {
		return err
	}
	source, err := domain.NewCollectionSource(sourceType, args[0])
	if err != nil {
		return err
	}

	var order *int
	if cmd.Flags().Changed("order") {
		order = &sourceOrder
	}
	if err := svc.Add(context.Background(), source, order); err != nil {
		return fmt.Errorf("failed to add source: %w", err)
	}

	cmd.Printf("Added %s\n", source)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	svc, err := collectionService()
	if err != nil {
		return err
	}
	source, err := domain.NewCollectionSource(sourceType, args[0])
	if err != nil {
		return err
	}

	if err := svc.Remove(context.Background(), source); err != nil {
		return fmt.Errorf("failed to remove source: %w", err)
	}

	cmd.Printf("Removed %s\n", source)
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	svc, err := collectionService()
	if err != nil {
		return err
	}
	source, err := domain.NewCollectionSource(sourceType, args[0])
	if err != nil {
		return err
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", args[1], err)
	}

	if err := svc.Move(context.Background(), source, to); err != nil {
		return fmt.Errorf("failed to move source: %w", err)
	}

	cmd.Printf("Moved %s\n", source)
	return nil
}

func runExists(cmd *cobra.Command, args []string) error {
	svc, err := collectionService()
	if err != nil {
		return err
	}
	source, err := domain.NewCollectionSource(sourceType, args[0])
	if err != nil {
		return err
	}

	ok, err := svc.Exists(context.Background(), source)
	if err != nil {
		return fmt.Errorf("failed to check source: %w", err)
	}

	cmd.Println(strconv.FormatBool(ok))
	return nil
}

// printSources writes one "position  type  url" line per source.
// Styling is applied only when the output is a terminal.
func printSources(cmd *cobra.Command, sources []domain.CollectionSource) {
	if len(sources) == 0 {
		cmd.Println("No collection sources configured.")
		return
	}

	styled := isTerminal(cmd.OutOrStderr())
	for i, s := range sources {
		idx := fmt.Sprintf("%3d", i)
		typ := s.Type.String()
		if styled {
			idx = indexStyle.Render(idx)
			typ = typeStyle.Render(typ)
		}
		cmd.Printf("%s  %s  %s\n", idx, typ, s.URL)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: uintptr->int is safe on 64-bit
}
