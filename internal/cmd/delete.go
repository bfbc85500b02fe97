package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a flow instance after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newStderrLogger(cfg)
	if err != nil {
		return err
	}
	svc := newService(cfg, logger)

	name := args[0]

	if !deleteYes {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete flow instance %q? [y/N] ", name)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := svc.DeleteInstance(cmd.Context(), name); err != nil {
		return fmt.Errorf("could not delete flow instance: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", name)
	return nil
}
