package cmd

import (
	"fmt"
	"sort"
	"sync"
	"text/tabwriter"

	"flowdeck/internal/flow"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the running flow instances and exit",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newStderrLogger(cfg)
	if err != nil {
		return err
	}
	svc := newService(cfg, logger)

	ctx := cmd.Context()
	names, err := svc.ListInstanceNames(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No flow instances are running.")
		return nil
	}

	// Same fan-out as the page: one detail fetch per name, concurrently.
	// Failed rows are reported instead of silently dropped.
	type result struct {
		inst flow.Instance
		err  error
		name string
	}

	results := make([]result, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			inst, err := svc.GetInstanceDetails(ctx, name)
			results[i] = result{inst: inst, err: err, name: name}
		}(i, name)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].name < results[j].name })

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPIPELINE")
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(w, "%s\t(failed to load: %v)\n", r.name, r.err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", r.inst.Name, r.inst.Pipeline)
	}
	return w.Flush()
}
