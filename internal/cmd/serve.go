package cmd

import (
	"fmt"
	"net/http"
	"time"

	"flowdeck/internal/devserver"
	"github.com/spf13/cobra"
)

var (
	serveAddr    string
	serveSeed    int
	serveLatency time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local demo flow service",
	Long: `Serve runs an in-memory flow service speaking the same REST contract
the dashboard consumes. Useful for trying flowdeck without a real
deployment; --latency makes the progressive reveal visible.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8090", "address to listen on")
	serveCmd.Flags().IntVar(&serveSeed, "seed", 12, "number of demo instances to seed")
	serveCmd.Flags().DurationVar(&serveLatency, "latency", 300*time.Millisecond, "artificial per-request latency")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newStderrLogger(cfg)
	if err != nil {
		return err
	}

	srv := devserver.New(
		devserver.WithLatency(serveLatency),
		devserver.WithLogger(logger),
	)
	srv.Seed(serveSeed)

	fmt.Fprintf(cmd.OutOrStdout(), "Demo flow service on http://%s with %d instances\n", serveAddr, serveSeed)
	return http.ListenAndServe(serveAddr, srv.Handler())
}
