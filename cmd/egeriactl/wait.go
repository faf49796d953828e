package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the metadata platform to be ready",
	Long: `Wait for the OMAG server platform to be ready by polling its origin
endpoint.

This command will repeatedly check the platform until it responds
successfully or the maximum number of retries is reached.

Example:
  egeriactl wait
  egeriactl wait --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		retries, _ := cmd.Flags().GetInt("retries")

		cfg, err := loadConfig(cmd)
		if err == nil {
			var client *rest.Client
			client, err = newRESTClient(cfg, zap.NewNop())
			if err == nil {
				err = waitForPlatform(cmd.Context(), client, cfg.UserID, retries, time.Second)
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Platform did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

// origin is satisfied by rest.Client
type origin interface {
	PlatformOrigin(ctx context.Context, userID string) (string, error)
}

func waitForPlatform(ctx context.Context, platform origin, userID string, retries int, interval time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if retries < 1 {
		retries = 1
	}
	fmt.Println("Waiting for the platform to be ready...")

	var lastErr error
	for i := 0; i < retries; i++ {
		o, err := platform.PlatformOrigin(ctx, userID)
		if err == nil {
			fmt.Println()
			fmt.Printf("Platform is ready: %s\n", o)
			return nil
		}
		lastErr = err

		fmt.Print(".")
		select {
		case <-ctx.Done():
			fmt.Println()
			return ctx.Err()
		case <-time.After(interval):
		}
	}

	fmt.Println()
	return fmt.Errorf("platform is not ready after %d attempts: %w", retries, lastErr)
}
