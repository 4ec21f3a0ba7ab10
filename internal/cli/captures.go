package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/framekit/internal/capture"
)

func newCapturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "captures",
		Short: "List recorded transform captures",
		Args:  cobra.NoArgs,
		RunE:  runCaptures,
	}
}

func runCaptures(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store := capture.NewStore()
	if err := store.Attach(capture.Config{DataDir: dataDir}); err != nil {
		return fmt.Errorf("attach capture store: %w", err)
	}
	defer store.Detach()

	samples, err := store.List()
	if err != nil {
		return fmt.Errorf("list captures: %w", err)
	}

	if flags.jsonMode {
		if samples == nil {
			samples = []capture.Sample{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(samples)
	}

	for _, s := range samples {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s->%s  (%g, %g, %g) -> (%g, %g, %g)\n",
			s.CaptureID, s.CreatedAt.Format(time.RFC3339),
			s.FromFrame, s.ToFrame,
			s.InX, s.InY, s.InZ, s.OutX, s.OutY, s.OutZ)
	}
	return nil
}
