package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/framekit/pkg/spatial"
)

// quatResult is the JSON shape printed in --json mode.
type quatResult struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

func newQuatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quat X Y Z W",
		Short: "Normalize quaternion components into a unit quaternion",
		Long: "Run checked unit-quaternion construction on the four components and\n" +
			"print the normalized result, or the failure condition for invalid input.",
		Args: cobra.ExactArgs(4),
		RunE: runQuat,
	}
}

func runQuat(cmd *cobra.Command, args []string) error {
	comps, err := parseFloats(args)
	if err != nil {
		return err
	}

	q, err := spatial.NewUnitQuat[spatial.World](comps[0], comps[1], comps[2], comps[3])
	if err != nil {
		return fmt.Errorf("normalize quaternion: %w", err)
	}

	if flags.jsonMode {
		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(quatResult{X: q.X, Y: q.Y, Z: q.Z, W: q.W})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "(%g, %g, %g, %g)\n", q.X, q.Y, q.Z, q.W)
	return nil
}
