package cli

import (
	"github.com/Zcytxcbyz/projectile/internal/infra/logger"
	"github.com/spf13/cobra"
)

func debugEnabled(cmd *cobra.Command) bool {
	f := cmd.Flag("debug")
	return f != nil && f.Value.String() == "true"
}

// startLogging opens the workspace log file. Without a workspace the
// discard logger stays in place.
func startLogging(cmd *cobra.Command, root string) func() {
	if root == "" {
		return func() {}
	}
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debugEnabled(cmd)})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
