package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Zcytxcbyz/projectile/internal/infra/fsworkspace"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a workspace with projectile.yaml and a demo scenario",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid workspace path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			fmt.Fprintln(cmd.OutOrStdout(), "Try: projectile run -s demo")
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return c
}
