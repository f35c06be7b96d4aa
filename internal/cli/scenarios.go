package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func scenariosCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "scenarios",
		Short: "Manage scenarios",
	}
	c.AddCommand(scenariosListCmd())
	return c
}

func scenariosListCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "list",
		Short: "List scenarios in the workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.scenarios.ListScenarios(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no scenarios)")
				return nil
			}
			for _, r := range refs {
				fmt.Fprintf(out, "- %s\t%s\n", r.Name, r.Path)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
