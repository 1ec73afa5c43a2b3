package cli

import (
	"github.com/spf13/cobra"

	"github.com/prherald/prherald/internal/hooks"
)

func newHooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage shared git hook templates",
	}

	cmd.AddCommand(newHooksInstallCommand())
	return cmd
}

func newHooksInstallCommand() *cobra.Command {
	var (
		force        bool
		templatePath string
	)

	cmd := &cobra.Command{
		Use:   "install [path...]",
		Short: "Install the bundled git hook templates",
		Long: `Register the template directory with git, copy the bundled hook scripts
into it, and reinitialize any repositories found under the given paths so
they pick the hooks up. Existing hooks are only replaced with --force.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return hooks.NewInstaller().Install(cmd.Context(), templatePath, args, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "override matching hooks in existing repositories")
	cmd.Flags().StringVar(&templatePath, "template-path", hooks.DefaultTemplatePath, "where to install the hook templates")

	return cmd
}
