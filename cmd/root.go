package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "resx",
		Short:         "resx: donation-exchange marketplace from the terminal",
		Long:          "resx is a terminal client for the waste-to-resource exchange: donors list items with photos, recipients browse and claim them, and both sides chat about a listing.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newItemsCmd(app),
		newInboxCmd(app),
		newChatCmd(app),
		newNotificationsCmd(app),
		newAdminCmd(app),
	)

	return rootCmd
}
