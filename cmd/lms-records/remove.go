package main

import "github.com/spf13/cobra"

var removeCmd = &cobra.Command{
	Use:   "remove GROUP_ID",
	Short: "Remove all lesson records of a group",
	Long:  "Remove all additional materials of a group. GROUP_ID is the first number in the group's admin panel URL.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseGroupID(args[0])
		if err != nil {
			return err
		}
		return newSyncer(cfg).Remove(cmd.Context(), groupID)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
