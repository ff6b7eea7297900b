package main

import "github.com/spf13/cobra"

var uploadInput string

var uploadCmd = &cobra.Command{
	Use:   "upload GROUP_ID",
	Short: "Upload lesson records for a group from the input file",
	Long: `Upload lesson records into the LMS for a group.

The input file has tech skills and soft skills lessons separated by a blank
line. Each lesson is a tab-separated line with the lesson's name and a link to
its record; several links may be separated by spaces.

GROUP_ID is the first number in the group's admin panel URL.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseGroupID(args[0])
		if err != nil {
			return err
		}
		input, err := readInput(inputPath(uploadInput))
		if err != nil {
			return err
		}
		return newSyncer(cfg).Upload(cmd.Context(), groupID, input)
	},
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadInput, "input", "i", "", "Path to the lesson list (default from LMS_INPUT or input.txt)")
	rootCmd.AddCommand(uploadCmd)
}

func inputPath(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.InputPath
}
