package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lms-records/internal/domain"
	"lms-records/internal/mappers"
	"lms-records/internal/sync"
)

var planInput string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the lessons upload would create, without contacting the LMS",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(inputPath(planInput))
		if err != nil {
			return err
		}
		return printPlan(os.Stdout, sync.Plan(input))
	},
}

func init() {
	planCmd.Flags().StringVarP(&planInput, "input", "i", "", "Path to the lesson list (default from LMS_INPUT or input.txt)")
	rootCmd.AddCommand(planCmd)
}

func printPlan(w io.Writer, lessons []domain.Lesson) error {
	for _, l := range lessons {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", mappers.DeliveryType(l.Link), l.Name, l.Link); err != nil {
			return err
		}
	}
	return nil
}
