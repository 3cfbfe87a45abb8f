package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the local mutation journal",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		entries, err := c.Journal.Recent(journalLimit)
		if err != nil {
			exitError("%v", err)
		}
		if len(entries) == 0 {
			fmt.Println("Journal is empty.")
			return
		}

		for _, e := range entries {
			mark := color.GreenString("ok")
			if !e.OK {
				mark = color.RedString("failed")
			}
			fmt.Printf("%s  %-10s %-16s #%-6d %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Entity, e.Operation, e.TargetID, mark)
			if e.Error != "" {
				fmt.Printf("  %s", e.Error)
			}
			fmt.Println()
		}
	},
}

func init() {
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "Number of entries to show")
}
