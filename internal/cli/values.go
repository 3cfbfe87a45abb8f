package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/query"
)

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Manage attribute values",
}

var (
	valuesAttrID int
	valueLangs   []string
	valueTexts   []string
)

func init() {
	valuesCmd.PersistentFlags().IntVar(&valuesAttrID, "attribute", 0, "Owning attribute id")

	valuesAddCmd.Flags().StringArrayVar(&valueLangs, "lang", nil, "Language of the value (repeatable, paired with --value)")
	valuesAddCmd.Flags().StringArrayVar(&valueTexts, "value", nil, "Value text (repeatable, paired with --lang)")

	valuesCmd.AddCommand(valuesListCmd)
	valuesCmd.AddCommand(valuesAddCmd)
	valuesCmd.AddCommand(valuesDeleteCmd)
}

var valuesListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the values of an attribute",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if valuesAttrID <= 0 {
			exitError("--attribute is required")
		}

		values, err := c.Queries.AttributeValues(context.Background(), valuesAttrID)
		if err != nil {
			exitError("%v", err)
		}
		if len(values) == 0 {
			fmt.Println("No values yet.")
			return
		}
		for _, v := range values {
			fmt.Printf("%4d  %s\n", v.AttributeValueID, v.Display)
			for _, set := range v.Sets {
				fmt.Printf("        [%s] %s\n", set.Language, set.StringValue)
			}
		}
	},
}

var valuesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add language-scoped values to an attribute",
	Long: `Add one value per language to an attribute. Each --lang/--value pair
is submitted as its own create call; the server decides whether a pair
creates a new value or attaches another language projection to an
existing one.

Examples:
  cvadmin values add --attribute 12 --lang en --value "Senior"
  cvadmin values add --attribute 12 --lang en --value "Senior" --lang az --value "Böyük"`,
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if valuesAttrID <= 0 {
			exitError("--attribute is required")
		}
		if len(valueLangs) == 0 || len(valueLangs) != len(valueTexts) {
			exitError("--lang and --value must be given in pairs")
		}

		var drafts query.DraftList
		for i, lang := range valueLangs {
			if err := drafts.Add(lang, valueTexts[i]); err != nil {
				exitError("%v", err)
			}
		}

		ctx := context.Background()
		if err := c.Queries.CommitDrafts(ctx, valuesAttrID, &drafts); err != nil {
			// Uncommitted drafts stay in the list; report how far we got.
			exitError("%d value(s) not saved: %v", drafts.Len(), err)
		}
		fmt.Printf("Added %d value(s) to attribute %d.\n", len(valueLangs), valuesAttrID)
	},
}

var valuesDeleteCmd = &cobra.Command{
	Use:   "rm <value-id>",
	Short: "Delete a value with all its language projections",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		if err := c.Queries.DeleteValue(context.Background(), id); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Value %d deleted.\n", id)
	},
}
