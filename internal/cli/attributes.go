package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/models"
)

var attributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "Manage attribute definitions",
}

var (
	attrsStepID int
	attrsPage   int
	attrsSize   int

	attrName      string
	attrSectionID int
	attrValueType int
	attrValuable  bool
	attrPrinted   bool
	attrVisible   bool
	attrImportant bool
	attrActive    bool
)

func init() {
	attributesCmd.PersistentFlags().IntVar(&attrsStepID, "step", 0, "Scope to one step id")

	attributesListCmd.Flags().IntVar(&attrsPage, "page", 1, "Page number")
	attributesListCmd.Flags().IntVar(&attrsSize, "size", 0, "Page size (default from config)")

	for _, c := range []*cobra.Command{attributesCreateCmd, attributesEditCmd} {
		c.Flags().StringVar(&attrName, "name", "", "Attribute name")
		c.Flags().IntVar(&attrSectionID, "section", 0, "Owning section id")
		c.Flags().IntVar(&attrValueType, "value-type", int(models.ValueString), "Value type: 1=string 2=decimal 3=datetime 4=bool")
		c.Flags().BoolVar(&attrValuable, "valuable", false, "Attribute has a predefined value list")
		c.Flags().BoolVar(&attrPrinted, "printed", true, "Included in printed output")
		c.Flags().BoolVar(&attrVisible, "visible", true, "Visible in forms")
		c.Flags().BoolVar(&attrImportant, "important", false, "Required in forms")
		c.Flags().BoolVar(&attrActive, "active", true, "Active flag")
	}

	attributesCmd.AddCommand(attributesListCmd)
	attributesCmd.AddCommand(attributesGetCmd)
	attributesCmd.AddCommand(attributesCreateCmd)
	attributesCmd.AddCommand(attributesEditCmd)
	attributesCmd.AddCommand(attributesToggleCmd)
	attributesCmd.AddCommand(attributesDeleteCmd)
}

var attributesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List attributes with pagination",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		size := attrsSize
		if size <= 0 {
			size = c.Config.DefaultPageSize
		}

		page, err := c.Queries.AttributesPage(context.Background(), api.ListParams{
			PageNumber: attrsPage,
			PageSize:   size,
			StepID:     attrsStepID,
		})
		if err != nil {
			exitError("%v", err)
		}

		if page.Empty() {
			fmt.Println("No attributes found.")
			return
		}
		for _, a := range page.Items {
			fmt.Printf("%4d  %-30s  order %2d  %d values  %s\n", a.AttributeID, a.Name, a.Order, len(a.Values), activeMark(a.IsActive))
		}
		pageFooter(page.PageNumber, page.TotalPages, page.TotalCount, page.HasNextPage)
	},
}

var attributesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one attribute with its values",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		attr, err := c.Queries.Attribute(context.Background(), id)
		if err != nil {
			exitError("%v", err)
		}
		if attr == nil {
			exitError("attribute %d not found", id)
		}

		fmt.Printf("Attribute %d: %s (%s)\n", attr.AttributeID, attr.Name, activeMark(attr.IsActive))
		for _, v := range attr.Values {
			fmt.Printf("  %4d  %s", v.AttributeValueID, v.Display)
			langs := ""
			for _, set := range v.Sets {
				langs += " " + set.Language
			}
			if langs != "" {
				fmt.Printf("  [%s ]", langs)
			}
			fmt.Println()
		}
	},
}

var attributesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an attribute definition",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if attrName == "" {
			exitError("--name is required")
		}
		if attrSectionID <= 0 {
			exitError("--section is required")
		}

		err := c.Queries.CreateAttribute(context.Background(), api.AttributeInput{
			SectionID:   attrSectionID,
			Name:        attrName,
			ValueType:   models.ValueType(attrValueType),
			IsValuable:  attrValuable,
			IsPrinted:   attrPrinted,
			IsVisible:   attrVisible,
			IsImportant: attrImportant,
			IsActive:    attrActive,
		})
		if err != nil {
			exitError("%v", err)
		}
		fmt.Println("Attribute created.")
	},
}

var attributesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace an attribute definition",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if attrName == "" {
			exitError("--name is required")
		}
		if attrSectionID <= 0 {
			exitError("--section is required")
		}

		id := parseID(args[0])
		err := c.Queries.UpdateAttribute(context.Background(), id, api.AttributeInput{
			SectionID:   attrSectionID,
			Name:        attrName,
			ValueType:   models.ValueType(attrValueType),
			IsValuable:  attrValuable,
			IsPrinted:   attrPrinted,
			IsVisible:   attrVisible,
			IsImportant: attrImportant,
			IsActive:    attrActive,
		})
		if err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Attribute %d updated.\n", id)
	},
}

var attributesToggleCmd = &cobra.Command{
	Use:   "toggle <id> <on|off>",
	Short: "Set an attribute's active flag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		active, err := parseOnOff(args[1])
		if err != nil {
			exitError("%v", err)
		}

		if err := c.Queries.ToggleAttributeStatus(context.Background(), id, active); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Attribute %d is now %s.\n", id, activeMark(active))
	},
}

var attributesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an attribute",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		if err := c.Queries.DeleteAttribute(context.Background(), id); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Attribute %d deleted.\n", id)
	},
}
