package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/query"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Manage the sections of a step",
}

var (
	sectionsStepID    int
	sectionsPage      int
	sectionsSize      int
	sectionsSearch    string
	sectionChangeable bool
	sectionActive     bool
	sectionMoves      []string
)

func init() {
	sectionsCmd.PersistentFlags().IntVar(&sectionsStepID, "step", 0, "Owning step id")

	sectionsListCmd.Flags().IntVar(&sectionsPage, "page", 1, "Page number")
	sectionsListCmd.Flags().IntVar(&sectionsSize, "size", 0, "Page size (default from config)")
	sectionsListCmd.Flags().StringVar(&sectionsSearch, "search", "", "Search term")

	for _, c := range []*cobra.Command{sectionsCreateCmd, sectionsEditCmd} {
		c.Flags().StringVar(&stepTitleAZ, "title-az", "", "Title (Azerbaijani)")
		c.Flags().StringVar(&stepTitleEN, "title-en", "", "Title (English)")
		c.Flags().StringVar(&stepTitleRU, "title-ru", "", "Title (Russian)")
		c.Flags().StringVar(&stepDescAZ, "desc-az", "", "Description (Azerbaijani)")
		c.Flags().StringVar(&stepDescEN, "desc-en", "", "Description (English)")
		c.Flags().StringVar(&stepDescRU, "desc-ru", "", "Description (Russian)")
		c.Flags().BoolVar(&sectionActive, "active", true, "Active flag")
		c.Flags().BoolVar(&sectionChangeable, "changeable", true, "Changeable flag")
	}

	sectionsReorderCmd.Flags().StringArrayVar(&sectionMoves, "move", nil, "Move from:to (repeatable, 1-based positions)")

	sectionsCmd.AddCommand(sectionsListCmd)
	sectionsCmd.AddCommand(sectionsGetCmd)
	sectionsCmd.AddCommand(sectionsCreateCmd)
	sectionsCmd.AddCommand(sectionsEditCmd)
	sectionsCmd.AddCommand(sectionsToggleCmd)
	sectionsCmd.AddCommand(sectionsDeleteCmd)
	sectionsCmd.AddCommand(sectionsReorderCmd)
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections with pagination",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		size := sectionsSize
		if size <= 0 {
			size = c.Config.DefaultPageSize
		}

		page, err := c.Queries.SectionsPage(context.Background(), api.ListParams{
			PageNumber: sectionsPage,
			PageSize:   size,
			Search:     sectionsSearch,
			StepID:     sectionsStepID,
		})
		if err != nil {
			exitError("%v", err)
		}

		if page.Empty() {
			fmt.Println("No sections found.")
			return
		}
		for _, s := range page.Items {
			fmt.Printf("%4d  %-30s  step %d  order %2d  %s\n", s.ID, s.Title(c.Session.Locale()), s.StepID, s.SortOrder, activeMark(s.IsActive))
		}
		pageFooter(page.PageNumber, page.TotalPages, page.TotalCount, page.HasNextPage)
	},
}

var sectionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one section with all translations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		section, err := c.Queries.Section(context.Background(), id)
		if err != nil {
			exitError("%v", err)
		}
		if section == nil {
			exitError("section %d not found", id)
		}

		fmt.Printf("Section %d (step %d, %s, order %d", section.ID, section.StepID, activeMark(section.IsActive), section.SortOrder)
		if !section.IsChangeable {
			fmt.Printf(", locked")
		}
		fmt.Println(")")
		for _, t := range section.Translations {
			fmt.Printf("  [%s] %s", t.Language, t.Title)
			if t.Description != "" {
				fmt.Printf(" - %s", t.Description)
			}
			fmt.Println()
		}
	},
}

var sectionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a section under a step",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if sectionsStepID <= 0 {
			exitError("--step is required")
		}
		ts := collectTranslations()
		if len(ts) == 0 {
			exitError("at least one --title-<lang> is required")
		}

		err := c.Queries.CreateSection(context.Background(), api.SectionInput{
			StepID:       sectionsStepID,
			IsActive:     sectionActive,
			IsChangeable: sectionChangeable,
			Translations: ts,
		})
		if err != nil {
			exitError("%v", err)
		}
		fmt.Println("Section created.")
	},
}

var sectionsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a section",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if sectionsStepID <= 0 {
			exitError("--step is required")
		}
		ts := collectTranslations()
		if len(ts) == 0 {
			exitError("at least one --title-<lang> is required")
		}

		id := parseID(args[0])
		err := c.Queries.UpdateSection(context.Background(), id, api.SectionInput{
			StepID:       sectionsStepID,
			IsActive:     sectionActive,
			IsChangeable: sectionChangeable,
			Translations: ts,
		})
		if err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Section %d updated.\n", id)
	},
}

var sectionsToggleCmd = &cobra.Command{
	Use:   "toggle <id> <on|off>",
	Short: "Set a section's active flag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		active, err := parseOnOff(args[1])
		if err != nil {
			exitError("%v", err)
		}

		if err := c.Queries.ToggleSectionStatus(context.Background(), id, active); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Section %d is now %s.\n", id, activeMark(active))
	},
}

var sectionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a section",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		if err := c.Queries.DeleteSection(context.Background(), id); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Section %d deleted.\n", id)
	},
}

var sectionsReorderCmd = &cobra.Command{
	Use:   "reorder",
	Short: "Reorder the sections of one step",
	Long: `Reorder the sections of one step. Sort order is only meaningful
within a single step, so --step is required.

Examples:
  cvadmin sections reorder --step 5 --move 2:1
  cvadmin sections reorder --step 5 --move 1:3 --move 4:2`,
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if sectionsStepID <= 0 {
			exitError("--step is required")
		}

		ctx := context.Background()
		sections, err := c.Queries.AllSections(ctx, sectionsStepID)
		if err != nil {
			exitError("%v", err)
		}
		if len(sections) == 0 {
			fmt.Println("Nothing to reorder.")
			return
		}

		ids := make([]int, len(sections))
		for i, s := range sections {
			ids[i] = s.ID
		}

		sess := query.NewReorderSession(ids)
		for _, m := range sectionMoves {
			from, to, err := parseMove(m, len(ids))
			if err != nil {
				exitError("%v", err)
			}
			if err := sess.Move(from, to); err != nil {
				exitError("%v", err)
			}
		}

		if !sess.HasChanged() {
			fmt.Println("Order unchanged, nothing to save.")
			return
		}

		err = sess.Save(ctx, func(ctx context.Context, order []int) error {
			return c.Queries.ReorderSections(ctx, sectionsStepID, order)
		})
		if err != nil {
			exitError("%v", err)
		}
		fmt.Println("Sections reordered.")
	},
}
