package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/models"
	"github.com/hrsuite/cvadmin/internal/query"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Manage workflow steps",
}

var (
	stepsContext string
	stepsPage    int
	stepsSize    int

	stepTitleAZ string
	stepTitleEN string
	stepTitleRU string
	stepDescAZ  string
	stepDescEN  string
	stepDescRU  string
	stepActive  bool

	stepsMoves []string
)

func init() {
	stepsCmd.PersistentFlags().StringVarP(&stepsContext, "context", "c", "cv", "Context: cv or vacancy")

	stepsListCmd.Flags().IntVar(&stepsPage, "page", 1, "Page number")
	stepsListCmd.Flags().IntVar(&stepsSize, "size", 0, "Page size (default from config)")

	for _, c := range []*cobra.Command{stepsCreateCmd, stepsEditCmd} {
		c.Flags().StringVar(&stepTitleAZ, "title-az", "", "Title (Azerbaijani)")
		c.Flags().StringVar(&stepTitleEN, "title-en", "", "Title (English)")
		c.Flags().StringVar(&stepTitleRU, "title-ru", "", "Title (Russian)")
		c.Flags().StringVar(&stepDescAZ, "desc-az", "", "Description (Azerbaijani)")
		c.Flags().StringVar(&stepDescEN, "desc-en", "", "Description (English)")
		c.Flags().StringVar(&stepDescRU, "desc-ru", "", "Description (Russian)")
		c.Flags().BoolVar(&stepActive, "active", true, "Active flag")
	}

	stepsReorderCmd.Flags().StringArrayVar(&stepsMoves, "move", nil, "Move from:to (repeatable, 1-based positions)")

	stepsCmd.AddCommand(stepsListCmd)
	stepsCmd.AddCommand(stepsGetCmd)
	stepsCmd.AddCommand(stepsCreateCmd)
	stepsCmd.AddCommand(stepsEditCmd)
	stepsCmd.AddCommand(stepsToggleCmd)
	stepsCmd.AddCommand(stepsDeleteCmd)
	stepsCmd.AddCommand(stepsReorderCmd)
}

func stepsContextType() models.ContextType {
	t, err := models.ParseContextType(stepsContext)
	if err != nil {
		exitError("%v", err)
	}
	return t
}

// collectTranslations builds the translations array from the per-language
// flags, skipping languages without a title.
func collectTranslations() []models.Translation {
	var ts []models.Translation
	add := func(lang, title, desc string) {
		if strings.TrimSpace(title) != "" {
			ts = append(ts, models.Translation{Language: lang, Title: title, Description: desc})
		}
	}
	add(models.LangAZ, stepTitleAZ, stepDescAZ)
	add(models.LangEN, stepTitleEN, stepDescEN)
	add(models.LangRU, stepTitleRU, stepDescRU)
	return ts
}

var stepsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List steps with pagination",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		size := stepsSize
		if size <= 0 {
			size = c.Config.DefaultPageSize
		}

		page, err := c.Queries.StepsPage(context.Background(), api.ListParams{
			PageNumber: stepsPage,
			PageSize:   size,
			Type:       stepsContextType(),
		})
		if err != nil {
			exitError("%v", err)
		}

		if page.Empty() {
			fmt.Println("No steps found.")
			return
		}
		for _, s := range page.Items {
			fmt.Printf("%4d  %-30s  order %2d  %s\n", s.ID, s.Title(c.Session.Locale()), s.SortOrder, activeMark(s.IsActive))
		}
		pageFooter(page.PageNumber, page.TotalPages, page.TotalCount, page.HasNextPage)
	},
}

var stepsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one step with all translations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		step, err := c.Queries.Step(context.Background(), id)
		if err != nil {
			exitError("%v", err)
		}
		if step == nil {
			exitError("step %d not found", id)
		}

		fmt.Printf("Step %d (%s, %s, order %d)\n", step.ID, step.Type, activeMark(step.IsActive), step.SortOrder)
		for _, t := range step.Translations {
			fmt.Printf("  [%s] %s", t.Language, t.Title)
			if t.Description != "" {
				fmt.Printf(" - %s", t.Description)
			}
			fmt.Println()
		}
	},
}

var stepsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a step",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		ts := collectTranslations()
		if len(ts) == 0 {
			exitError("at least one --title-<lang> is required")
		}

		err := c.Queries.CreateStep(context.Background(), api.StepInput{
			Type:         stepsContextType(),
			IsActive:     stepActive,
			Translations: ts,
		})
		if err != nil {
			exitError("%v", err)
		}
		fmt.Println("Step created.")
	},
}

var stepsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a step",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		ts := collectTranslations()
		if len(ts) == 0 {
			exitError("at least one --title-<lang> is required")
		}

		id := parseID(args[0])
		err := c.Queries.UpdateStep(context.Background(), id, api.StepInput{
			Type:         stepsContextType(),
			IsActive:     stepActive,
			Translations: ts,
		})
		if err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Step %d updated.\n", id)
	},
}

var stepsToggleCmd = &cobra.Command{
	Use:   "toggle <id> <on|off>",
	Short: "Set a step's active flag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		active, err := parseOnOff(args[1])
		if err != nil {
			exitError("%v", err)
		}

		if err := c.Queries.ToggleStepStatus(context.Background(), id, active); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Step %d is now %s.\n", id, activeMark(active))
	},
}

var stepsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a step",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		if err := c.Queries.DeleteStep(context.Background(), id); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Step %d deleted.\n", id)
	},
}

var stepsReorderCmd = &cobra.Command{
	Use:   "reorder",
	Short: "Reorder steps of one context",
	Long: `Reorder the steps of one context by applying moves to the current
order and submitting the complete new ordering in one call.

Examples:
  cvadmin steps reorder -c cv --move 3:1
  cvadmin steps reorder -c vacancy --move 1:2 --move 4:3`,
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		ctx := context.Background()
		t := stepsContextType()

		steps, err := c.Queries.AllSteps(ctx, t)
		if err != nil {
			exitError("%v", err)
		}
		if len(steps) == 0 {
			fmt.Println("Nothing to reorder.")
			return
		}

		items := make([]models.StepOrderItem, len(steps))
		for i, s := range steps {
			items[i] = models.StepOrderItem{ID: s.ID, Type: s.Type}
		}

		sess := query.NewReorderSession(items)
		for _, m := range stepsMoves {
			from, to, err := parseMove(m, len(items))
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

		err = sess.Save(ctx, func(ctx context.Context, queue []models.StepOrderItem) error {
			return c.Queries.ReorderSteps(ctx, queue)
		})
		if err != nil {
			exitError("%v", err)
		}
		fmt.Println("Steps reordered.")
	},
}

// parseID parses a positive integer id argument.
func parseID(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		exitError("invalid id %q", s)
	}
	return id
}

// parseOnOff parses the on/off toggle argument.
func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid status %q (want on or off)", s)
	}
}

// parseMove parses a "from:to" move with 1-based positions.
func parseMove(s string, n int) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid move %q (want from:to)", s)
	}
	from, err1 := strconv.Atoi(parts[0])
	to, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || from < 1 || to < 1 || from > n || to > n {
		return 0, 0, fmt.Errorf("invalid move %q (positions are 1..%d)", s, n)
	}
	return from - 1, to - 1, nil
}
