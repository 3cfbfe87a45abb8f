package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/api"
)

var vacanciesCmd = &cobra.Command{
	Use:   "vacancies",
	Short: "Browse and manage vacancies",
}

var (
	vacanciesPage   int
	vacanciesSize   int
	vacanciesSearch string
)

func init() {
	vacanciesListCmd.Flags().IntVar(&vacanciesPage, "page", 1, "Page number")
	vacanciesListCmd.Flags().IntVar(&vacanciesSize, "size", 0, "Page size (default from config)")
	vacanciesListCmd.Flags().StringVar(&vacanciesSearch, "search", "", "Search term")

	vacanciesCmd.AddCommand(vacanciesListCmd)
	vacanciesCmd.AddCommand(vacanciesGetCmd)
	vacanciesCmd.AddCommand(vacanciesToggleCmd)
	vacanciesCmd.AddCommand(vacanciesDeleteCmd)
}

var vacanciesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vacancies with pagination",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		size := vacanciesSize
		if size <= 0 {
			size = c.Config.DefaultPageSize
		}

		page, err := c.Queries.VacanciesPage(context.Background(), api.ListParams{
			PageNumber: vacanciesPage,
			PageSize:   size,
			Search:     vacanciesSearch,
		})
		if err != nil {
			exitError("%v", err)
		}

		if page.Empty() {
			fmt.Println("No vacancies found.")
			return
		}
		for _, v := range page.Items {
			fmt.Printf("%6d  %-40s  %s\n", v.VacancyID, v.Title, activeMark(v.IsActive))
		}
		pageFooter(page.PageNumber, page.TotalPages, page.TotalCount, page.HasNextPage)
	},
}

var vacanciesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one vacancy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		v, err := c.Queries.Vacancy(context.Background(), id)
		if err != nil {
			exitError("%v", err)
		}
		if v == nil {
			exitError("vacancy %d not found", id)
		}

		fmt.Printf("Vacancy %d  %s  %s\n", v.VacancyID, v.Title, activeMark(v.IsActive))
		lang := c.Session.Locale()
		for _, step := range v.Steps {
			fmt.Printf("  %s\n", step.Title(lang))
		}
	},
}

var vacanciesToggleCmd = &cobra.Command{
	Use:   "toggle <id> <on|off>",
	Short: "Activate or deactivate a vacancy",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		active, err := parseOnOff(args[1])
		if err != nil {
			exitError("%v", err)
		}
		if err := c.Queries.ToggleVacancyStatus(context.Background(), id, active); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Vacancy %d is now %s.\n", id, activeMark(active))
	},
}

var vacanciesDeleteCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a vacancy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		if err := c.Queries.DeleteVacancy(context.Background(), id); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Vacancy %d deleted.\n", id)
	},
}
