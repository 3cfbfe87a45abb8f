package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/api"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage administrative users",
}

var (
	usersPage   int
	usersSize   int
	usersSearch string

	userName    string
	userSurname string
	userFinCode string
	userEmail   string
	userRole    string
	userStatus  bool
)

func init() {
	usersListCmd.Flags().IntVar(&usersPage, "page", 1, "Page number")
	usersListCmd.Flags().IntVar(&usersSize, "size", 0, "Page size (default from config)")
	usersListCmd.Flags().StringVar(&usersSearch, "search", "", "Search term")

	for _, c := range []*cobra.Command{usersCreateCmd, usersEditCmd} {
		c.Flags().StringVar(&userName, "name", "", "First name")
		c.Flags().StringVar(&userSurname, "surname", "", "Surname")
		c.Flags().StringVar(&userFinCode, "fin", "", "FIN code")
		c.Flags().StringVar(&userEmail, "email", "", "Email address")
		c.Flags().StringVar(&userRole, "role", "", "Role")
		c.Flags().BoolVar(&userStatus, "active", true, "Status flag")
	}
	usersCreateCmd.MarkFlagRequired("name")
	usersCreateCmd.MarkFlagRequired("email")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersEditCmd)
	usersCmd.AddCommand(usersToggleCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}

func userInput() api.UserInput {
	return api.UserInput{
		Name:    userName,
		Surname: userSurname,
		FinCode: userFinCode,
		Email:   userEmail,
		Role:    userRole,
		Status:  userStatus,
	}
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users with pagination",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		size := usersSize
		if size <= 0 {
			size = c.Config.DefaultPageSize
		}

		page, err := c.Queries.UsersPage(context.Background(), api.ListParams{
			PageNumber: usersPage,
			PageSize:   size,
			Search:     usersSearch,
		})
		if err != nil {
			exitError("%v", err)
		}

		if page.Empty() {
			fmt.Println("No users found.")
			return
		}
		for _, u := range page.Items {
			fmt.Printf("%4d  %-25s  %-30s  %-10s  %s\n", u.ID, u.Name+" "+u.Surname, u.Email, u.Role, activeMark(u.Status))
		}
		pageFooter(page.PageNumber, page.TotalPages, page.TotalCount, page.HasNextPage)
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		u, err := c.Queries.User(context.Background(), id)
		if err != nil {
			exitError("%v", err)
		}
		if u == nil {
			exitError("user %d not found", id)
		}

		fmt.Printf("User %d\n", u.ID)
		fmt.Printf("  Name:   %s %s\n", u.Name, u.Surname)
		fmt.Printf("  FIN:    %s\n", u.FinCode)
		fmt.Printf("  Email:  %s\n", u.Email)
		fmt.Printf("  Role:   %s\n", u.Role)
		fmt.Printf("  Status: %s\n", activeMark(u.Status))
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if err := c.Queries.CreateUser(context.Background(), userInput()); err != nil {
			exitError("%v", err)
		}
		fmt.Println("User created.")
	},
}

var usersEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a user's fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		if err := c.Queries.UpdateUser(context.Background(), id, userInput()); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("User %d updated.\n", id)
	},
}

var usersToggleCmd = &cobra.Command{
	Use:   "toggle <id> <on|off>",
	Short: "Activate or deactivate a user",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		active, err := parseOnOff(args[1])
		if err != nil {
			exitError("%v", err)
		}
		if err := c.Queries.ToggleUserStatus(context.Background(), id, active); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("User %d is now %s.\n", id, activeMark(active))
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		if err := c.Queries.DeleteUser(context.Background(), id); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("User %d deleted.\n", id)
	},
}
