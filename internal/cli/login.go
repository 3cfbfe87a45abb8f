package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the bearer token",
	Run:   runLogin,
}

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Admin email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Admin password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	if err := c.Client.Auth.Login(context.Background(), loginEmail, loginPassword); err != nil {
		exitError("login failed: %v", err)
	}
	fmt.Println("Logged in.")
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Evict the stored bearer token",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if err := c.Session.Clear(); err != nil {
			exitError("logout failed: %v", err)
		}
		fmt.Println("Logged out.")
	},
}

var localeCmd = &cobra.Command{
	Use:   "locale [az|en|ru]",
	Short: "Show or set the UI locale",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		if len(args) == 0 {
			fmt.Println(c.Session.Locale())
			return
		}

		canonical := session.CanonicalLocale(args[0])
		if canonical != args[0] {
			exitError("unsupported locale %q (want az, en or ru)", args[0])
		}
		if err := c.Session.SetLocale(canonical); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Locale set to %s\n", canonical)
	},
}
