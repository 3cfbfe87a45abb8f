// Package cli implements the command-line interface of cvadmin.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/api"
	"github.com/hrsuite/cvadmin/internal/config"
	"github.com/hrsuite/cvadmin/internal/journal"
	"github.com/hrsuite/cvadmin/internal/logger"
	"github.com/hrsuite/cvadmin/internal/query"
	"github.com/hrsuite/cvadmin/internal/session"
)

// cmdContext holds common resources for CLI commands.
type cmdContext struct {
	Config  *config.Config
	Session *session.Session
	Client  *api.Client
	Queries *query.Queries
	Journal *journal.Journal
	Log     *logrus.Logger
}

// Close releases resources held by cmdContext.
func (c *cmdContext) Close() {
	if c.Journal != nil {
		c.Journal.Close()
	}
}

// initContext loads config, session, journal and wires the query layer.
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	logFile := ""
	if cfg.LogToFile {
		logFile = cfg.LogPath()
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, File: logFile, Pretty: true})

	sess, err := session.Load(cfg.SessionPath())
	if err != nil {
		exitError("%v", err)
	}

	jnl, err := journal.Open(cfg.JournalPath(), log)
	if err != nil {
		exitError("failed to open journal: %v", err)
	}

	client := api.NewClient(cfg.BaseURL, sess, log)
	queries := query.New(query.NewBackend(client), query.Options{
		Notifier: consoleNotifier{},
		Recorder: jnl,
		Logger:   log,
	})

	return &cmdContext{
		Config:  cfg,
		Session: sess,
		Client:  client,
		Queries: queries,
		Journal: jnl,
		Log:     log,
	}
}

// consoleNotifier surfaces mutation failures on stderr in red.
type consoleNotifier struct{}

func (consoleNotifier) Notify(message string) {
	color.New(color.FgRed).Fprintln(os.Stderr, message)
}

var rootCmd = &cobra.Command{
	Use:   "cvadmin",
	Short: "Admin panel for the CV/vacancy backend",
	Long: `cvadmin manages the multilingual (az/en/ru) CV and vacancy data model:
workflow steps, their sections, attribute definitions and attribute
values, plus submitted resumes, vacancies and administrative users.

All reads go through a shared request cache; every write invalidates the
affected entity families so the next read refetches fresh data.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(localeCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(attributesCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(resumesCmd)
	rootCmd.AddCommand(vacanciesCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(journalCmd)
}

// exitError prints an error and exits.
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// activeMark renders an active flag as a colored marker.
func activeMark(active bool) string {
	if active {
		return color.GreenString("active")
	}
	return color.New(color.Faint).Sprint("inactive")
}

// pageFooter prints the pagination line under a listed page.
func pageFooter(pageNumber, totalPages, totalCount int, hasNext bool) {
	next := ""
	if hasNext {
		next = " (more available)"
	}
	if totalPages > 0 {
		fmt.Printf("page %d/%d, %d total%s\n", pageNumber, totalPages, totalCount, next)
		return
	}
	fmt.Printf("page %d%s\n", pageNumber, next)
}
