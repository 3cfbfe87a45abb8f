package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/api"
)

var resumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "Browse and manage candidate resumes",
}

var (
	resumesPage   int
	resumesSize   int
	resumesSearch string
	resumesStepID int
)

func init() {
	resumesListCmd.Flags().IntVar(&resumesPage, "page", 1, "Page number")
	resumesListCmd.Flags().IntVar(&resumesSize, "size", 0, "Page size (default from config)")
	resumesListCmd.Flags().StringVar(&resumesSearch, "search", "", "Search term")

	resumesGetCmd.Flags().IntVar(&resumesStepID, "step", 0, "Limit the record to a single step")

	resumesCmd.AddCommand(resumesListCmd)
	resumesCmd.AddCommand(resumesGetCmd)
	resumesCmd.AddCommand(resumesDeleteCmd)
	resumesCmd.AddCommand(resumesUploadCmd)
}

var resumesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resumes with pagination",
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		size := resumesSize
		if size <= 0 {
			size = c.Config.DefaultPageSize
		}

		page, err := c.Queries.ResumesPage(context.Background(), api.ListParams{
			PageNumber: resumesPage,
			PageSize:   size,
			Search:     resumesSearch,
		})
		if err != nil {
			exitError("%v", err)
		}

		if page.Empty() {
			fmt.Println("No resumes found.")
			return
		}
		for _, r := range page.Items {
			fmt.Printf("%6d  %-40s  %s\n", r.ResumeID, r.FullName, r.CreatedAt.Format("2006-01-02"))
		}
		pageFooter(page.PageNumber, page.TotalPages, page.TotalCount, page.HasNextPage)
	},
}

var resumesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one resume, optionally scoped to a step",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		resume, err := c.Queries.Resume(context.Background(), id, resumesStepID)
		if err != nil {
			exitError("%v", err)
		}
		if resume == nil {
			exitError("resume %d not found", id)
		}

		fmt.Printf("Resume %d  %s\n", resume.ResumeID, resume.FullName)
		lang := c.Session.Locale()
		for _, step := range resume.Steps {
			fmt.Printf("  %s\n", step.Title(lang))
			for _, sec := range step.Sections {
				fmt.Printf("    - %s\n", sec.Title(lang))
			}
		}
	},
}

var resumesDeleteCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a resume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		if err := c.Queries.DeleteResume(context.Background(), id); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Resume %d deleted.\n", id)
	},
}

var resumesUploadCmd = &cobra.Command{
	Use:   "upload <id> <file>",
	Short: "Attach a document to a resume",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := initContext()
		defer c.Close()

		id := parseID(args[0])
		f, err := os.Open(args[1])
		if err != nil {
			exitError("%v", err)
		}
		defer f.Close()

		name := filepath.Base(args[1])
		if err := c.Queries.UploadResumeDocument(context.Background(), id, name, f); err != nil {
			exitError("%v", err)
		}
		fmt.Printf("Uploaded %s to resume %d.\n", name, id)
	},
}
