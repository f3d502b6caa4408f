package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <doi>",
	Short: "Resolve a DOI via CrossRef",
	Long: `Look a DOI up on CrossRef and print the publication metadata.

Examples:
  zc resolve 10.1038/s41586-020-2649-2
  zc resolve https://doi.org/10.1055/s-0043-1767752 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	resolver := newResolver(cfg)

	rec, err := resolver.Resolve(context.Background(), args[0])
	if err != nil {
		exitWithError(ExitNotFound, "resolving %s: %v", args[0], err)
	}

	if humanOutput {
		fmt.Printf("%s\n", rec.Title)
		if len(rec.Authors) > 0 {
			fmt.Printf("  %s\n", strings.Join(rec.Authors, "; "))
		}
		if rec.Journal != "" {
			fmt.Printf("  %s (%d)\n", rec.Journal, rec.Year)
		} else if rec.Year > 0 {
			fmt.Printf("  (%d)\n", rec.Year)
		}
		fmt.Printf("  doi:%s\n", rec.DOI)
		return
	}
	outputJSON(rec)
}
