package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codecritic/src/catalog"
	"codecritic/src/model"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("codecritic %s\n", h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) checkersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkers",
		Short: "List available bug checkers",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available checkers (run in this order):")
			fmt.Println("  - syntax   : Missing terminators, unmatched braces, unterminated constructs")
			fmt.Println("  - runtime  : Undefined variables, division by zero, null dereference, leaks")
			fmt.Println("  - logical  : Infinite loops, unreachable code")
			fmt.Println("  - security : SQL injection, cross-site scripting")
		},
	}
}

func (h *Handler) practicesCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "practices",
		Short: "Print the best-practice list for a language",
		Run: func(cmd *cobra.Command, args []string) {
			practices := catalog.Default().BestPracticesFor(model.ParseLanguage(language))
			for _, p := range practices {
				fmt.Printf("  - %s\n", p)
			}
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "javascript", "Source language")

	return cmd
}
