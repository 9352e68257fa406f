package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Personal vocabulary list commands",
	}

	cmd.AddCommand(newVocabListCmd())
	cmd.AddCommand(newVocabAddCmd())
	cmd.AddCommand(newVocabMasterCmd())
	cmd.AddCommand(newVocabRemoveCmd())

	return cmd
}

func newVocabListCmd() *cobra.Command {
	var difficulty string
	var mastered, unmastered bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your saved words",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if difficulty != "" {
				q.Set("difficulty", difficulty)
			}
			if mastered {
				q.Set("mastered", "true")
			} else if unmastered {
				q.Set("mastered", "false")
			}

			path := "/api/v1/vocabulary"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result VocabWordList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Filter by difficulty: easy, medium, hard")
	cmd.Flags().BoolVar(&mastered, "mastered", false, "Only mastered words")
	cmd.Flags().BoolVar(&unmastered, "unmastered", false, "Only unmastered words")

	return cmd
}

func newVocabAddCmd() *cobra.Command {
	var definition, example, difficulty string

	cmd := &cobra.Command{
		Use:   "add <word>",
		Short: "Add a word to your list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"word":       args[0],
				"definition": definition,
				"example":    example,
				"difficulty": difficulty,
			}

			var result VocabWord
			if err := client.Post("/api/v1/vocabulary", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&definition, "definition", "", "Definition text")
	cmd.Flags().StringVar(&example, "example", "", "Example sentence")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")

	return cmd
}

func newVocabMasterCmd() *cobra.Command {
	var unmaster bool

	cmd := &cobra.Command{
		Use:   "master <id>",
		Short: "Mark a word as mastered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"mastered": !unmaster}

			var result VocabWord
			if err := client.Patch("/api/v1/vocabulary/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unmaster, "undo", false, "Mark as not mastered")

	return cmd
}

func newVocabRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a word from your list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/vocabulary/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Removed " + args[0])
			return nil
		},
	}
}
