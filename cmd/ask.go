package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/llm"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/ui/components"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the advisor a one-shot question",
}

// withAdvisor opens the store, builds an advisor and runs fn under a fresh
// session. Advisor errors are reported the way the TUI reports them.
func withAdvisor(cmd *cobra.Command, action string, fn func(ctx context.Context, adv *advisor.Service) (string, error)) error {
	logger, err := newLogger(cmd, false)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	adv, err := newAdvisor(cmd, st, logger)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	ctx := llm.WithSession(cmd.Context(), llm.NewSessionID())
	md, err := fn(ctx, adv)
	if err != nil {
		logger.Warn("advisor request failed", zap.String("action", action), zap.Error(err))
		return errors.New(screen.FailureText(action, err))
	}
	fmt.Println(components.Markdown(md, 80))
	return nil
}

var askCareerCmd = &cobra.Command{
	Use:   "career",
	Short: "Map a career path into well engineering",
	RunE: func(cmd *cobra.Command, args []string) error {
		interests, _ := cmd.Flags().GetString("interests")
		background, _ := cmd.Flags().GetString("background")
		return withAdvisor(cmd, "map a career path", func(ctx context.Context, adv *advisor.Service) (string, error) {
			p, err := adv.CareerPath(ctx, interests, background)
			if err != nil {
				return "", err
			}
			return p.Markdown(), nil
		})
	},
}

var askBridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Explain a drilling concept through a familiar domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		concept, _ := cmd.Flags().GetString("concept")
		hobby, _ := cmd.Flags().GetString("hobby")
		if _, ok := advisor.LookupConcept(concept); !ok {
			return fmt.Errorf("unknown concept %q (choose from: %s)", concept, conceptIDs())
		}
		return withAdvisor(cmd, "translate the concept", func(ctx context.Context, adv *advisor.Service) (string, error) {
			tr, err := adv.TranslateConcept(ctx, concept, hobby)
			if err != nil {
				return "", err
			}
			return tr.Markdown(), nil
		})
	},
}

var askAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Score how well a work history transfers to well engineering",
	RunE: func(cmd *cobra.Command, args []string) error {
		employment, _ := cmd.Flags().GetString("employment")
		strengths, _ := cmd.Flags().GetString("strengths")
		weaknesses, _ := cmd.Flags().GetString("weaknesses")
		return withAdvisor(cmd, "audit your background", func(ctx context.Context, adv *advisor.Service) (string, error) {
			a, err := adv.AnalyzeBackground(ctx, employment, strengths, weaknesses)
			if err != nil {
				return "", err
			}
			return a.Markdown(), nil
		})
	},
}

var askQuizCmd = &cobra.Command{
	Use:   "quiz <lesson-id>",
	Short: "Generate a knowledge check for a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showAnswers, _ := cmd.Flags().GetBool("answers")
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		lesson, ok := catalog.Lesson(args[0])
		if !ok {
			return fmt.Errorf("lesson %q not found (see welllab course list)", args[0])
		}
		return withAdvisor(cmd, "generate the knowledge check", func(ctx context.Context, adv *advisor.Service) (string, error) {
			qs, err := adv.KnowledgeCheck(ctx, lesson.Title, lesson.Content)
			if err != nil {
				return "", err
			}
			var b strings.Builder
			fmt.Fprintf(&b, "# %s: knowledge check\n\n", lesson.Title)
			for i, q := range qs {
				fmt.Fprintf(&b, "**%d. %s**\n\n", i+1, q.Prompt)
				for j, opt := range q.Options {
					mark := ""
					if showAnswers && j == q.CorrectIndex {
						mark = " ✓"
					}
					fmt.Fprintf(&b, "- %c) %s%s\n", 'A'+j, opt, mark)
				}
				if showAnswers && q.Explanation != "" {
					fmt.Fprintf(&b, "\n_%s_\n", q.Explanation)
				}
				b.WriteString("\n")
			}
			return b.String(), nil
		})
	},
}

func conceptIDs() string {
	ids := make([]string, len(advisor.Concepts))
	for i, c := range advisor.Concepts {
		ids[i] = c.ID
	}
	return strings.Join(ids, ", ")
}

func init() {
	askCareerCmd.Flags().String("interests", "", "What draws you to the industry")
	askCareerCmd.Flags().String("background", "", "Your current or past occupation")

	askBridgeCmd.Flags().String("concept", "hydrostatics", "Concept id or label")
	askBridgeCmd.Flags().String("hobby", "", "A hobby or field you know well")

	askAuditCmd.Flags().String("employment", "", "Employment history")
	askAuditCmd.Flags().String("strengths", "", "Key strengths")
	askAuditCmd.Flags().String("weaknesses", "", "Known weaknesses (optional)")

	askQuizCmd.Flags().Bool("answers", false, "Show correct answers and explanations")

	askCmd.AddCommand(askCareerCmd)
	askCmd.AddCommand(askBridgeCmd)
	askCmd.AddCommand(askAuditCmd)
	askCmd.AddCommand(askQuizCmd)
}
