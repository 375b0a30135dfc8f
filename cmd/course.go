package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/welltegra/welllab/internal/ui/components"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Browse the curriculum",
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules and lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		for i, m := range catalog.Modules() {
			fmt.Printf("%d. %s  [%s]\n", i+1, m.Title, m.ID)
			if m.Objective != "" {
				fmt.Printf("   %s\n", m.Objective)
			}
			for _, l := range m.Lessons {
				lab := ""
				if l.Lab != "" {
					lab = "  lab: " + l.Lab
				}
				fmt.Printf("   - %-36s %-22s %s%s\n", l.Title, l.ID, l.Duration, lab)
			}
			fmt.Println()
		}
		fmt.Printf("%d lessons in total.\n", len(catalog.AllLessonIDs()))
		return nil
	},
}

var courseShowCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Print a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		l, ok := catalog.Lesson(args[0])
		if !ok {
			return fmt.Errorf("lesson %q not found (see welllab course list)", args[0])
		}
		fmt.Println(components.Markdown("# "+l.Title+"\n\n"+strings.TrimSpace(l.Content), 80))
		return nil
	},
}

func init() {
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseShowCmd)
}
