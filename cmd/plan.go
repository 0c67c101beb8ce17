package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/skills"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/studyplan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the recommended study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prof, err := profile.Load(context.Background(), st.SnapshotRepo(), nil)
		if err != nil {
			return fmt.Errorf("load learner state: %w", err)
		}

		p := studyplan.Generate(prof.Mastery, prof.Reviews, prof.LessonsCompleted(), time.Now())

		fmt.Println(p.OverallMessage)
		fmt.Println()

		printRecs("Today", p.Today)
		if len(p.ThisWeek) > 0 {
			fmt.Println()
			printRecs("This week", p.ThisWeek)
		}

		if p.DueCards > 0 {
			fmt.Printf("\n%d flashcards due — run 'greprep study'\n", p.DueCards)
		}
		if len(p.FocusAreas) > 0 {
			var names []string
			for _, c := range p.FocusAreas {
				names = append(names, skills.CategoryDisplayName(c))
			}
			fmt.Println("Focus areas:", strings.Join(names, ", "))
		}
		return nil
	},
}

func printRecs(heading string, recs []studyplan.Recommendation) {
	fmt.Println(heading)
	fmt.Println(strings.Repeat("─", 60))
	if len(recs) == 0 {
		fmt.Println("  nothing queued")
		return
	}
	for _, r := range recs {
		fmt.Printf("  %-10s  %-42s  ~%d min\n", r.Type, r.Description, r.EstimatedMinutes)
	}
}
