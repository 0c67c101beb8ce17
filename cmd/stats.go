package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aeroSapphire/greprep/internal/cluster"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/skills"
	"github.com/aeroSapphire/greprep/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress",
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
		now := time.Now()

		fmt.Println("Skills")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-14s  %-32s  %-11s  %5s  %7s\n", "ID", "Skill", "Level", "Eff.", "Seen")
		practiced := 0
		for _, sk := range skills.All() {
			m := prof.Mastery.GetMastery(sk.ID)
			if m.QuestionsSeen == 0 {
				fmt.Printf("%-14s  %-32s  %-11s  %5s  %7s\n", sk.ID, sk.Name, "new", "-", "-")
				continue
			}
			practiced++
			fmt.Printf("%-14s  %-32s  %-11s  %4.0f%%  %3d/%-3d\n",
				sk.ID, sk.Name, m.Level,
				prof.Mastery.EffectiveMastery(sk.ID, now)*100,
				m.CorrectCount, m.QuestionsSeen)
		}

		fmt.Println()
		fmt.Println("Word clusters")
		fmt.Println(strings.Repeat("─", 72))
		for _, m := range prof.Clusters.AllMasteries(now) {
			c, err := cluster.Get(m.ClusterID)
			if err != nil {
				continue
			}
			fmt.Printf("%-14s  %-32s  %-10s  %4.0f%%\n",
				c.ID, c.Name, cluster.MasteryLabel(m.Overall), m.Overall*100)
		}

		if pairs := prof.Clusters.Matrix().MostConfusedPairs(5); len(pairs) > 0 {
			fmt.Println()
			fmt.Println("Most confused words")
			for _, p := range pairs {
				fmt.Printf("  %s / %s  ×%d\n", p.WordA, p.WordB, p.Count)
			}
		}

		fmt.Println()
		fmt.Printf("Flashcards: %d tracked, %d due now\n",
			prof.Reviews.TrackedCount(), len(prof.Reviews.Due(now)))
		if s := prof.Streak(now); s > 0 {
			fmt.Printf("Streak: %d day(s)\n", s)
		}
		if nudge := prof.Mistakes.Nudge(); nudge != "" {
			fmt.Println()
			fmt.Println(nudge)
		}
		return nil
	},
}
