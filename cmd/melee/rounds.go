package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/idgen"
)

var (
	encounterID string
	verbose     bool
)

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "List the stored round log of an encounter",
	Long: `Print the round summaries recorded for an encounter. Example:

  melee rounds --encounter enc_1f0c... --redis localhost:6379`,
	RunE: listRounds,
}

func init() {
	roundsCmd.Flags().StringVar(&encounterID, "encounter", "", "Encounter ID")
	roundsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each round's narration")
	_ = roundsCmd.MarkFlagRequired("encounter")
}

func listRounds(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if _, err := idgen.Parse(encounterPrefix, encounterID); err != nil {
		return err
	}
	if cfg.RedisAddr == "" {
		return errors.FailedPrecondition("a redis address is required (--redis or MELEE_REDIS_ADDR)")
	}

	repo, cleanup, err := newRepository(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	svc, err := newOrchestrator(repo)
	if err != nil {
		return err
	}

	out, err := svc.ListRounds(ctx, &encounter.ListRoundsInput{EncounterID: encounterID})
	if err != nil {
		return err
	}
	if len(out.Summaries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No rounds stored for %s\n", encounterID)
		return nil
	}

	w := cmd.OutOrStdout()
	for _, s := range out.Summaries {
		fmt.Fprintf(w, "Round %d  %s  actions %d  attacks %d  damage %d\n",
			s.Round, s.RecordedAt.Format("15:04:05"), s.Stats.Actions, s.Stats.Attacks, s.Stats.DamageDealt)
		if verbose {
			for _, line := range s.Narration {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
		if s.CombatOver {
			winner := s.WinningSide
			if winner == "" {
				winner = "nobody"
			}
			fmt.Fprintf(w, "Combat over: %s wins\n", winner)
		}
	}
	return nil
}
