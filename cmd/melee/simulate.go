package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/selectors"
	"github.com/KirkDiggler/rpg-melee/internal/entities/combatant"
	"github.com/KirkDiggler/rpg-melee/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-melee/internal/roster"
)

var (
	rosterPath string
	maxRounds  int
	cautious   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fight out a roster until one side stands",
	Long: `Run melee rounds with computer-chosen actions until the combat ends or the
round cap is reached. Examples:

  melee simulate --roster skirmish.yaml
  melee simulate --roster skirmish.yaml --rounds 5 --redis localhost:6379`,
	RunE: simulate,
}

func init() {
	simulateCmd.Flags().StringVar(&rosterPath, "roster", "", "Roster file (yaml, json or toml)")
	simulateCmd.Flags().IntVar(&maxRounds, "rounds", 0, "Round cap (overrides MELEE_MAX_ROUNDS)")
	simulateCmd.Flags().BoolVar(&cautious, "cautious", false, "Badly hurt fighters dodge instead of striking")
	_ = simulateCmd.MarkFlagRequired("roster")
}

func simulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := roster.Load(rosterPath)
	if err != nil {
		return err
	}

	rounds := cfg.MaxRounds
	if maxRounds > 0 {
		rounds = maxRounds
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

	started, err := svc.StartEncounter(ctx, &encounter.StartEncounterInput{
		Fighters: r.Fighters,
		Options:  r.Options(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Encounter %s\n\nInitiative:\n", started.EncounterID)
	for i, entry := range started.Order {
		fmt.Fprintf(out, "  %d. %-20s %d\n", i+1, entry.Name, entry.Initiative)
	}
	printLines(out, started.Narration)

	var selector engine.ActionSelector = selectors.MostWounded{}
	if cautious {
		selector = selectors.Cautious{}
	}

	for i := 0; i < rounds; i++ {
		res, err := svc.RunRound(ctx, &encounter.RunRoundInput{
			EncounterID: started.EncounterID,
			Selector:    selector,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		printLines(out, res.Summary.Narration)
		printStanding(out, res.Combatants)

		if res.Summary.CombatOver {
			break
		}
	}

	final, err := svc.EndEncounter(ctx, &encounter.EndEncounterInput{EncounterID: started.EncounterID})
	if err != nil {
		return err
	}

	switch {
	case !final.Status.Over:
		fmt.Fprintf(out, "\nNo winner after %d rounds\n", final.Rounds)
	case final.Status.WinningSide == "":
		fmt.Fprintf(out, "\nNobody is left standing after %d rounds\n", final.Rounds)
	default:
		fmt.Fprintf(out, "\n%s side wins after %d rounds\n", final.Status.WinningSide, final.Rounds)
	}

	logged, err := svc.ListRounds(ctx, &encounter.ListRoundsInput{EncounterID: started.EncounterID})
	if err != nil {
		return err
	}
	for _, s := range logged.Summaries {
		fmt.Fprintf(out, "  round %-3d actions %-3d attacks %-3d damage %d\n",
			s.Round, s.Stats.Actions, s.Stats.Attacks, s.Stats.DamageDealt)
	}
	if cfg.RedisAddr != "" {
		fmt.Fprintf(out, "Round log stored under %s\n", started.EncounterID)
	}
	return nil
}

func printStanding(out io.Writer, fighters []*combatant.Combatant) {
	fmt.Fprintln(out, "  --")
	for _, c := range fighters {
		fmt.Fprintf(out, "  %-20s %-7s HP %3d/%-3d %s\n", c.Name, c.Side, c.HP, c.MaxHP, c.Condition())
	}
}

func printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
}
