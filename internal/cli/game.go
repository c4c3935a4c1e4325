package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Round commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameSelectCmd())
	cmd.AddCommand(newGameHintCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameAutoplayCmd())

	cmd.AddCommand(newGameActionCmd("start", "Finish the countdown and start the clock"))
	cmd.AddCommand(newGameActionCmd("tick", "Advance the round clock to now"))
	cmd.AddCommand(newGameActionCmd("reshuffle", "Reroll the whole board"))
	cmd.AddCommand(newGameActionCmd("reset", "Start the round over with a fresh board"))
	cmd.AddCommand(newGameActionCmd("end", "End the round and record its summary"))

	return cmd
}

func gamePath(id string, parts ...string) string {
	return "/api/v1/games/" + id + strings.Join(append([]string{""}, parts...), "/")
}

func newGameNewCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new round",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{}
			if cmd.Flags().Changed("size") {
				req["size"] = size
			}

			var result GameState
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Board size (defaults to the server setting)")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show a round and its board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState
			if err := client.Get(gamePath(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

// newGameActionCmd builds a command that posts to a round action without a body
func newGameActionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <game-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState
			if err := client.Post(gamePath(args[0], action), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

// Cell is a board coordinate as sent to the API
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// parseCell parses "x,y"
func parseCell(s string) (Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Cell{}, fmt.Errorf("invalid cell %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return Cell{X: x, Y: y}, nil
}

func newGameSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <game-id> <x,y> <x,y> <x,y> <x,y>",
		Short: "Select four balls",
		Long: `Select four balls by their coordinates. x counts columns from the left and
y counts rows from the bottom, both starting at 0.

Example:
  cgame game select g_abc 0,0 0,3 2,0 2,3`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			cells := make([]Cell, 0, 4)
			for _, arg := range args[1:] {
				cell, err := parseCell(arg)
				if err != nil {
					return err
				}
				cells = append(cells, cell)
			}

			var result SelectResult
			if err := client.Post(gamePath(args[0], "select"), map[string][]Cell{"cells": cells}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <game-id>",
		Short: "Show the corners of one available combination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HintResult
			if err := client.Post(gamePath(args[0], "hint"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(gamePath(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Deleted game %s", args[0]))
			return nil
		},
	}
}

func newGameAutoplayCmd() *cobra.Command {
	var (
		strategy string
		moves    int
	)

	cmd := &cobra.Command{
		Use:   "autoplay <game-id>",
		Short: "Let a bot play moves on a round",
		Long: `Let a bot play moves on a running round. Strategies:
  greedy    always takes the highest scoring combination
  cautious  always takes the lowest scoring combination
  random    picks any combination at random`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if moves <= 0 {
				return fmt.Errorf("--moves must be positive")
			}

			var result AutoplayResult
			req := map[string]any{"strategy": strategy, "moves": moves}
			if err := client.Post(gamePath(args[0], "autoplay"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "greedy", "Bot strategy (greedy, cautious, random)")
	cmd.Flags().IntVar(&moves, "moves", 1, "Number of moves to play")

	return cmd
}
