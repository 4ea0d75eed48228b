package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/docker/go-units"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// ErrInputTooLarge is returned when the input exceeds max-input-size.
var ErrInputTooLarge = errors.New("aoc2025: input exceeds max-input-size")

// result is one solved part as written by --output json.
type result struct {
	Day     int      `json:"day"`
	Part    int      `json:"part"`
	Answer  int64    `json:"answer"`
	Skipped []string `json:"skipped,omitempty"`
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		part   int
		input  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "solve {day}",
		Short: "solve one day, both parts unless --part is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "day %q", args[0])
			}
			if output == "" {
				output = a.cfg.Output
			}
			if output != "text" && output != "json" {
				return errors.Errorf("unknown output %q, want text or json", output)
			}
			if input == "" {
				input = filepath.Join(a.cfg.InputDir, fmt.Sprintf("day%d.txt", day))
			}
			if _, err := a.registry.Lookup(day); err != nil {
				return err
			}

			text, err := readInput(cmd.InOrStdin(), input, a.cfg.MaxInputBytes())
			if err != nil {
				return err
			}

			parts := []int{1, 2}
			if part != 0 {
				parts = []int{part}
			}
			var results []result
			for _, p := range parts {
				ans, err := a.registry.Run(day, p, text)
				if err != nil {
					return errors.Wrapf(err, "day %d part %d", day, p)
				}
				results = append(results, newResult(day, p, ans))
			}

			return writeResults(cmd.OutOrStdout(), output, results)
		},
	}
	cmd.Flags().IntVarP(&part, "part", "p", 0, "puzzle part 1 or 2")
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file, '-' for stdin (default <input-dir>/day<N>.txt)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format 'text|json'")

	return cmd
}

func newResult(day, part int, ans puzzle.Answer) result {
	r := result{Day: day, Part: part, Answer: ans.Value}
	for _, e := range ans.Skipped {
		r.Skipped = append(r.Skipped, e.Error())
	}

	return r
}

// readInput reads at most limit bytes from path, or from stdin when path is "-".
func readInput(stdin io.Reader, path string, limit int64) (string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	if int64(len(data)) > limit {
		return "", errors.Wrapf(ErrInputTooLarge, "%s is larger than %s", path, units.BytesSize(float64(limit)))
	}

	return string(data), nil
}

func writeResults(w io.Writer, format string, results []result) error {
	if format == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode results")
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "Puzzle %d:\n%d\n", r.Part, r.Answer); err != nil {
			return err
		}
	}

	return nil
}
