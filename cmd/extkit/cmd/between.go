package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/filex"
	"github.com/msto63/extkit/utils/stringx"
)

type betweenFlags struct {
	start         string
	end           string
	reverse       bool
	many          bool
	include       bool
	caseSensitive bool
	htmlDecode    bool
}

func newBetweenCommand(a *app) *cobra.Command {
	f := &betweenFlags{}

	cmd := &cobra.Command{
		Use:   "between [file]",
		Short: "Extract text between markers",
		Long: `Extracts the text between a start and an end marker.

Reads the file argument or standard input. Markers match case-insensitively
unless --case-sensitive is given or between.case_sensitive is set.

Examples:
  extkit between --start "<title>" --end "</title>" page.html
  extkit between --many --start "[" --end "]" notes.txt
  echo "a=1;b=2;" | extkit between --reverse --start "=" --end ";"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBetween(cmd, args, f)
		},
	}

	cmd.Flags().StringVar(&f.start, "start", "", "Start marker (empty: beginning of text)")
	cmd.Flags().StringVar(&f.end, "end", "", "End marker (empty: end of text)")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "Search from the end of the text")
	cmd.Flags().BoolVar(&f.many, "many", false, "Print every region, one per line")
	cmd.Flags().BoolVar(&f.include, "include", false, "Include the markers in the result")
	cmd.Flags().BoolVar(&f.caseSensitive, "case-sensitive", false, "Match markers exactly")
	cmd.Flags().BoolVar(&f.htmlDecode, "html-decode", false, "Decode HTML entities before extraction")

	return cmd
}

func (a *app) runBetween(cmd *cobra.Command, args []string, f *betweenFlags) error {
	if f.reverse && f.many {
		return fmt.Errorf("--reverse and --many cannot be combined")
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if f.htmlDecode {
		text = stringx.HTMLDecode(text)
	}

	opts := stringx.BetweenOptions{IncludeMarkers: f.include}
	if f.caseSensitive || a.cfg.GetBool("between.case_sensitive") {
		opts.Comparison = stringx.CompareOrdinal
	}

	logger := a.logger.WithName("between")
	logger.Debug("extracting", log.Fields{
		"start":      f.start,
		"end":        f.end,
		"comparison": opts.Comparison.String(),
		"bytes":      len(text),
	})

	out := cmd.OutOrStdout()

	switch {
	case f.many:
		regions, err := stringx.GetManyBetween(text, f.start, f.end, opts)
		if err != nil {
			return err
		}
		for _, region := range regions {
			fmt.Fprintln(out, region)
		}
		logger.Debug("regions extracted", log.Fields{"count": len(regions)})
	case f.reverse:
		if f.start == "" && f.end == "" {
			return fmt.Errorf("--start or --end is required")
		}
		fmt.Fprintln(out, stringx.GetBetweenReverse(text, f.start, f.end, opts))
	default:
		region, err := stringx.GetBetween(text, f.start, f.end, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, region)
	}

	return nil
}

// readInput returns the content of the file argument or standard input
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return filex.ReadString(args[0])
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, cmd.InOrStdin()); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return sb.String(), nil
}
