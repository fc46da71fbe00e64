package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"marketchat/internal"
	"marketchat/moderation"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const exitFlagged = 3

var (
	tagStyle     = color.New(color.FgRed, color.OpBold)
	warningStyle = color.New(color.FgYellow)
	okStyle      = color.New(color.FgGreen)
)

// inputs returns the joined arguments, or every non-empty stdin line when there is none.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func highlightTags(s string) string {
	pairs := make([]string, 0, 2*len(moderation.Rules())+2)
	for _, rule := range moderation.Rules() {
		pairs = append(pairs, rule.Tag, tagStyle.Render(rule.Tag))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

func newRedactCmd(cfg Config) *cobra.Command {
	var report bool
	cmd := &cobra.Command{
		Use:   "redact [text...]",
		Short: "Replace contact details and other sensitive content with tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			moderator, err := loadModerator(cfg)
			if err != nil {
				return err
			}
			return runRedact(cmd.OutOrStdout(), lines, moderator, report)
		},
	}
	cmd.Flags().BoolVar(&report, "report", false, "Print the rules that fired for each line")
	return cmd
}

func loadModerator(cfg Config) (*moderation.Moderator, error) {
	if cfg.BlocklistFile == "" {
		return nil, nil
	}
	char, err := internal.CharacterRune(cfg.CensorChar)
	if err != nil {
		return nil, err
	}
	words, err := moderation.LoadBlocklistFile(cfg.BlocklistFile)
	if err != nil {
		return nil, err
	}
	return moderation.NewModerator(words, char, logs.GetLoggerFromLevel(slog.LevelWarn))
}

func runRedact(w io.Writer, lines []string, moderator *moderation.Moderator, report bool) error {
	for _, line := range lines {
		out, hits := moderation.RedactWithReport(line)
		out, words := moderator.Censor(out)
		if _, err := fmt.Fprintln(w, highlightTags(out)); err != nil {
			return err
		}
		if !report {
			continue
		}
		for _, hit := range hits {
			fmt.Fprintf(w, "  %s x%d\n", warningStyle.Render(string(hit.Rule)), hit.Count)
		}
		for _, word := range words {
			fmt.Fprintf(w, "  %s %s\n", warningStyle.Render("blocked"), word)
		}
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [text...]",
		Short: "Exit with status 3 when a line holds sensitive or forbidden content",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), lines)
		},
	}
}

func runCheck(w io.Writer, lines []string) error {
	flagged := 0
	for _, line := range lines {
		sensitive := moderation.ContainsSensitiveInfo(line)
		word, forbidden := moderation.ForbiddenWord(line)
		switch {
		case forbidden:
			flagged++
			fmt.Fprintf(w, "%s %q\n", warningStyle.Render("forbidden"), word)
		case sensitive:
			flagged++
			fmt.Fprintln(w, warningStyle.Render("sensitive"))
		default:
			fmt.Fprintln(w, okStyle.Render("clean"))
		}
	}
	if flagged > 0 {
		return &exitErr{code: exitFlagged, msg: fmt.Sprintf("%d of %d line(s) flagged", flagged, len(lines))}
	}
	return nil
}

func newLiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live [text...]",
		Short: "Apply the keystroke filter that strips Arabic-Indic digits and location keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), moderation.FilterInputRealTime(line))
			}
			return nil
		},
	}
}

func newLegacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legacy [text...]",
		Short: "Run the legacy filter that rejects any message holding a digit",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			rejected := 0
			for _, line := range lines {
				verdict := moderation.FilterMessage(line)
				if verdict.IsValid {
					fmt.Fprintln(cmd.OutOrStdout(), verdict.FilteredMessage)
					continue
				}
				rejected++
				fmt.Fprintln(cmd.OutOrStdout(), tagStyle.Render(verdict.ErrorMessage))
			}
			if rejected > 0 {
				return &exitErr{code: exitFlagged}
			}
			return nil
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the redaction rules in the order they run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderRules(cmd.OutOrStdout())
			return nil
		},
	}
}

func renderRules(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Rule", "Tag", "Pattern"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for i, rule := range moderation.Rules() {
		table.Append([]string{fmt.Sprint(i + 1), string(rule.Name), rule.Tag, rule.Pattern.String()})
	}
	table.Render()
}
