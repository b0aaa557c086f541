package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-prompter/internal/calorie"
)

type violation struct {
	source   string
	location string
	message  string
}

func newLintCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [declaration files...]",
		Short: "Check the prompt declarations",
		Long: `Validates the user entity in every built-in language and, for each
declaration file given, with that file overlaid. Exits non-zero when any
field declaration is invalid.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			type target struct{ source, lang, decl string }

			var targets []target
			for _, lang := range calorie.Languages() {
				targets = append(targets, target{source: "builtin:" + lang, lang: lang})
			}
			paths := args
			if root.declPath != "" {
				paths = append([]string{root.declPath}, args...)
			}
			for _, path := range paths {
				targets = append(targets, target{source: path, lang: root.lang, decl: path})
			}

			var violations []violation
			for _, t := range targets {
				found := lintTarget(t.source, t.lang, t.decl)
				if len(found) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", t.source)
				}
				violations = append(violations, found...)
			}

			if len(violations) == 0 {
				return nil
			}
			sort.Slice(violations, func(i, j int) bool {
				if violations[i].source == violations[j].source {
					return violations[i].location < violations[j].location
				}
				return violations[i].source < violations[j].source
			})
			for _, v := range violations {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s -> %s\n", v.source, v.location, v.message)
			}
			return fmt.Errorf("%d invalid declaration(s)", len(violations))
		},
	}
}

func lintTarget(source, lang, decl string) []violation {
	result, err := lintEntity(lang, decl)
	if err != nil {
		return []violation{{source: source, location: calorie.EntityName, message: err.Error()}}
	}

	out := make([]violation, 0, len(result.Issues))
	for _, issue := range result.Issues {
		out = append(out, violation{
			source:   source,
			location: formatLocation(calorie.EntityName, issue.Field),
			message:  issue.Message,
		})
	}
	return out
}

func formatLocation(path ...string) string {
	return strings.Join(path, " > ")
}
