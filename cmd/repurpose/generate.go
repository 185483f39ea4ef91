package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/repurpose"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	result, err := deps.Repurposer.Repurpose(deps.Ctx, &repurpose.Request{
		URL:  c.URL,
		Tone: repurpose.Tone(c.Tone),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", repurpose.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "raw":
		fmt.Fprintln(deps.Stdout, result.Raw)
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	default:
		if result.Title != "" {
			fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
		}
		fmt.Fprintln(deps.Stdout, repurpose.FormatContent(result.Content))
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s.%s is %d characters (limit %d)\n", w.Section, w.Field, w.Length, w.Limit)
	}
	return nil
}
