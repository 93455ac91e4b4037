package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveCaseID resolves a --case value, which can be a full case UUID or a
// unique prefix of one. An empty input stays empty and means "current case".
func resolveCaseID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", nil
	}

	cases, err := app.Cases.ListCases(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, c := range cases {
		if c.CaseID == input {
			return c.CaseID, nil
		}
		if strings.HasPrefix(c.CaseID, input) {
			matches = append(matches, c.CaseID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("case not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("case ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
