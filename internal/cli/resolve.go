package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fulfill/internal/service"
)

// resolveClientID accepts an exact id, an id prefix, or a case-insensitive
// exact name.
func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("client is required")
	}

	clients, err := app.Clients.List(ctx, service.ListOptions{})
	if err != nil {
		return "", err
	}

	for _, c := range clients {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range clients {
		if strings.EqualFold(c.Name, input) {
			matches = append(matches, c.ID)
		}
	}
	if len(matches) == 0 {
		for _, c := range clients {
			if strings.HasPrefix(c.ID, input) {
				matches = append(matches, c.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("client not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("client %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDateFlag returns nil for an empty value.
func parseDateFlag(name, value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if err := validateOptionalDate(value); err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return &value, nil
}
