package generate

import (
	"context"
	"fmt"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

// GenerateClients creates n clients with unique emails and license numbers,
// checked against both persisted and in-batch values.
func GenerateClients(ctx context.Context, gc *Context, n int) ([]model.Client, error) {
	existing, err := gc.Store.Select(ctx, model.TableClients, []string{"email", "license_number"}, nil)
	if err != nil {
		return nil, fmt.Errorf("load existing clients: %w", err)
	}
	emails := make(map[string]bool, len(existing))
	licenses := make(map[string]bool, len(existing))
	for _, row := range existing {
		if e, ok := row.String("email"); ok {
			emails[e] = true
		}
		if l, ok := row.String("license_number"); ok {
			licenses[l] = true
		}
	}

	rows := make([]store.Row, 0, n)
	for len(rows) < n {
		attempts := 0
		for {
			c := model.Client{
				Name:          gc.Facts.PersonName(),
				Email:         gc.Facts.Email(),
				Phone:         gc.Facts.Phone(),
				LicenseNumber: gc.Facts.NumericString(11),
			}
			if !emails[c.Email] && !licenses[c.LicenseNumber] {
				emails[c.Email] = true
				licenses[c.LicenseNumber] = true
				rows = append(rows, c.Row())
				break
			}
			attempts++
			if attempts >= maxUniqueAttempts {
				return nil, &ExhaustionError{Entity: "client", Attempts: attempts}
			}
		}
	}

	inserted, err := gc.Store.Insert(ctx, model.TableClients, rows)
	if err != nil {
		return nil, fmt.Errorf("insert clients: %w", err)
	}
	clients := make([]model.Client, len(inserted))
	for i, row := range inserted {
		clients[i] = model.ClientFromRow(row)
	}
	gc.Log.Infof("generated %d clients", len(clients))
	return clients, nil
}
