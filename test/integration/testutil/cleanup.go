//go:build integration

package testutil

import (
	"context"
	"time"
)

// CleanAll truncates all tables so every test starts from an empty store.
func (env *TestEnv) CleanAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tables := []string{
		"listings",
		"clan_info",
		"vip_tiers",
		"news",
		"admins",
	}

	for _, table := range tables {
		if _, err := env.Pool.Exec(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE"); err != nil {
			env.t.Logf("cleanup: truncate %s: %v", table, err)
		}
	}
}
