package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/ports"
)

// saveCollection runs as the post-commit step of every mutating command:
// the in-memory mutation has already happened, so a failure here is wrapped
// in ErrPersistence to keep it distinguishable from business-rule errors.
func saveCollection(ctx context.Context, store ports.CollectionStore, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrPersistence, key, err)
	}

	if err := store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrPersistence, key, err)
	}

	return nil
}

// loadCollection fills records from the stored blob and reports whether
// anything was stored under key yet.
func loadCollection(ctx context.Context, store ports.CollectionStore, key string, records any) (bool, error) {
	data, found, err := store.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	if !found {
		return false, nil
	}

	if err := json.Unmarshal(data, records); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}
