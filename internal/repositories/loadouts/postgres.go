package loadouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
)

type postgresRepo struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed loadout repository
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Get(ctx context.Context, playerID string) (*loadout.Loadout, error) {
	if playerID == "" {
		return nil, forgeerr.InvalidArgument("player ID cannot be empty")
	}

	var equipped, runes []byte
	data := Data{PlayerID: playerID}
	err := r.db.QueryRow(ctx,
		`SELECT equipped, runes, updated_at FROM loadouts WHERE player_id = $1`, playerID,
	).Scan(&equipped, &runes, &data.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loadout.New(playerID), nil
		}
		return nil, fmt.Errorf("querying loadout for %s: %w", playerID, err)
	}

	if err := json.Unmarshal(equipped, &data.Equipped); err != nil {
		return nil, fmt.Errorf("unmarshaling equipped: %w", err)
	}
	if err := json.Unmarshal(runes, &data.Runes); err != nil {
		return nil, fmt.Errorf("unmarshaling runes: %w", err)
	}
	return toLoadout(&data), nil
}

func (r *postgresRepo) Save(ctx context.Context, l *loadout.Loadout) error {
	if l == nil {
		return forgeerr.InvalidArgument("loadout cannot be nil")
	}
	if l.PlayerID == "" {
		return forgeerr.InvalidArgument("player ID cannot be empty")
	}

	data := toData(l)
	equipped, err := json.Marshal(data.Equipped)
	if err != nil {
		return fmt.Errorf("marshaling equipped: %w", err)
	}
	runes, err := json.Marshal(data.Runes)
	if err != nil {
		return fmt.Errorf("marshaling runes: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO loadouts (player_id, equipped, runes, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id) DO UPDATE
		SET equipped = EXCLUDED.equipped, runes = EXCLUDED.runes, updated_at = EXCLUDED.updated_at`,
		data.PlayerID, equipped, runes, data.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving loadout for %s: %w", l.PlayerID, err)
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM loadouts WHERE player_id = $1`, playerID); err != nil {
		return fmt.Errorf("deleting loadout for %s: %w", playerID, err)
	}
	return nil
}
