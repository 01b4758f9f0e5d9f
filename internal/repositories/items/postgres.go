package items

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
)

const uniqueViolation = "23505"

const selectColumns = `id, owner_id, base_type_id, name, slot, icon, rarity, item_level,
	implicit, damage, prefixes, suffixes, created_at, updated_at`

type postgresRepo struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed equipment repository
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepo{db: db}
}

// jsonColumns encodes the nested parts of an instance
type jsonColumns struct {
	implicit []byte
	damage   []byte
	prefixes []byte
	suffixes []byte
}

func encodeColumns(data *Data) (*jsonColumns, error) {
	cols := &jsonColumns{}
	var err error
	if data.Implicit != nil {
		if cols.implicit, err = json.Marshal(data.Implicit); err != nil {
			return nil, fmt.Errorf("marshaling implicit: %w", err)
		}
	}
	if data.Damage != nil {
		if cols.damage, err = json.Marshal(data.Damage); err != nil {
			return nil, fmt.Errorf("marshaling damage: %w", err)
		}
	}
	if cols.prefixes, err = json.Marshal(data.Prefixes); err != nil {
		return nil, fmt.Errorf("marshaling prefixes: %w", err)
	}
	if cols.suffixes, err = json.Marshal(data.Suffixes); err != nil {
		return nil, fmt.Errorf("marshaling suffixes: %w", err)
	}
	return cols, nil
}

func (r *postgresRepo) Create(ctx context.Context, instance *equipment.Instance) error {
	if instance == nil {
		return forgeerr.InvalidArgument("instance cannot be nil")
	}
	if instance.ID == "" {
		return forgeerr.InvalidArgument("instance ID cannot be empty")
	}

	data := toData(instance)
	cols, err := encodeColumns(data)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO equipment_instances (`+selectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		data.ID, data.OwnerID, data.BaseTypeID, data.Name, data.Slot, data.Icon, data.Rarity, data.ItemLevel,
		cols.implicit, cols.damage, cols.prefixes, cols.suffixes, data.CreatedAt, data.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return forgeerr.AlreadyExistsf("instance with ID %s already exists", instance.ID)
		}
		return fmt.Errorf("inserting instance %s: %w", instance.ID, err)
	}
	return nil
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*equipment.Instance, error) {
	row := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM equipment_instances WHERE id = $1`, id)

	instance, err := scanInstance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, forgeerr.NotFoundf("instance not found: %s", id)
		}
		return nil, fmt.Errorf("querying instance %s: %w", id, err)
	}
	return instance, nil
}

func (r *postgresRepo) Update(ctx context.Context, instance *equipment.Instance) error {
	if instance == nil {
		return forgeerr.InvalidArgument("instance cannot be nil")
	}

	data := toData(instance)
	cols, err := encodeColumns(data)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE equipment_instances
		SET owner_id = $2, base_type_id = $3, name = $4, slot = $5, icon = $6, rarity = $7, item_level = $8,
		    implicit = $9, damage = $10, prefixes = $11, suffixes = $12, updated_at = $13
		WHERE id = $1`,
		data.ID, data.OwnerID, data.BaseTypeID, data.Name, data.Slot, data.Icon, data.Rarity, data.ItemLevel,
		cols.implicit, cols.damage, cols.prefixes, cols.suffixes, data.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating instance %s: %w", instance.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return forgeerr.NotFoundf("instance not found: %s", instance.ID)
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM equipment_instances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting instance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return forgeerr.NotFoundf("instance not found: %s", id)
	}
	return nil
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]*equipment.Instance, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+selectColumns+`
		FROM equipment_instances
		WHERE owner_id = $1
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying instances for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	instances := []*equipment.Instance{}
	for rows.Next() {
		instance, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning instance row: %w", err)
		}
		instances = append(instances, instance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating instance rows: %w", err)
	}
	return instances, nil
}

func scanInstance(row pgx.Row) (*equipment.Instance, error) {
	var data Data
	var implicit, damage, prefixes, suffixes []byte

	err := row.Scan(
		&data.ID, &data.OwnerID, &data.BaseTypeID, &data.Name, &data.Slot, &data.Icon, &data.Rarity, &data.ItemLevel,
		&implicit, &damage, &prefixes, &suffixes, &data.CreatedAt, &data.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(implicit) > 0 {
		data.Implicit = &ImplicitData{}
		if err := json.Unmarshal(implicit, data.Implicit); err != nil {
			return nil, fmt.Errorf("unmarshaling implicit: %w", err)
		}
	}
	if len(damage) > 0 {
		data.Damage = &DamageData{}
		if err := json.Unmarshal(damage, data.Damage); err != nil {
			return nil, fmt.Errorf("unmarshaling damage: %w", err)
		}
	}
	if err := json.Unmarshal(prefixes, &data.Prefixes); err != nil {
		return nil, fmt.Errorf("unmarshaling prefixes: %w", err)
	}
	if err := json.Unmarshal(suffixes, &data.Suffixes); err != nil {
		return nil, fmt.Errorf("unmarshaling suffixes: %w", err)
	}

	return toInstance(&data), nil
}
