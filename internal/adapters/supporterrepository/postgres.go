package supporterrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/reporting"
	"github.com/shmeado/lantern/internal/strutils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Postgres struct {
	db     *sqlx.DB
	schema string

	tracer trace.Tracer
}

func NewPostgres(db *sqlx.DB, schema string) *Postgres {
	tracer := otel.Tracer("lantern/supporterrepository/postgres")

	return &Postgres{
		db:     db,
		schema: schema,

		tracer: tracer,
	}
}

type dbSupportersEntry struct {
	UUID   string    `db:"uuid"`
	Tier   int       `db:"tier"`
	Emoji  string    `db:"emoji"`
	Bio    string    `db:"bio"`
	Joined time.Time `db:"joined"`
}

// GetSupporter returns the supporter entry for a player, or
// domain.ErrNotASupporter when the player has no entry.
func (p *Postgres) GetSupporter(ctx context.Context, uuid string) (domain.Supporter, error) {
	ctx, span := p.tracer.Start(ctx, "Postgres.GetSupporter")
	defer span.End()

	if !strutils.UUIDIsNormalized(uuid) {
		err := fmt.Errorf("uuid is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"uuid": uuid,
		})
		return domain.Supporter{}, err
	}

	conn, err := p.db.Connx(ctx)
	if err != nil {
		err := fmt.Errorf("failed to get connection: %w", err)
		reporting.Report(ctx, err)
		return domain.Supporter{}, err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err := fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"schema": p.schema,
		})
		return domain.Supporter{}, err
	}

	var entry dbSupportersEntry
	err = conn.GetContext(
		ctx,
		&entry,
		"SELECT uuid, tier, emoji, bio, joined FROM supporters WHERE uuid = $1",
		uuid,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Supporter{}, domain.ErrNotASupporter
	}
	if err != nil {
		err := fmt.Errorf("failed to query supporter: %w", err)
		reporting.Report(ctx, err)
		return domain.Supporter{}, err
	}

	return domain.Supporter{
		UUID:   entry.UUID,
		Tier:   entry.Tier,
		Emoji:  entry.Emoji,
		Bio:    entry.Bio,
		Joined: entry.Joined,
	}, nil
}

// StoreSupporter inserts or updates a supporter entry. Used by the admin
// tooling when Patreon membership changes.
func (p *Postgres) StoreSupporter(ctx context.Context, supporter domain.Supporter) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.StoreSupporter")
	defer span.End()

	if !strutils.UUIDIsNormalized(supporter.UUID) {
		err := fmt.Errorf("uuid is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"uuid": supporter.UUID,
		})
		return err
	}

	conn, err := p.db.Connx(ctx)
	if err != nil {
		err := fmt.Errorf("failed to get connection: %w", err)
		reporting.Report(ctx, err)
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err := fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"schema": p.schema,
		})
		return err
	}

	_, err = conn.ExecContext(
		ctx,
		`INSERT INTO supporters (uuid, tier, emoji, bio, joined)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uuid) DO UPDATE SET
			tier = EXCLUDED.tier,
			emoji = EXCLUDED.emoji,
			bio = EXCLUDED.bio`,
		supporter.UUID, supporter.Tier, supporter.Emoji, supporter.Bio, supporter.Joined,
	)
	if err != nil {
		err := fmt.Errorf("failed to store supporter: %w", err)
		reporting.Report(ctx, err)
		return err
	}

	return nil
}
