package scorepadmigrations

import (
	"context"
	"fmt"

	scorepaddb "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scorepad tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewCreateTable().Model((*scorepaddb.Scorepad)(nil)).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to create scorepads table: %w", err)
			}

			if _, err := tx.NewCreateTable().
				Model((*scorepaddb.Match)(nil)).
				IfNotExists().
				ForeignKey("(scorepad_id) REFERENCES scorepads (id) ON DELETE CASCADE").
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to create matches table: %w", err)
			}

			if _, err := tx.NewCreateIndex().
				Model((*scorepaddb.Match)(nil)).
				Index("matches_scorepad_seq_idx").
				Unique().
				Column("scorepad_id", "seq").
				IfNotExists().
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to create matches sequence index: %w", err)
			}

			fmt.Println("Scorepad tables created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scorepad tables...")

		for _, model := range []any{(*scorepaddb.Match)(nil), (*scorepaddb.Scorepad)(nil)} {
			if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop scorepad tables: %w", err)
			}
		}

		fmt.Println("Scorepad tables dropped successfully!")
		return nil
	})
}
