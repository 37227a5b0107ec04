package glossarymigrations

import (
	"context"
	"fmt"

	glossarydb "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating terms table...")

		if _, err := db.NewCreateTable().Model((*glossarydb.Term)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create terms table: %w", err)
		}

		fmt.Println("Terms table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping terms table...")

		if _, err := db.NewDropTable().Model((*glossarydb.Term)(nil)).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop terms table: %w", err)
		}

		fmt.Println("Terms table dropped successfully!")
		return nil
	})
}
