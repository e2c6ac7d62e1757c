package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'processing_status') THEN
			CREATE TYPE processing_status AS ENUM ('PENDING', 'PROCESSING', 'COMPLETED', 'FAILED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		filename VARCHAR(255) NOT NULL,
		file_size BIGINT NOT NULL,
		status processing_status NOT NULL DEFAULT 'PENDING',
		progress_percentage INT NOT NULL DEFAULT 0,
		error_message TEXT,
		data JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		processing_started_at TIMESTAMPTZ,
		processing_completed_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts (status);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_created_at ON contracts (created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_filename ON contracts (LOWER(filename));`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_type ON contracts ((data ->> 'contract_type')) WHERE data IS NOT NULL;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
