package schema

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Open connects gorm to Postgres with its own logger silenced; callers log.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// Migrate creates or alters every table.
func Migrate(db *gorm.DB) error {
	if err := db.Migrator().AutoMigrate(Tables...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// serials lists the tables seeded with explicit ids, keyed by id column.
var serials = map[string]string{
	"department":      "department_id",
	"category":        "category_id",
	"product":         "product_id",
	"attribute":       "attribute_id",
	"attribute_value": "attribute_value_id",
	"tax":             "tax_id",
	"shipping_region": "shipping_region_id",
	"shipping":        "shipping_id",
}

// Seed inserts the reference rows. Rows that already exist are left alone,
// so it is safe to run on every deploy.
func Seed(db *gorm.DB, log *zap.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		skip := tx.Clauses(clause.OnConflict{DoNothing: true}).Session(&gorm.Session{})
		batches := seedRows()
		for _, rows := range batches {
			if err := skip.Create(rows).Error; err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
		for table, col := range serials {
			// explicit ids leave the serial behind
			sql := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE(MAX(%s), 1)) FROM %s`,
				table, col, col, table)
			if err := tx.Exec(sql).Error; err != nil {
				return fmt.Errorf("reset %s sequence: %w", table, err)
			}
		}
		log.Info("seed applied", zap.Int("tables", len(batches)))
		return nil
	})
}
