// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. The SDK registry of the facet feature lives in these
// databases.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The
// integrity feature compares them with the columns expected from the GORM
// models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "sdks")
package database
