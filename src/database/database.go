package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/propfolio/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	if logger.L != nil {
		logger.L.Info("Checking database migrations", "databasePath", databasePath)
	} else {
		stdlog.Println("Checking database migrations for:", databasePath)
	}
	migrateEvaluationsTable()

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS evaluations (
		id TEXT PRIMARY KEY,
		calculation_method TEXT NOT NULL DEFAULT 'basic',
		purchase_price_cents INTEGER NOT NULL,
		expected_monthly_rent_cents INTEGER NOT NULL,
		equity_cents INTEGER,
		interest_rate_pct REAL NOT NULL,
		loan_term_years INTEGER NOT NULL,
		monthly_other_costs_cents INTEGER NOT NULL DEFAULT 0,
		gross_yield_pct REAL,
		net_yield_pct REAL,
		monthly_cashflow_cents INTEGER,
		recommendation TEXT,
		result_json TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err = DB.Exec(createTableStatement)
	if err != nil {
		if logger.L != nil {
			logger.L.Error("failed to create tables", "error", err)
		}
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("Database tables ensured/created.")
	} else {
		stdlog.Println("Database tables ensured/created.")
	}
}

// migrateEvaluationsTable adds the columns introduced after the first
// schema revision (calculation method discriminator and the raw result
// payload) to existing databases.
func migrateEvaluationsTable() {
	var tableName string
	err := DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='evaluations'").Scan(&tableName)
	if err != nil {
		if err == sql.ErrNoRows {
			if logger.L != nil {
				logger.L.Info("'evaluations' table does not exist, no migration needed as table will be created.")
			} else {
				stdlog.Println("'evaluations' table does not exist, no migration needed as table will be created.")
			}
			return
		}
		if logger.L != nil {
			logger.L.Error("Error checking for 'evaluations' table", "error", err)
		} else {
			stdlog.Printf("Error checking for 'evaluations' table: %v", err)
		}
		return
	}

	rows, err := DB.Query("PRAGMA table_info(evaluations)")
	if err != nil {
		if logger.L != nil {
			logger.L.Error("Error querying table schema for 'evaluations'", "error", err)
		} else {
			stdlog.Printf("Error querying table schema for 'evaluations': %v", err)
		}
		return
	}
	defer rows.Close()

	columnExists := make(map[string]bool)
	for rows.Next() {
		var cid, pk int
		var name, dataType string
		var notnullVal int
		var dfltValue interface{}

		if err := rows.Scan(&cid, &name, &dataType, &notnullVal, &dfltValue, &pk); err != nil {
			if logger.L != nil {
				logger.L.Error("Error scanning column info for 'evaluations'", "error", err)
			} else {
				stdlog.Printf("Error scanning column info for 'evaluations': %v", err)
			}
			return
		}
		columnExists[name] = true
	}
	if err = rows.Err(); err != nil {
		if logger.L != nil {
			logger.L.Error("Error iterating over column info for 'evaluations'", "error", err)
		} else {
			stdlog.Printf("Error iterating over column info for 'evaluations': %v", err)
		}
		return
	}

	if _, ok := columnExists["calculation_method"]; !ok {
		_, err := DB.Exec("ALTER TABLE evaluations ADD COLUMN calculation_method TEXT NOT NULL DEFAULT 'basic'")
		if err != nil {
			logger.L.Error("Error adding 'calculation_method' column to 'evaluations' table", "error", err)
		} else {
			logger.L.Info("Added 'calculation_method' column to 'evaluations' table")
		}
	}
	if _, ok := columnExists["result_json"]; !ok {
		_, err := DB.Exec("ALTER TABLE evaluations ADD COLUMN result_json TEXT")
		if err != nil {
			logger.L.Error("Error adding 'result_json' column to 'evaluations' table", "error", err)
		} else {
			logger.L.Info("Added 'result_json' column to 'evaluations' table")
		}
	}
}
