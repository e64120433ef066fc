package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. Idempotente: se ejecuta en cada
// arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS drugs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			spec TEXT NOT NULL DEFAULT '',
			manufacturer TEXT NOT NULL DEFAULT '',
			approval_number TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			unit TEXT NOT NULL DEFAULT '',
			purchase_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			sale_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			expiry_date DATE,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			department TEXT NOT NULL DEFAULT '',
			position TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			hire_date DATE,
			account TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			contact TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			qualification_no TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS warehouses (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			address TEXT NOT NULL DEFAULT '',
			manager_id TEXT NOT NULL REFERENCES employees(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS inventories (
			id TEXT PRIMARY KEY,
			drug_id TEXT NOT NULL REFERENCES drugs(id) ON DELETE CASCADE,
			warehouse_id TEXT NOT NULL REFERENCES warehouses(id) ON DELETE CASCADE,
			quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			location TEXT NOT NULL DEFAULT '',
			last_check_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (drug_id, warehouse_id)
		)`,
		`CREATE TABLE IF NOT EXISTS stock_ins (
			id TEXT PRIMARY KEY,
			drug_id TEXT NOT NULL REFERENCES drugs(id),
			supplier_id TEXT NOT NULL REFERENCES suppliers(id),
			warehouse_id TEXT NOT NULL REFERENCES warehouses(id),
			quantity BIGINT NOT NULL CHECK (quantity > 0),
			unit_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_price NUMERIC(14,2) NOT NULL DEFAULT 0,
			date DATE NOT NULL,
			employee_id TEXT NOT NULL REFERENCES employees(id),
			remark TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id TEXT PRIMARY KEY,
			drug_id TEXT NOT NULL REFERENCES drugs(id),
			customer_id TEXT NOT NULL REFERENCES customers(id),
			warehouse_id TEXT NOT NULL REFERENCES warehouses(id),
			quantity BIGINT NOT NULL CHECK (quantity > 0),
			date DATE NOT NULL,
			employee_id TEXT NOT NULL REFERENCES employees(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS supplier_returns (
			id TEXT PRIMARY KEY,
			drug_id TEXT NOT NULL REFERENCES drugs(id),
			supplier_id TEXT NOT NULL REFERENCES suppliers(id),
			warehouse_id TEXT NOT NULL REFERENCES warehouses(id),
			quantity BIGINT NOT NULL CHECK (quantity > 0),
			reason TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL,
			employee_id TEXT NOT NULL REFERENCES employees(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sales_returns (
			id TEXT PRIMARY KEY,
			sale_id TEXT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
			warehouse_id TEXT NOT NULL REFERENCES warehouses(id),
			quantity BIGINT NOT NULL CHECK (quantity > 0),
			reason TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL,
			employee_id TEXT NOT NULL REFERENCES employees(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_checks (
			id TEXT PRIMARY KEY,
			drug_id TEXT NOT NULL REFERENCES drugs(id),
			warehouse_id TEXT NOT NULL REFERENCES warehouses(id),
			checked_quantity BIGINT NOT NULL,
			actual_quantity BIGINT NOT NULL CHECK (actual_quantity >= 0),
			diff_reason TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL,
			employee_id TEXT NOT NULL REFERENCES employees(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS finance_stats (
			id TEXT PRIMARY KEY,
			stat_type TEXT NOT NULL,
			stat_date DATE NOT NULL,
			total_sales NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_profit NUMERIC(14,2) NOT NULL DEFAULT 0,
			employee_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (stat_type, stat_date)
		)`,
		`CREATE TABLE IF NOT EXISTS system_logs (
			id TEXT PRIMARY KEY,
			employee_id TEXT,
			action_type TEXT NOT NULL,
			table_name TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			action_time TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_ins_date ON stock_ins (date)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_ins_drug_supplier ON stock_ins (drug_id, supplier_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
		`CREATE INDEX IF NOT EXISTS idx_supplier_returns_drug_supplier ON supplier_returns (drug_id, supplier_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_returns_sale ON sales_returns (sale_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_returns_date ON sales_returns (date)`,
		`CREATE INDEX IF NOT EXISTS idx_system_logs_action_time ON system_logs (action_time DESC)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("error al migrar esquema: %w", err)
		}
	}
	return nil
}
