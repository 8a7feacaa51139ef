package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sm8ta/webike_shop_microservice/internal/config"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/pressly/goose"
)

// Connect opens the pool, checks it and brings the schema up to date.
func Connect(ctx context.Context, cfg *config.DB) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

type txRepos struct {
	bikes     *BikeRepository
	customers *CustomerRepository
	sales     *SaleRepository
	purchases *PurchaseRepository
	orders    *ServiceOrderRepository
}

func newTxRepos(db DBTX) *txRepos {
	return &txRepos{
		bikes:     NewBikeRepository(db),
		customers: NewCustomerRepository(db),
		sales:     NewSaleRepository(db),
		purchases: NewPurchaseRepository(db),
		orders:    NewServiceOrderRepository(db),
	}
}

func (r *txRepos) Bikes() ports.BikeRepository                 { return r.bikes }
func (r *txRepos) Customers() ports.CustomerRepository         { return r.customers }
func (r *txRepos) Sales() ports.SaleRepository                 { return r.sales }
func (r *txRepos) Purchases() ports.PurchaseRepository         { return r.purchases }
func (r *txRepos) ServiceOrders() ports.ServiceOrderRepository { return r.orders }

type TxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(r ports.TxRepos) error) error {
	return m.run(ctx, nil, fn)
}

func (m *TxManager) WithinSnapshot(ctx context.Context, fn func(r ports.TxRepos) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (m *TxManager) run(ctx context.Context, opts *sql.TxOptions, fn func(r ports.TxRepos) error) (err error) {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(newTxRepos(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
