package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolationCode = "23505"

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable inserts the given slice of records only when the table is
// still empty. Used for seeding.
func (p *PostgresDB) SaveToTable(ctx context.Context, records any) error {

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	var count int64

	elemType := slice.Index(0).Interface()
	if err := p.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := p.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (p *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	err := p.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (p *PostgresDB) UpdateRecord(ctx context.Context, record any) error {
	err := p.DB.WithContext(ctx).Save(record).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, conds map[string]any, entity any) error {
	err := p.DB.WithContext(ctx).Where(conds).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %v: %w", conds, err)
	}
	return nil
}

func (p *PostgresDB) GetAllBy(ctx context.Context, conds map[string]any, order string, entity any) error {
	tx := p.DB.WithContext(ctx).Where(conds)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %v: %w", conds, err)
	}
	return nil
}

// DeleteBy removes all rows matching conds and reports how many were hit,
// so callers can tell a no-op delete from a successful one.
func (p *PostgresDB) DeleteBy(ctx context.Context, conds map[string]any, model any) (int64, error) {
	tx := p.DB.WithContext(ctx).Where(conds).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %v: %w", conds, tx.Error)
	}
	return tx.RowsAffected, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
