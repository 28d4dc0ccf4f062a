package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	CreateRecord(ctx context.Context, record any) error
	UpdateRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, conds map[string]any, entity any) error
	GetAllBy(ctx context.Context, conds map[string]any, order string, entity any) error
	DeleteBy(ctx context.Context, conds map[string]any, model any) (int64, error)
}
