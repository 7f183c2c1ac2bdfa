//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"loop/internal/config"
	"loop/internal/dbmongo"
	"loop/internal/dbmysql"
	"loop/internal/events"
	"loop/internal/httpapi"
)

// This is just a declaration — wire will generate the real body
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewObjectStore,
		events.NewBus,
		ProvideServices,
		wire.FieldsOf(new(*Services), "Groups", "Roster", "Media", "Users"),
		httpapi.NewServer,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil // dummy for compilation
}
