package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/param211/corpmart/internal/config"
	"github.com/param211/corpmart/internal/migration"
	"github.com/param211/corpmart/internal/observability"
	"github.com/param211/corpmart/internal/server"
	"github.com/param211/corpmart/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
