package services

import (
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/test/util"
)

func setupClient(t *testing.T) *ent.Client {
	client, _ := util.SetupTestDatabase(t)
	return client
}
