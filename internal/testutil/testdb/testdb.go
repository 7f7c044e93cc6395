//go:build testutil
// +build testutil

package testdb

import (
	"context"
	"errors"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Spok95/college-erp-mcp/internal/db"
)

type DBHandle struct {
	Client *mongo.Client
	DB     *mongo.Database
	cancel func()
	stop   func(context.Context) error
}

func (h *DBHandle) Close() {
	if h.Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = h.Client.Disconnect(ctx)
		cancel()
	}
	if h.stop != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.stop(ctx)
	}
	if h.cancel != nil {
		h.cancel()
	}
}

func Start(ctx context.Context) (*DBHandle, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	mc, err := tcmongo.RunContainer(ctx, tc.WithImage("mongo:7"))
	if err != nil {
		cancel()
		return nil, err
	}

	uri, err := mc.ConnectionString(ctx)
	if err != nil {
		_ = mc.Terminate(ctx)
		cancel()
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = mc.Terminate(ctx)
		cancel()
		return nil, err
	}
	if err := waitReady(ctx, client); err != nil {
		_ = mc.Terminate(ctx)
		cancel()
		return nil, err
	}

	database := client.Database("college_erp_test")
	if err := db.EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(ctx)
		_ = mc.Terminate(ctx)
		cancel()
		return nil, err
	}

	return &DBHandle{
		Client: client,
		DB:     database,
		cancel: cancel,
		stop:   mc.Terminate,
	}, nil
}

func waitReady(ctx context.Context, client *mongo.Client) error {
	dead := time.Now().Add(20 * time.Second)
	for time.Now().Before(dead) {
		if err := client.Ping(ctx, readpref.Primary()); err == nil {
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return errors.New("db not ready")
}
