//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"butler/internal/domain"
	mysqlrepo "butler/internal/storage/mysql"
)

const servicesDDL = `
CREATE TABLE IF NOT EXISTS services (
  id          VARCHAR(64)  NOT NULL PRIMARY KEY,
  name        VARCHAR(255) NOT NULL,
  description TEXT         NOT NULL,
  price       DECIMAL(10,2) NULL,
  duration    INT          NOT NULL DEFAULT 0,
  vendor      VARCHAR(255) NULL,
  location    VARCHAR(255) NULL,
  category    VARCHAR(64)  NULL,
  cuisine     VARCHAR(128) NULL,
  menu        JSON         NULL,
  created_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

func pf(v float64) *float64 { return &v }

func TestRepo_MySQL_UpsertAndFetch(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=butler",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "butler")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(servicesDDL); err != nil {
		t.Fatalf("create table: %v", err)
	}

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	seed := []domain.ServiceRecord{
		{
			ID: "taxi-1", Name: "Hotel Taxi Service", Description: "24/7 taxi service",
			Price: pf(25), Vendor: "Reliable Taxi Co.", Location: "Hotel entrance",
			Type: domain.CategoryTransport,
		},
		{
			ID: "rest-1", Name: "The Terrace", Description: "Rooftop restaurant",
			Price: pf(55), Type: domain.CategoryRestaurant, Cuisine: "Fine Dining",
			Menu: []domain.MenuItem{{Item: "Steak Frites", Price: "$42"}},
		},
		{
			ID: "spa-1", Name: "Swedish Massage", Description: "Full body massage",
			Price: pf(120), Duration: 60, Type: domain.CategorySpa,
		},
		{
			ID: "t1", Name: "Sunset Tour", Description: "Evening boat tour",
			Price: pf(30), Type: domain.CategoryTour,
		},
	}
	for _, s := range seed {
		if err := repo.UpsertService(ctx, s); err != nil {
			t.Fatalf("UpsertService(%s): %v", s.ID, err)
		}
	}

	// upsert is idempotent on id
	if err := repo.UpsertService(ctx, seed[0]); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	snap, err := repo.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(snap.Hotel.Services) != 4 {
		t.Fatalf("expected 4 hotel services, got %d", len(snap.Hotel.Services))
	}
	if len(snap.Restaurants) != 1 || snap.Restaurants[0].Cuisine != "Fine Dining" {
		t.Fatalf("unexpected restaurants: %+v", snap.Restaurants)
	}
	if len(snap.Restaurants[0].Menu) != 1 || snap.Restaurants[0].Menu[0].Item != "Steak Frites" {
		t.Fatalf("menu not round-tripped: %+v", snap.Restaurants[0].Menu)
	}
	if len(snap.SpaServices) != 1 || snap.SpaServices[0].Duration != 60 {
		t.Fatalf("unexpected spa services: %+v", snap.SpaServices)
	}
	if len(snap.Attractions) != 1 || snap.Attractions[0].ID != "t1" {
		t.Fatalf("unexpected attractions: %+v", snap.Attractions)
	}
	var taxi *domain.ServiceRecord
	for i := range snap.Hotel.Services {
		if snap.Hotel.Services[i].ID == "taxi-1" {
			taxi = &snap.Hotel.Services[i]
		}
	}
	if taxi == nil {
		t.Fatalf("taxi-1 missing from hotel services")
	}
	if taxi.Price == nil || *taxi.Price != 25 {
		t.Fatalf("price not round-tripped: %+v", taxi.Price)
	}
	if taxi.Type != domain.CategoryTransport || taxi.Vendor != "Reliable Taxi Co." {
		t.Fatalf("unexpected taxi record: %+v", taxi)
	}
}
