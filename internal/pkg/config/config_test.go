package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.Port != "8080" || cfg.Store != StoreMongo || cfg.Lock.Backend != LockRedis {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour || cfg.Lock.Timeout != 5*time.Second {
		t.Fatalf("unexpected durations: %v %v", cfg.TokenTTL, cfg.Lock.Timeout)
	}
	if cfg.Mongo.Database != "systrack" || cfg.AuditWorkers != 4 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Mongo.Transactions {
		t.Fatalf("mongo transactions must be on by default")
	}
	if cfg.Lock.TTL != 10*time.Second {
		t.Fatalf("unexpected lock ttl: %v", cfg.Lock.TTL)
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE":        "memory",
		"LOCK_BACKEND": "local",
		"PART_TYPES":   "RAM:false,Dock:true",
		"LOCK_TIMEOUT": "250ms",
	}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.Store != StoreMemory || cfg.Lock.Backend != LockLocal {
		t.Fatalf("unexpected backends: %+v", cfg)
	}
	if len(cfg.PartTypes) != 2 || !cfg.PartTypes["Dock"] || cfg.PartTypes["RAM"] {
		t.Fatalf("unexpected part types: %v", cfg.PartTypes)
	}
	if cfg.Lock.Timeout != 250*time.Millisecond {
		t.Fatalf("unexpected lock timeout: %v", cfg.Lock.Timeout)
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	cases := []map[string]string{
		{"STORE": "postgres"},
		{"LOCK_BACKEND": "zookeeper"},
		{"ENV": "production"},
	}
	for _, env := range cases {
		if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
			t.Fatalf("expected error for %v", env)
		}
	}
}
