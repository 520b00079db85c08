package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MOVIES_TABLE", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("ARCHIVE_ENABLED", "")

	cfg := Load()
	if cfg.Table != "movies" {
		t.Errorf("Table: got %q, want %q", cfg.Table, "movies")
	}
	if cfg.StoreDriver != "sqlite" {
		t.Errorf("StoreDriver: got %q, want sqlite", cfg.StoreDriver)
	}
	if !cfg.ArchiveEnabled {
		t.Error("ArchiveEnabled should default to true")
	}
	if cfg.StoreDSN() != cfg.DBPath {
		t.Errorf("sqlite StoreDSN: got %q, want db path %q", cfg.StoreDSN(), cfg.DBPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "films")
	t.Setenv("ARCHIVE_ENABLED", "false")

	cfg := Load()
	if cfg.StoreDriver != "postgres" {
		t.Errorf("StoreDriver: got %q, want postgres", cfg.StoreDriver)
	}
	if cfg.ArchiveEnabled {
		t.Error("ARCHIVE_ENABLED=false should disable archiving")
	}
	want := "host=db port=5432 user=movies password=movies dbname=films sslmode=disable"
	if got := cfg.StoreDSN(); got != want {
		t.Errorf("StoreDSN: got %q, want %q", got, want)
	}
}

func TestGetEnvBoolInvalidFallsBack(t *testing.T) {
	t.Setenv("ARCHIVE_ENABLED", "maybe")
	if getEnvBool("ARCHIVE_ENABLED", true) != true {
		t.Error("invalid bool should fall back to default")
	}
}
