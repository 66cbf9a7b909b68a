package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/vtereshina/munch/internal/models"
	"github.com/vtereshina/munch/internal/services"
)

func openTestDatabase(t *testing.T) *Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "munch-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return NewRepositories(database)
}

func testUser(token string, name string, lastCheckin time.Time) models.User {
	return models.User{
		ID:          token,
		Name:        name,
		ServingSize: models.DefaultServingSize,
		Score:       0,
		Streak:      models.InitialStreak,
		LastCheckin: lastCheckin,
	}
}

func TestUserRepositoryFindByID(t *testing.T) {
	repos := openTestDatabase(t)

	if _, found, err := repos.Users.FindByID("missing-token"); err != nil || found {
		t.Fatalf("missing user: found=%v err=%v, want found=false err=nil", found, err)
	}

	user := testUser("token-1", "GrumpyHastyHeron", time.Now().UTC())
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	loaded, found, err := repos.Users.FindByID("token-1")
	if err != nil || !found {
		t.Fatalf("find user: found=%v err=%v", found, err)
	}
	if loaded.Name != "GrumpyHastyHeron" || loaded.Streak != 1 {
		t.Fatalf("unexpected user row: %+v", loaded)
	}
}

func TestUserRepositoryNameExists(t *testing.T) {
	repos := openTestDatabase(t)

	user := testUser("token-1", "SneakySpicyStoat", time.Now().UTC())
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	exists, err := repos.Users.NameExists("SneakySpicyStoat")
	if err != nil {
		t.Fatalf("name exists: %v", err)
	}
	if !exists {
		t.Fatal("expected taken name to be reported")
	}

	exists, err = repos.Users.NameExists("MellowNimbleNarwhal")
	if err != nil {
		t.Fatalf("name exists: %v", err)
	}
	if exists {
		t.Fatal("unused name reported as taken")
	}
}

func TestApplyCheckinUpdateWritesAllThreeFields(t *testing.T) {
	repos := openTestDatabase(t)

	lastCheckin := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	user := testUser("token-1", "JollyKeenKiwi", lastCheckin)
	user.Score = 120
	user.Streak = 3
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	now := time.Date(2025, 5, 2, 8, 30, 0, 0, time.UTC)
	if err := repos.Users.ApplyCheckinUpdate("token-1", lastCheckin, now, 4, 920); err != nil {
		t.Fatalf("apply check-in update: %v", err)
	}

	loaded, _, err := repos.Users.FindByID("token-1")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if loaded.Streak != 4 || loaded.Score != 920 {
		t.Fatalf("streak/score = %d/%d, want 4/920", loaded.Streak, loaded.Score)
	}
	if !loaded.LastCheckin.Equal(now) {
		t.Fatalf("last check-in = %v, want %v", loaded.LastCheckin, now)
	}
}

func TestApplyCheckinUpdateConflictsOnStaleRead(t *testing.T) {
	repos := openTestDatabase(t)

	lastCheckin := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	user := testUser("token-1", "RowdyZestyYak", lastCheckin)
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// A racing event moves last_checkin first.
	racedAt := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	if err := repos.Users.ApplyCheckinUpdate("token-1", lastCheckin, racedAt, 2, 50); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// The loser still holds the old last_checkin and must see a conflict.
	err := repos.Users.ApplyCheckinUpdate("token-1", lastCheckin, racedAt.Add(time.Minute), 2, 75)
	if !errors.Is(err, services.ErrCheckinConflict) {
		t.Fatalf("expected ErrCheckinConflict, got %v", err)
	}

	loaded, _, err := repos.Users.FindByID("token-1")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if loaded.Score != 50 || loaded.Streak != 2 {
		t.Fatalf("losing update leaked through: %+v", loaded)
	}
}
