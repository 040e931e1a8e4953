//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dracula-tv/media-backend/internal/model"
	"github.com/dracula-tv/media-backend/internal/password"
	repo "github.com/dracula-tv/media-backend/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "dracula_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/dracula_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func seedUser(t *testing.T, conn *repo.Connection, id, email, record string) {
	t.Helper()
	ctx := context.Background()
	_, err := conn.DB.ExecContext(ctx, `INSERT INTO "user" (id, name, email) VALUES ($1, $2, $3)`, id, "name-"+id, email)
	require.NoError(t, err)
	_, err = conn.DB.ExecContext(ctx,
		`INSERT INTO account (id, "accountId", "providerId", "userId", password) VALUES ($1, $2, 'credential', $2, $3)`,
		uuid.NewString(), id, record)
	require.NoError(t, err)
}

func TestAccountRepositories(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	hasher := password.NewHasher(password.DefaultParams())
	initial, err := hasher.Rotate("first-password")
	require.NoError(t, err)
	seedUser(t, conn, "acc-u1", "u1@example.com", initial.String())
	seedUser(t, conn, "acc-u2", "u2@example.com", initial.String())

	users := repo.NewUserRepository(conn.DB)
	creds := repo.NewCredentialRepository(conn.DB)

	t.Run("profile", func(t *testing.T) {
		u, err := users.GetByID(ctx, "acc-u1")
		require.NoError(t, err)
		require.Equal(t, "u1@example.com", u.Email)
		require.Nil(t, u.Image)

		taken, err := users.EmailTakenByOther(ctx, "u2@example.com", "acc-u1")
		require.NoError(t, err)
		require.True(t, taken)

		taken, err = users.EmailTakenByOther(ctx, "u1@example.com", "acc-u1")
		require.NoError(t, err)
		require.False(t, taken)

		image := "avatars/acc-u1/a.png"
		updated, err := users.Update(ctx, "acc-u1", model.ProfileUpdate{Image: &image})
		require.NoError(t, err)
		require.Equal(t, &image, updated.Image)
		require.Equal(t, u.Name, updated.Name)

		// bypasses EmailTakenByOther, as a racing request would
		other := "u2@example.com"
		_, err = users.Update(ctx, "acc-u1", model.ProfileUpdate{Email: &other})
		require.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("password rotation", func(t *testing.T) {
		stored, err := creds.GetPassword(ctx, "acc-u1")
		require.NoError(t, err)
		require.True(t, hasher.Verify("first-password", stored))

		next, err := hasher.Rotate("second-password")
		require.NoError(t, err)
		require.NoError(t, creds.UpdatePassword(ctx, "acc-u1", next.String()))

		stored, err = creds.GetPassword(ctx, "acc-u1")
		require.NoError(t, err)
		require.True(t, hasher.Verify("second-password", stored))

		other, err := creds.GetPassword(ctx, "acc-u2")
		require.NoError(t, err)
		require.True(t, hasher.Verify("first-password", other))
	})
}

func TestWatchlistRepository_Scoping(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	wr := repo.NewWatchlistRepository(conn.DB)

	create := func(userID, title string, status model.WatchStatus) model.WatchlistEntry {
		e, err := wr.Create(ctx, model.WatchlistEntry{
			ID:        uuid.New(),
			UserID:    userID,
			MediaID:   title,
			MediaType: model.MediaTypeMovie,
			Title:     title,
			Status:    status,
		})
		require.NoError(t, err)
		return e
	}

	mine := create("wl-u1", "first", model.WatchStatusPlanned)
	time.Sleep(10 * time.Millisecond)
	create("wl-u1", "second", model.WatchStatusWatching)
	theirs := create("wl-u2", "theirs", model.WatchStatusPlanned)

	list, err := wr.ListByUser(ctx, "wl-u1", model.WatchlistFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "second", list[0].Title)
	for _, e := range list {
		require.Equal(t, "wl-u1", e.UserID)
	}

	watching, err := wr.ListByUser(ctx, "wl-u1", model.WatchlistFilter{Status: model.WatchStatusWatching})
	require.NoError(t, err)
	require.Len(t, watching, 1)

	// owner mismatch in the WHERE clause leaves the row untouched
	hijack := theirs
	hijack.UserID = "wl-u1"
	hijack.Title = "hijacked"
	_, err = wr.Update(ctx, hijack)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, wr.Delete(ctx, theirs.ID, "wl-u1"), model.ErrNotFound)

	mine.Status = model.WatchStatusCompleted
	updated, err := wr.Update(ctx, mine)
	require.NoError(t, err)
	require.Equal(t, model.WatchStatusCompleted, updated.Status)
	require.Equal(t, "wl-u1", updated.UserID)

	require.NoError(t, wr.Delete(ctx, mine.ID, "wl-u1"))
	_, err = wr.GetByID(ctx, mine.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}
