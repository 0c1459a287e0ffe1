package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clientdesk/client-management/internal/core/domain"
)

func newTestRepo(t *testing.T) (*ClientRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.json")
	repo, err := NewClientRepository(path)
	require.NoError(t, err)
	return repo, path
}

func testClient(id, name string) *domain.Client {
	return &domain.Client{
		ID:        id,
		Name:      name,
		LastName:  "Tester",
		Age:       30,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewClientRepository_CreatesEmptyStore(t *testing.T) {
	repo, path := newTestRepo(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "constructor must create the store file")
	require.JSONEq(t, "[]", string(data))

	clients, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, clients)
}

func TestNewClientRepository_KeepsExistingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")
	seed := `[{"id":"id-1","name":"Alice","last_name":"Smith","age":30,"created_at":"2026-03-01T12:00:00Z"}]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	repo, err := NewClientRepository(path)
	require.NoError(t, err)

	clients, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1, "existing records must survive construction")
	require.Equal(t, "Alice", clients[0].Name)
}

func TestNewClientRepository_UnwritablePathFails(t *testing.T) {
	_, err := NewClientRepository(filepath.Join(t.TempDir(), "missing", "clients.json"))
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestClientRepository_SaveAndFindByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	saved := testClient("id-1", "Alice")
	require.NoError(t, repo.Save(ctx, saved))

	got, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, saved.Name, got.Name)
	require.Equal(t, saved.LastName, got.LastName)
	require.Equal(t, saved.Age, got.Age)
	require.True(t, saved.CreatedAt.Equal(got.CreatedAt), "CreatedAt must round-trip through the file")
}

func TestClientRepository_FindByID_AbsentIsNotAnError(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.FindByID(context.Background(), "missing-id")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestClientRepository_Save_DuplicateLeavesStoreUntouched(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testClient("id-1", "Alice")))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = repo.Save(ctx, testClient("id-1", "Impostor"))
	require.ErrorIs(t, err, domain.ErrDuplicateClient)
	require.Contains(t, err.Error(), "id-1", "error must identify the duplicate id")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(before), string(after), "failed save must not rewrite the file")
}

func TestClientRepository_FindAll_PreservesInsertionOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for i, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, repo.Save(ctx, testClient(fmt.Sprintf("id-%d", i), name)))
	}

	clients, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	for i, want := range []string{"First", "Second", "Third"} {
		require.Equal(t, want, clients[i].Name, "position %d", i)
	}

	again, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, clients, again, "reads without intervening writes must be identical")
}

func TestClientRepository_Update_ReplacesWholesale(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testClient("id-1", "Alice")))

	replacement := testClient("id-1", "Alicia")
	replacement.Age = 31
	require.NoError(t, repo.Update(ctx, replacement))

	got, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.Equal(t, "Alicia", got.Name)
	require.Equal(t, 31, got.Age)

	clients, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1, "update must replace, never append")
}

func TestClientRepository_Update_AbsentIDFailsWithoutWriting(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testClient("id-1", "Alice")))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = repo.Update(ctx, testClient("missing-id", "Ghost"))
	require.ErrorIs(t, err, domain.ErrClientNotFound, "there is no upsert")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestClientRepository_Delete_RemovesAndReports(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testClient("id-1", "Alice")))
	require.NoError(t, repo.Save(ctx, testClient("id-2", "Bob")))

	removed, err := repo.Delete(ctx, "id-1")
	require.NoError(t, err)
	require.True(t, removed)

	clients, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, "id-2", clients[0].ID)
}

func TestClientRepository_Delete_AbsentReturnsFalseWithoutRewrite(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testClient("id-1", "Alice")))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, "missing-id")
	require.NoError(t, err, "removing nothing is not an error")
	require.False(t, removed)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestClientRepository_SelfHealsDeletedFile(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testClient("id-1", "Alice")))
	require.NoError(t, os.Remove(path))

	clients, err := repo.FindAll(ctx)
	require.NoError(t, err, "a deleted store reads as empty")
	require.Empty(t, clients)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "the store file must be recreated")
	require.JSONEq(t, "[]", string(data))

	require.NoError(t, repo.Save(ctx, testClient("id-2", "Bob")), "the healed store must accept writes")
}

func TestClientRepository_CorruptStoreIsNotHealed(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	corrupt := "{definitely not an array"
	require.NoError(t, os.WriteFile(path, []byte(corrupt), 0o644))

	_, err := repo.FindAll(ctx)
	require.ErrorIs(t, err, domain.ErrStoreCorrupted)

	_, err = repo.FindByID(ctx, "id-1")
	require.ErrorIs(t, err, domain.ErrStoreCorrupted)

	err = repo.Save(ctx, testClient("id-1", "Alice"))
	require.ErrorIs(t, err, domain.ErrStoreCorrupted, "writes must fail while the store is corrupt")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, corrupt, string(data), "corrupt content must be left for manual recovery")
}

func TestClientRepository_DocumentShape(t *testing.T) {
	repo, path := newTestRepo(t)

	require.NoError(t, repo.Save(context.Background(), testClient("id-1", "Alice")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	for _, key := range []string{"id", "name", "last_name", "age", "created_at"} {
		require.Contains(t, records[0], key)
	}
	require.Equal(t, "2026-03-01T12:00:00Z", records[0]["created_at"])
}

func TestClientRepository_ConcurrentSavesAreSerialized(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	const n = 25
	errs := make(chan error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs <- repo.Save(ctx, testClient(fmt.Sprintf("id-%d", i), "Concurrent"))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	clients, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, n, "every concurrent save must survive")
}
