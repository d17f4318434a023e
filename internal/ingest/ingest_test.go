package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/normalize"
	"github.com/FlagBrew/local-dex/internal/pokeapi"
	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return log.NewContext(context.Background(), &log.Logger{Handler: discard.New(), Level: log.DebugLevel})
}

type fakeFetcher struct {
	missing map[int]bool
	broken  map[int]bool
	calls   []int
}

func (f *fakeFetcher) Fetch(_ context.Context, kind models.Kind, id int) (*pokeapi.RawRecord, error) {
	f.calls = append(f.calls, id)
	if f.missing[id] {
		return nil, pokeapi.ErrNotFound
	}
	if f.broken[id] {
		return nil, &pokeapi.FetchError{URL: "test", Attempts: 3, Err: errors.New("connection reset")}
	}
	body := fmt.Sprintf(`{"id": %d, "name": "move-%d"}`, id, id)
	return &pokeapi.RawRecord{Kind: kind, ID: id, Body: json.RawMessage(body)}, nil
}

type fakeNormalizer struct {
	bad map[int]bool
}

func (n *fakeNormalizer) Normalize(_ context.Context, _ models.Kind, raw *pokeapi.RawRecord) (models.Entity, error) {
	if n.bad[raw.ID] {
		return nil, errors.New("malformed")
	}
	return &models.Move{MoveID: raw.ID, Name: "move-" + strconv.Itoa(raw.ID)}, nil
}

type memStore struct {
	rows      map[int]models.Entity
	failWrite bool
	conflict  bool
}

func newMemStore(ids ...int) *memStore {
	s := &memStore{rows: map[int]models.Entity{}}
	for _, id := range ids {
		s.rows[id] = &models.Move{MoveID: id}
	}
	return s
}

func (s *memStore) Exists(_ context.Context, _ models.Kind, key any) (bool, error) {
	_, ok := s.rows[key.(int)]
	return ok, nil
}

func (s *memStore) Insert(_ context.Context, e models.Entity) error {
	if s.failWrite {
		return errors.New("disk full")
	}
	if s.conflict {
		return database.ErrConflict
	}
	s.rows[e.NaturalKey().(int)] = e
	return nil
}

func TestIngestCountsEveryOutcome(t *testing.T) {
	fetcher := &fakeFetcher{missing: map[int]bool{3: true}, broken: map[int]bool{4: true}}
	store := newMemStore(2)

	var results []Result
	o := New(fetcher, &fakeNormalizer{bad: map[int]bool{5: true}}, store, WithOnResult(func(r Result) {
		results = append(results, r)
	}))

	s, err := o.Ingest(testContext(), models.KindMove, 1, 6)
	require.NoError(t, err)
	require.Equal(t, 2, s.Success)
	require.Equal(t, 1, s.Skipped)
	require.Equal(t, 3, s.Failed)
	require.Equal(t, 6, s.Total())
	require.NotEmpty(t, s.RunID)

	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, fetcher.calls)
	require.Len(t, results, 6)
	require.Equal(t, OutcomeInserted, results[0].Outcome)
	require.Equal(t, OutcomeSkipped, results[1].Outcome)
	require.ErrorIs(t, results[2].Err, pokeapi.ErrNotFound)
	require.ErrorIs(t, results[3].Err, pokeapi.ErrFetchFailed)
	require.Equal(t, OutcomeFailed, results[4].Outcome)
	require.Equal(t, OutcomeInserted, results[5].Outcome)
}

func TestIngestIsIdempotent(t *testing.T) {
	store := newMemStore()
	o := New(&fakeFetcher{}, &fakeNormalizer{}, store)

	first, err := o.Ingest(testContext(), models.KindMove, 1, 5)
	require.NoError(t, err)
	require.Equal(t, 5, first.Success)

	second, err := o.Ingest(testContext(), models.KindMove, 1, 5)
	require.NoError(t, err)
	require.Zero(t, second.Success)
	require.Equal(t, 5, second.Skipped)
	require.Len(t, store.rows, 5)
}

func TestIngestStorageErrors(t *testing.T) {
	store := newMemStore()
	store.failWrite = true

	s, err := New(&fakeFetcher{}, &fakeNormalizer{}, store).Ingest(testContext(), models.KindMove, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, s.Failed)

	store.failWrite = false
	store.conflict = true

	s, err = New(&fakeFetcher{}, &fakeNormalizer{}, store).Ingest(testContext(), models.KindMove, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, s.Skipped)
}

func TestIngestRejectsInvalidRequests(t *testing.T) {
	fetcher := &fakeFetcher{}
	o := New(fetcher, &fakeNormalizer{}, newMemStore())

	_, err := o.Ingest(testContext(), models.KindMove, 0, 5)
	require.Error(t, err)

	_, err = o.Ingest(testContext(), models.KindMove, 5, 4)
	require.Error(t, err)

	_, err = o.Ingest(testContext(), models.Kind("berry"), 1, 5)
	require.Error(t, err)

	require.Empty(t, fetcher.calls)
}

func TestIngestStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())

	o := New(&fakeFetcher{}, &fakeNormalizer{}, newMemStore(), WithOnResult(func(r Result) {
		if r.ID == 2 {
			cancel()
		}
	}))

	s, err := o.Ingest(ctx, models.KindMove, 1, 10)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 2, s.Success)
}

// fakeAPI serves a tiny PokeAPI: pokemon 1-3 with their species.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 2 {
			http.NotFound(w, r)
			return
		}
		id, err := strconv.Atoi(parts[1])
		if err != nil || id > 3 {
			http.NotFound(w, r)
			return
		}

		switch parts[0] {
		case "pokemon":
			fmt.Fprintf(w, `{
				"id": %[1]d, "name": "poke-%[1]d", "height": 7, "weight": 69,
				"species": {"name": "poke-%[1]d", "url": "%[2]s/pokemon-species/%[1]d/"},
				"stats": [
					{"base_stat": 45, "stat": {"name": "hp"}},
					{"base_stat": 49, "stat": {"name": "attack"}},
					{"base_stat": 49, "stat": {"name": "defense"}},
					{"base_stat": 65, "stat": {"name": "special-attack"}},
					{"base_stat": 65, "stat": {"name": "special-defense"}},
					{"base_stat": 45, "stat": {"name": "speed"}}
				],
				"types": [{"slot": 1, "type": {"name": "grass"}}],
				"abilities": [{"slot": 1, "is_hidden": false, "ability": {"name": "overgrow"}}]
			}`, id, srv.URL)
		case "pokemon-species":
			fmt.Fprintf(w, `{
				"id": %[1]d, "gender_rate": 1, "capture_rate": 45,
				"growth_rate": {"name": "medium-slow"},
				"egg_groups": [{"name": "monster"}],
				"names": [{"name": "宝可梦%[1]d", "language": {"name": "zh-Hans"}}],
				"genera": [{"genus": "种子宝可梦", "language": {"name": "zh-Hans"}}]
			}`, id)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestIngestEndToEnd(t *testing.T) {
	ctx := testContext()
	srv := fakeAPI(t)

	db, err := database.New(ctx, &models.DatabaseConfig{
		DBType:           "sqlite",
		ConnectionString: "file:" + filepath.Join(t.TempDir(), "dex.db") + "?_pragma=foreign_keys(1)",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	require.NoError(t, db.Insert(ctx, &models.Pokemon{NationalDex: 1, Name: "妙蛙种子", Type1: "草"}))

	client := pokeapi.New(&models.IngestConfig{BaseURL: srv.URL, Timeout: 5, MaxRetries: 3})
	o := New(client, normalize.New(client), db)

	s, err := o.Ingest(ctx, models.KindPokemon, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, s.Success)
	require.Equal(t, 1, s.Skipped)
	require.Zero(t, s.Failed)

	p, err := db.GetPokemonByDex(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "宝可梦2", p.Name)
	require.Equal(t, "poke-2", p.EnglishName)
	require.Equal(t, p.HP+p.Attack+p.Defense+p.SpAttack+p.SpDefense+p.Speed, p.TotalStats)
	require.Equal(t, []string{"怪兽"}, p.EggGroups)

	s, err = o.Ingest(ctx, models.KindPokemon, 1, 4)
	require.NoError(t, err)
	require.Zero(t, s.Success)
	require.Equal(t, 3, s.Skipped)
	require.Equal(t, 1, s.Failed)
	require.Equal(t, 4, s.Total())
}
