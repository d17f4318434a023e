package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *models.IngestConfig {
	return &models.IngestConfig{
		BaseURL:      baseURL,
		UserAgent:    "local-dex-test",
		Timeout:      5,
		MaxRetries:   3,
		RetryDelay:   0.001,
		RequestDelay: 0,
	}
}

func TestFetch(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "name": "bulbasaur"}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL + "/"))
	rec, err := c.Fetch(context.Background(), models.KindPokemon, 1)
	require.NoError(t, err)
	require.Equal(t, "/pokemon/1/", gotPath)
	require.Equal(t, "local-dex-test", gotUA)
	require.Equal(t, models.KindPokemon, rec.Kind)
	require.Equal(t, 1, rec.ID)

	var body struct {
		Name string `json:"name"`
	}
	require.NoError(t, rec.Decode(&body))
	require.Equal(t, "bulbasaur", body.Name)
}

func TestFetchNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.NotFound(w, nil)
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL)).Fetch(context.Background(), models.KindMove, 9999)
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrFetchFailed)
	require.EqualValues(t, 1, calls.Load())
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		switch calls.Add(1) {
		case 1:
			w.WriteHeader(http.StatusServiceUnavailable)
		case 2:
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_, _ = w.Write([]byte(`{"id": 33}`))
		}
	}))
	defer srv.Close()

	rec, err := New(testConfig(srv.URL)).Fetch(context.Background(), models.KindAbility, 33)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.EqualValues(t, 3, calls.Load())
}

func TestFetchRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL)).Fetch(context.Background(), models.KindItem, 1)
	require.ErrorIs(t, err, ErrFetchFailed)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 3, fe.Attempts)
	require.Equal(t, http.StatusBadGateway, fe.StatusCode)
	require.EqualValues(t, 3, calls.Load())
}

func TestFetchClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL)).Fetch(context.Background(), models.KindItem, 1)
	require.ErrorIs(t, err, ErrFetchFailed)
	require.EqualValues(t, 1, calls.Load())
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	u := srv.URL
	srv.Close()

	_, err := New(testConfig(u)).Fetch(context.Background(), models.KindPokemon, 1)
	require.ErrorIs(t, err, ErrFetchFailed)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 3, fe.Attempts)
	require.Zero(t, fe.StatusCode)
}

func TestFetchUnknownKind(t *testing.T) {
	_, err := New(testConfig("http://127.0.0.1:1")).Fetch(context.Background(), models.Kind("berry"), 1)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestFetchHonoursCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.RetryDelay = 60

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := New(cfg).Fetch(ctx, models.KindPokemon, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"gender_rate": 1}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL))
	body, err := c.FetchURL(context.Background(), srv.URL+"/pokemon-species/1/")
	require.NoError(t, err)
	require.Equal(t, "/pokemon-species/1/", gotPath)
	require.JSONEq(t, `{"gender_rate": 1}`, string(body))

	_, err = c.FetchURL(context.Background(), "")
	require.Error(t, err)
}

// recordSleeps replaces the client's sleep with one that only records the
// requested durations.
func recordSleeps(c *Client) *[]time.Duration {
	var slept []time.Duration
	c.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return ctx.Err()
	}
	return &slept
}

func TestFetchDelays(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/pokemon-species/1/" {
			_, _ = w.Write([]byte(`{"id": 1}`))
			return
		}
		if r.URL.Path == "/pokemon/404/" {
			http.NotFound(w, r)
			return
		}
		if calls.Add(1) <= 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 4
	cfg.RetryDelay = 2
	cfg.RequestDelay = 1.5

	c := New(cfg)
	slept := recordSleeps(c)

	_, err := c.Fetch(context.Background(), models.KindPokemon, 1)
	require.NoError(t, err)
	require.Equal(t, []time.Duration{
		2 * time.Second,
		4 * time.Second,
		6 * time.Second,
		1500 * time.Millisecond,
	}, *slept)

	*slept = nil
	_, err = c.FetchURL(context.Background(), srv.URL+"/pokemon-species/1/")
	require.NoError(t, err)
	require.Equal(t, []time.Duration{1500 * time.Millisecond}, *slept)

	*slept = nil
	_, err = c.Fetch(context.Background(), models.KindPokemon, 404)
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, *slept)
}

func TestFetchNoRequestDelayAfterFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.RetryDelay = 1
	cfg.RequestDelay = 10

	c := New(cfg)
	slept := recordSleeps(c)

	_, err := c.Fetch(context.Background(), models.KindMove, 1)
	require.ErrorIs(t, err, ErrFetchFailed)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *slept)
}
