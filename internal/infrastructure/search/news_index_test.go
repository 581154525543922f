package search_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	"github.com/oksasatya/go-newsroom/internal/infrastructure/search"
)

type recorded struct {
	method string
	path   string
	body   string
}

// fakeES answers like an Elasticsearch node and records what it was asked.
func fakeES(t *testing.T, handle func(w http.ResponseWriter, r *http.Request)) (*elasticsearch.Client, *[]recorded) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, recorded{method: r.Method, path: r.URL.Path, body: string(b)})
		mu.Unlock()
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handle(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es, &reqs
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestIndexPutsDocument(t *testing.T) {
	es, reqs := fakeES(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})
	idx := search.NewNewsIndex(es, "news", quietLogger())

	err := idx.Index(context.Background(), &entity.NewsItem{
		ID:        "n1",
		Title:     "Rates rise",
		Body:      "The central bank raised rates again.",
		Category:  entity.CategoryBusiness,
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	require.Equal(t, http.MethodPut, got.method)
	require.Equal(t, "/news/_doc/n1", got.path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.body), &doc))
	require.Equal(t, "Rates rise", doc["title"])
	require.Equal(t, "Business", doc["category"])
}

func TestIndexReportsErrorStatus(t *testing.T) {
	es, _ := fakeES(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad"}`))
	})
	idx := search.NewNewsIndex(es, "news", quietLogger())

	err := idx.Index(context.Background(), &entity.NewsItem{ID: "n1"})
	require.Error(t, err)
}

func TestRemoveToleratesMissingDocument(t *testing.T) {
	es, reqs := fakeES(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result":"not_found"}`))
	})
	idx := search.NewNewsIndex(es, "news", quietLogger())

	require.NoError(t, idx.Remove(context.Background(), "gone"))
	require.Equal(t, http.MethodDelete, (*reqs)[0].method)
	require.Equal(t, "/news/_doc/gone", (*reqs)[0].path)
}

func TestSearchReturnsHitIDsInOrder(t *testing.T) {
	es, reqs := fakeES(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hits":{"hits":[{"_id":"b"},{"_id":"a"}]}}`))
	})
	idx := search.NewNewsIndex(es, "news", quietLogger())

	ids, err := idx.Search(context.Background(), "rates", 20)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, ids)

	got := (*reqs)[0]
	require.True(t, strings.HasSuffix(got.path, "/news/_search"))
	require.Contains(t, got.body, `"multi_match"`)
	require.Contains(t, got.body, `"title^2"`)
	require.Contains(t, got.body, `"size":20`)
}

func TestSearchFailsOnErrorStatus(t *testing.T) {
	es, _ := fakeES(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{}`))
	})
	idx := search.NewNewsIndex(es, "news", quietLogger())

	_, err := idx.Search(context.Background(), "rates", 20)
	require.Error(t, err)
}

func TestIndexUsesConfiguredName(t *testing.T) {
	es, reqs := fakeES(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":"created","hits":{"hits":[]}}`))
	})
	idx := search.NewNewsIndex(es, "newsroom-news", quietLogger())
	ctx := context.Background()

	require.NoError(t, idx.Index(ctx, &entity.NewsItem{ID: "n1"}))
	require.NoError(t, idx.Remove(ctx, "n1"))
	_, err := idx.Search(ctx, "q", 5)
	require.NoError(t, err)

	require.Len(t, *reqs, 3)
	for _, r := range *reqs {
		require.True(t, strings.HasPrefix(r.path, "/newsroom-news/"), r.path)
	}
}

func TestEnsureIndexCreatesMissingIndex(t *testing.T) {
	es, reqs := fakeES(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"acknowledged":true}`))
	})
	idx := search.NewNewsIndex(es, "news", quietLogger())

	require.NoError(t, idx.EnsureIndex(context.Background()))
	require.Len(t, *reqs, 2)
	create := (*reqs)[1]
	require.Equal(t, http.MethodPut, create.method)
	require.Equal(t, "/news", create.path)
	require.Contains(t, create.body, `"mappings"`)
}

func TestEnsureIndexSkipsExistingIndex(t *testing.T) {
	es, reqs := fakeES(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	idx := search.NewNewsIndex(es, "news", quietLogger())

	require.NoError(t, idx.EnsureIndex(context.Background()))
	require.Len(t, *reqs, 1)
	require.Equal(t, http.MethodHead, (*reqs)[0].method)
}

func TestEnsureIndexToleratesCreateRace(t *testing.T) {
	es, _ := fakeES(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"resource_already_exists_exception"},"status":400}`))
	})
	idx := search.NewNewsIndex(es, "news", quietLogger())

	require.NoError(t, idx.EnsureIndex(context.Background()))
}
