package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// NewsIndex keeps a searchable copy of news titles and bodies in Elasticsearch.
// The flat store stays authoritative; documents here only carry what search needs.
type NewsIndex struct {
	ES     *elasticsearch.Client
	Name   string
	Logger logrus.FieldLogger
}

var _ application.NewsIndex = (*NewsIndex)(nil)

func NewNewsIndex(es *elasticsearch.Client, index string, logger logrus.FieldLogger) *NewsIndex {
	return &NewsIndex{ES: es, Name: index, Logger: logger}
}

type newsDoc struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Category   string `json:"category"`
	AuthorName string `json:"author_name"`
	CreatedAt  string `json:"created_at"`
}

const newsMapping = `{
  "mappings": {
    "properties": {
      "id":          {"type": "keyword"},
      "title":       {"type": "text"},
      "body":        {"type": "text"},
      "category":    {"type": "keyword"},
      "author_name": {"type": "text"},
      "created_at":  {"type": "date"}
    }
  }
}`

// EnsureIndex creates the index with its mapping unless it already exists.
func (x *NewsIndex) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	exists, err := esapi.IndicesExistsRequest{Index: []string{x.Name}}.Do(c, x.ES)
	if err != nil {
		return err
	}
	_ = exists.Body.Close()
	if exists.StatusCode == 200 {
		return nil
	}

	res, err := esapi.IndicesCreateRequest{Index: x.Name, Body: strings.NewReader(newsMapping)}.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		// a concurrent starter may have won the race
		var body struct {
			Error struct {
				Type string `json:"type"`
			} `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&body)
		if body.Error.Type == "resource_already_exists_exception" {
			return nil
		}
		return fmt.Errorf("es create index: %s", res.Status())
	}
	return nil
}

func (x *NewsIndex) Index(ctx context.Context, n *entity.NewsItem) error {
	b, err := json.Marshal(newsDoc{
		ID:         n.ID,
		Title:      n.Title,
		Body:       n.Body,
		Category:   string(n.Category),
		AuthorName: n.AuthorName,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.Name, DocumentID: n.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		x.warn(err, n.ID, "es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		err = fmt.Errorf("es index: %s", res.Status())
		x.warn(err, n.ID, "es index response error")
		return err
	}
	return nil
}

// Remove deletes the document for id. A document that was never indexed is not an error.
func (x *NewsIndex) Remove(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{Index: x.Name, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		x.warn(err, id, "es delete failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		err = fmt.Errorf("es delete: %s", res.Status())
		x.warn(err, id, "es delete response error")
		return err
	}
	return nil
}

// Search runs a multi_match over title and body and returns the matching ids.
func (x *NewsIndex) Search(ctx context.Context, q string, size int) ([]string, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "body"},
			},
		},
		"size":    size,
		"_source": false,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.Name),
		x.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		x.warn(err, "", "es search failed")
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		err = fmt.Errorf("es search: %s", res.Status())
		x.warn(err, "", "es search response error")
		return nil, err
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}

func (x *NewsIndex) warn(err error, newsID, msg string) {
	if x.Logger == nil {
		return
	}
	l := x.Logger.WithError(err).WithField("index", x.Name)
	if newsID != "" {
		l = l.WithField("news_id", newsID)
	}
	l.Warn(msg)
}
