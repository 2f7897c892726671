package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
)

// BlogService manages blog posts and mirrors them into Elasticsearch for
// the public search endpoint. Indexing is best-effort: a failed index call
// never fails the store mutation.
type BlogService struct {
	Repo    repository.BlogRepository
	ES      *elasticsearch.Client
	ESIndex string
	Logger  *logrus.Logger
}

func (s *BlogService) List(ctx context.Context) ([]entity.BlogPost, error) {
	return s.Repo.List(ctx)
}

type AddPostInput struct {
	Title         string
	Excerpt       string
	Content       string
	Category      string
	ReadTime      string
	ImageURL      string
	PublishedDate string // ISO date; empty defaults to today
}

func (s *BlogService) AddPost(ctx context.Context, in AddPostInput) (*entity.BlogPost, error) {
	published := time.Now().Truncate(24 * time.Hour)
	if in.PublishedDate != "" {
		d, err := time.Parse("2006-01-02", in.PublishedDate)
		if err == nil {
			published = d
		}
	}
	if in.Category == "" {
		in.Category = "Development"
	}
	if in.ReadTime == "" {
		in.ReadTime = "5 min read"
	}
	p := &entity.BlogPost{
		Title:         in.Title,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		Category:      in.Category,
		ReadTime:      in.ReadTime,
		ImageURL:      in.ImageURL,
		PublishedDate: published,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, p)
	return p, nil
}

func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *BlogService) indexPost(ctx context.Context, p *entity.BlogPost) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":             p.ID,
		"title":          p.Title,
		"excerpt":        p.Excerpt,
		"content":        p.Content,
		"category":       p.Category,
		"read_time":      p.ReadTime,
		"image_url":      p.ImageURL,
		"published_date": p.PublishedDate.Format("2006-01-02"),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *BlogService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over title, excerpt and content.
func (s *BlogService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "excerpt", "content"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
