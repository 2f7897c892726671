package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yudhapratama/portfolio-api/internal/application"
	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
	"github.com/yudhapratama/portfolio-api/pkg/validation"
)

type memEducationRepo struct {
	rows    []entity.Education
	creates int
}

func (m *memEducationRepo) List(context.Context) ([]entity.Education, error) { return m.rows, nil }
func (m *memEducationRepo) Count(context.Context) (int, error)               { return len(m.rows), nil }
func (m *memEducationRepo) Create(_ context.Context, e *entity.Education) error {
	m.creates++
	e.ID = strconv.Itoa(len(m.rows) + 1)
	m.rows = append(m.rows, *e)
	return nil
}
func (m *memEducationRepo) Delete(_ context.Context, id string) error {
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memServiceRepo struct {
	rows    []entity.Service
	creates int
}

func (m *memServiceRepo) List(context.Context) ([]entity.Service, error) { return m.rows, nil }
func (m *memServiceRepo) Count(context.Context) (int, error)             { return len(m.rows), nil }
func (m *memServiceRepo) Create(_ context.Context, s *entity.Service) error {
	m.creates++
	s.ID = strconv.Itoa(len(m.rows) + 1)
	m.rows = append(m.rows, *s)
	return nil
}
func (m *memServiceRepo) Delete(context.Context, string) error { return nil }

func newContentRouter(edu *memEducationRepo, svcRepo *memServiceRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	svc := &application.ContentService{Education: edu, Services: svcRepo}
	ch := NewContentHandler(svc, nil)
	ph := NewPortfolioHandler(svc, nil)

	r := gin.New()
	r.GET("/api/education", ch.ListEducation)
	r.POST("/api/admin/education", ch.AddEducation)
	r.DELETE("/api/admin/education/:id", ch.DeleteEducation)
	r.GET("/api/services", ph.ListServices)
	r.POST("/api/admin/services", ph.AddService)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddEducationValidationShortCircuitsStore(t *testing.T) {
	edu := &memEducationRepo{}
	r := newContentRouter(edu, &memServiceRepo{})

	w := doJSON(t, r, http.MethodPost, "/api/admin/education",
		`{"degree":"","institution":"UI","year":"2015"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, edu.creates, "store must not be invoked on validation failure")

	var resp struct {
		Success bool              `json:"success"`
		Error   map[string]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "degree")
}

func TestEducationInsertThenListAndDelete(t *testing.T) {
	edu := &memEducationRepo{}
	r := newContentRouter(edu, &memServiceRepo{})

	w := doJSON(t, r, http.MethodPost, "/api/admin/education",
		`{"degree":"BSc","institution":"UI","year":"2015","description":"CS"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/education",
		`{"degree":"MSc","institution":"ITB","year":"2018"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/education", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []entity.Education `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 2)
	assert.Equal(t, 0, listResp.Data[0].OrderIndex)
	assert.Equal(t, 1, listResp.Data[1].OrderIndex)

	// Delete the first row; the remaining row keeps its index.
	w = doJSON(t, r, http.MethodDelete, "/api/admin/education/"+listResp.Data[0].ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/education", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, 1, listResp.Data[0].OrderIndex)
}

func TestDeleteEducationNotFound(t *testing.T) {
	r := newContentRouter(&memEducationRepo{}, &memServiceRepo{})

	w := doJSON(t, r, http.MethodDelete, "/api/admin/education/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddServiceIconEnum(t *testing.T) {
	t.Run("rejects unknown icon", func(t *testing.T) {
		repo := &memServiceRepo{}
		r := newContentRouter(&memEducationRepo{}, repo)

		w := doJSON(t, r, http.MethodPost, "/api/admin/services",
			`{"title":"APIs","description":"REST backends","icon":"Rocket"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, repo.creates)
	})

	t.Run("accepts known icon", func(t *testing.T) {
		repo := &memServiceRepo{}
		r := newContentRouter(&memEducationRepo{}, repo)

		w := doJSON(t, r, http.MethodPost, "/api/admin/services",
			`{"title":"APIs","description":"REST backends","icon":"Database"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, repo.rows, 1)
		assert.Equal(t, "Database", repo.rows[0].Icon)
	})
}
