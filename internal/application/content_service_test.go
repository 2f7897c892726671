package application

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
)

type fakeEducationRepo struct {
	rows []entity.Education
}

func (f *fakeEducationRepo) List(context.Context) ([]entity.Education, error) {
	return f.rows, nil
}

func (f *fakeEducationRepo) Count(context.Context) (int, error) {
	return len(f.rows), nil
}

func (f *fakeEducationRepo) Create(_ context.Context, e *entity.Education) error {
	e.ID = strconv.Itoa(len(f.rows) + 1)
	f.rows = append(f.rows, *e)
	return nil
}

func (f *fakeEducationRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeCertificationRepo struct {
	rows []entity.Certification
}

func (f *fakeCertificationRepo) List(context.Context) ([]entity.Certification, error) {
	return f.rows, nil
}

func (f *fakeCertificationRepo) Count(context.Context) (int, error) {
	return len(f.rows), nil
}

func (f *fakeCertificationRepo) Create(_ context.Context, c *entity.Certification) error {
	c.ID = strconv.Itoa(len(f.rows) + 1)
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeCertificationRepo) Delete(context.Context, string) error { return nil }

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"go", "gin", "pgx"}, ParseTags("go, gin ,pgx"))
	assert.Equal(t, []string{"solo"}, ParseTags("solo"))
	assert.Empty(t, ParseTags(" , ,"))
	assert.Empty(t, ParseTags(""))
}

func TestAddEducationOrderIndex(t *testing.T) {
	repo := &fakeEducationRepo{}
	svc := &ContentService{Education: repo}
	ctx := context.Background()

	first, err := svc.AddEducation(ctx, AddEducationInput{Degree: "BSc", Institution: "UI", Year: "2015"})
	require.NoError(t, err)
	second, err := svc.AddEducation(ctx, AddEducationInput{Degree: "MSc", Institution: "ITB", Year: "2018"})
	require.NoError(t, err)

	assert.Equal(t, 0, first.OrderIndex)
	assert.Equal(t, 1, second.OrderIndex)

	// Deleting the first row must not renumber the second: a fresh insert
	// lands at index len(rows), gaps stay.
	require.NoError(t, svc.DeleteEducation(ctx, first.ID))
	third, err := svc.AddEducation(ctx, AddEducationInput{Degree: "PhD", Institution: "UGM", Year: "2022"})
	require.NoError(t, err)

	assert.Equal(t, 1, second.OrderIndex)
	assert.Equal(t, 1, third.OrderIndex)
}

func TestAddCertificationRequiresImage(t *testing.T) {
	repo := &fakeCertificationRepo{}
	svc := &ContentService{Certifications: repo}

	_, err := svc.AddCertification(context.Background(), AddCertificationInput{Name: "AWS SAA"})
	assert.ErrorIs(t, err, ErrMissingImage)
	assert.Empty(t, repo.rows, "no row may be written without an image")

	cert, err := svc.AddCertification(context.Background(), AddCertificationInput{
		Name:     "AWS SAA",
		ImageURL: "https://storage.googleapis.com/bucket/certifications/1.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, cert.OrderIndex)
	assert.Len(t, repo.rows, 1)
}

func TestAddProjectDefaults(t *testing.T) {
	// Project repo fake reuses the pattern above inline.
	repo := &fakeProjectRepo{}
	svc := &ContentService{Projects: repo}

	p, err := svc.AddProject(context.Background(), AddProjectInput{
		Title:       "Portfolio",
		Description: "This site",
		Tags:        "go, gin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Web Development", p.Category)
	assert.Equal(t, []string{"go", "gin"}, p.Tags)
	assert.Equal(t, 0, p.OrderIndex)
}

type fakeProjectRepo struct {
	rows []entity.Project
}

func (f *fakeProjectRepo) List(context.Context) ([]entity.Project, error) { return f.rows, nil }
func (f *fakeProjectRepo) Count(context.Context) (int, error)             { return len(f.rows), nil }
func (f *fakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	p.ID = strconv.Itoa(len(f.rows) + 1)
	f.rows = append(f.rows, *p)
	return nil
}
func (f *fakeProjectRepo) Delete(context.Context, string) error { return nil }
