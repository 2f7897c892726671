package application

import (
	"context"
	"errors"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
	"github.com/yudhapratama/portfolio-api/pkg/helpers"
)

var (
	ErrNotFound     = repository.ErrNotFound
	ErrMissingImage = errors.New("image is required")
)

// ContentService owns the portfolio content collections: the hero and
// contact singletons plus the ordered list entities. New list rows are
// appended with order_index = current row count; deletions leave gaps that
// are never renumbered.
type ContentService struct {
	Hero           repository.HeroRepository
	Contact        repository.ContactRepository
	Education      repository.EducationRepository
	Certifications repository.CertificationRepository
	Projects       repository.ProjectRepository
	Services       repository.ServiceRepository
	GCS            *storage.Client
	GCSBucket      string
	Logger         *logrus.Logger
}

// Hero

func (s *ContentService) GetHero(ctx context.Context) (*entity.HeroContent, error) {
	return s.Hero.Get(ctx)
}

type UpdateHeroInput struct {
	Subtitle    string
	Title       string
	Description string
	ImageURL    string // empty keeps the current image
}

func (s *ContentService) UpdateHero(ctx context.Context, in UpdateHeroInput) (*entity.HeroContent, error) {
	h, err := s.Hero.Get(ctx)
	if err != nil {
		return nil, err
	}
	h.Subtitle = in.Subtitle
	h.Title = in.Title
	h.Description = in.Description
	if in.ImageURL != "" {
		h.ImageURL = in.ImageURL
	}
	if err := s.Hero.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Contact info

func (s *ContentService) GetContact(ctx context.Context) (*entity.ContactInfo, error) {
	return s.Contact.Get(ctx)
}

type UpdateContactInput struct {
	Email        string
	Phone        string
	Location     string
	MapLatitude  *float64
	MapLongitude *float64
}

func (s *ContentService) UpdateContact(ctx context.Context, in UpdateContactInput) (*entity.ContactInfo, error) {
	ci, err := s.Contact.Get(ctx)
	if err != nil {
		return nil, err
	}
	ci.Email = in.Email
	ci.Phone = in.Phone
	ci.Location = in.Location
	ci.MapLatitude = in.MapLatitude
	ci.MapLongitude = in.MapLongitude
	if err := s.Contact.Update(ctx, ci); err != nil {
		return nil, err
	}
	return ci, nil
}

// Education

func (s *ContentService) ListEducation(ctx context.Context) ([]entity.Education, error) {
	return s.Education.List(ctx)
}

type AddEducationInput struct {
	Degree      string
	Institution string
	Year        string
	Description string
}

func (s *ContentService) AddEducation(ctx context.Context, in AddEducationInput) (*entity.Education, error) {
	n, err := s.Education.Count(ctx)
	if err != nil {
		return nil, err
	}
	e := &entity.Education{
		Degree:      in.Degree,
		Institution: in.Institution,
		Year:        in.Year,
		Description: in.Description,
		OrderIndex:  n,
	}
	if err := s.Education.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ContentService) DeleteEducation(ctx context.Context, id string) error {
	return s.Education.Delete(ctx, id)
}

// Certifications

func (s *ContentService) ListCertifications(ctx context.Context) ([]entity.Certification, error) {
	return s.Certifications.List(ctx)
}

type AddCertificationInput struct {
	Name     string
	ImageURL string
}

func (s *ContentService) AddCertification(ctx context.Context, in AddCertificationInput) (*entity.Certification, error) {
	// A certification without its uploaded image must never hit the store.
	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, ErrMissingImage
	}
	n, err := s.Certifications.Count(ctx)
	if err != nil {
		return nil, err
	}
	c := &entity.Certification{
		Name:       in.Name,
		ImageURL:   in.ImageURL,
		OrderIndex: n,
	}
	if err := s.Certifications.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContentService) DeleteCertification(ctx context.Context, id string) error {
	return s.Certifications.Delete(ctx, id)
}

// Projects

func (s *ContentService) ListProjects(ctx context.Context) ([]entity.Project, error) {
	return s.Projects.List(ctx)
}

type AddProjectInput struct {
	Title       string
	Description string
	Category    string
	ImageURL    string
	LiveURL     string
	GithubURL   string
	Tags        string // comma-separated
}

// ParseTags splits comma-separated tag input, trimming whitespace and
// dropping empty entries.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func (s *ContentService) AddProject(ctx context.Context, in AddProjectInput) (*entity.Project, error) {
	n, err := s.Projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = "Web Development"
	}
	p := &entity.Project{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		LiveURL:     in.LiveURL,
		GithubURL:   in.GithubURL,
		Tags:        ParseTags(in.Tags),
		OrderIndex:  n,
	}
	if err := s.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return s.Projects.Delete(ctx, id)
}

// Services

func (s *ContentService) ListServices(ctx context.Context) ([]entity.Service, error) {
	return s.Services.List(ctx)
}

type AddServiceInput struct {
	Title       string
	Description string
	Icon        string
}

func (s *ContentService) AddService(ctx context.Context, in AddServiceInput) (*entity.Service, error) {
	n, err := s.Services.Count(ctx)
	if err != nil {
		return nil, err
	}
	sv := &entity.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		OrderIndex:  n,
	}
	if err := s.Services.Create(ctx, sv); err != nil {
		return nil, err
	}
	return sv, nil
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return s.Services.Delete(ctx, id)
}

// UploadImage stores an uploaded image in the shared bucket under a
// kind-prefixed, timestamp-suffixed object name and returns the public URL.
func (s *ContentService) UploadImage(ctx context.Context, kind string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("blob storage not configured")
	}
	object := helpers.ImageObjectName(kind, filename)
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, object, contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("object", object).Error("image upload failed")
		}
		return "", err
	}
	return url, nil
}
