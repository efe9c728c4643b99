package content

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type spyCache struct {
	mu          sync.Mutex
	invalidates int
}

func (c *spyCache) Get(ctx context.Context) (*portfolio.Profile, bool) { return nil, false }
func (c *spyCache) Set(ctx context.Context, p *portfolio.Profile)      {}
func (c *spyCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidates++
}

type memCertificationRepo struct {
	items []certification.Certification
}

func (r *memCertificationRepo) FindAll(ctx context.Context) ([]certification.Certification, error) {
	return append([]certification.Certification(nil), r.items...), nil
}

func (r *memCertificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	for _, c := range r.items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperror.NewNotFound("certification", id.String())
}

func (r *memCertificationRepo) Create(ctx context.Context, c *certification.Certification) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.items = append(r.items, *c)
	return nil
}

func (r *memCertificationRepo) InsertMany(ctx context.Context, items []certification.Certification) error {
	r.items = append(r.items, items...)
	return nil
}

func (r *memCertificationRepo) Update(ctx context.Context, c *certification.Certification) error {
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = *c
			return nil
		}
	}
	return apperror.NewNotFound("certification", c.ID.String())
}

func (r *memCertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("certification", id.String())
}

func (r *memCertificationRepo) DeleteAll(ctx context.Context) error {
	r.items = nil
	return nil
}

func (r *memCertificationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type memSectionDataRepo struct {
	items []sectiondata.SectionData
}

func (r *memSectionDataRepo) FindAll(ctx context.Context) ([]sectiondata.SectionData, error) {
	return append([]sectiondata.SectionData(nil), r.items...), nil
}

func (r *memSectionDataRepo) FindByType(ctx context.Context, t sectiondata.SectionType) (*sectiondata.SectionData, error) {
	for _, s := range r.items {
		if s.SectionType == t {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *memSectionDataRepo) Create(ctx context.Context, s *sectiondata.SectionData) error {
	r.items = append(r.items, *s)
	return nil
}

func (r *memSectionDataRepo) Upsert(ctx context.Context, s *sectiondata.SectionData) error {
	for i := range r.items {
		if r.items[i].SectionType == s.SectionType {
			r.items[i].Data = s.Data
			return nil
		}
	}
	r.items = append(r.items, *s)
	return nil
}

func (r *memSectionDataRepo) DeleteByType(ctx context.Context, t sectiondata.SectionType) error {
	for i := range r.items {
		if r.items[i].SectionType == t {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("section data", string(t))
}

func (r *memSectionDataRepo) DeleteAll(ctx context.Context) error {
	r.items = nil
	return nil
}

func (r *memSectionDataRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func Test_Certification_Create_RequiresNameAndIssuer(t *testing.T) {
	uc := NewCertificationUseCase(&memCertificationRepo{}, nil)

	_, err := uc.Create(context.Background(), &certification.Certification{Name: "No Issuer"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func Test_Certification_WritesNotifyChange(t *testing.T) {
	cache := &spyCache{}
	notifier := NewChangeNotifier(cache, nil, logger.NewZapLogger("development"))
	repo := &memCertificationRepo{}
	uc := NewCertificationUseCase(repo, notifier)

	created, err := uc.Create(context.Background(), &certification.Certification{
		Name:   "AWS SAA",
		Issuer: "AWS",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidates)

	created.Year = "2025"
	_, err = uc.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.invalidates)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Equal(t, 3, cache.invalidates)
}

func Test_Certification_Delete_UnknownIDDoesNotNotify(t *testing.T) {
	cache := &spyCache{}
	notifier := NewChangeNotifier(cache, nil, logger.NewZapLogger("development"))
	uc := NewCertificationUseCase(&memCertificationRepo{}, notifier)

	err := uc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Zero(t, cache.invalidates)
}

func Test_SectionData_Get(t *testing.T) {
	repo := &memSectionDataRepo{}
	uc := NewSectionDataUseCase(repo, nil)

	_, err := uc.Get(context.Background(), sectiondata.SectionType("bogusSection"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	_, err = uc.Get(context.Background(), sectiondata.AboutSection)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = uc.Upsert(context.Background(), sectiondata.AboutSection, map[string]any{"headline": "About"})
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), sectiondata.AboutSection)
	require.NoError(t, err)
	assert.Equal(t, "About", got.Data["headline"])
}

func Test_SectionData_Upsert_ReplacesExisting(t *testing.T) {
	repo := &memSectionDataRepo{}
	uc := NewSectionDataUseCase(repo, nil)

	_, err := uc.Upsert(context.Background(), sectiondata.AboutSection, map[string]any{"headline": "v1"})
	require.NoError(t, err)
	_, err = uc.Upsert(context.Background(), sectiondata.AboutSection, map[string]any{"headline": "v2"})
	require.NoError(t, err)

	all, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "v2", all[0].Data["headline"])
}

func Test_SectionData_Upsert_RequiresBody(t *testing.T) {
	uc := NewSectionDataUseCase(&memSectionDataRepo{}, nil)

	_, err := uc.Upsert(context.Background(), sectiondata.AboutSection, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}
