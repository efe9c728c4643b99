package portfolio

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/internal/domain/education"
	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/skills"
	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/internal/domain/workexperience"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

// In-memory repository fakes. Each fake keeps its rows in a slice guarded by
// a mutex so the concurrent clearAll/readAll paths behave like the real
// thing. Setting err makes every method fail with it.

type fakePersonalInfoRepo struct {
	mu    sync.Mutex
	items []personalinfo.PersonalInfo
	err   error
}

func (f *fakePersonalInfoRepo) FindCurrent(ctx context.Context) (*personalinfo.PersonalInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if len(f.items) == 0 {
		return nil, nil
	}
	p := f.items[len(f.items)-1]
	return &p, nil
}

func (f *fakePersonalInfoRepo) FindAll(ctx context.Context) ([]personalinfo.PersonalInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]personalinfo.PersonalInfo(nil), f.items...), nil
}

func (f *fakePersonalInfoRepo) FindByID(ctx context.Context, id uuid.UUID) (*personalinfo.PersonalInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperror.NewNotFound("personal info", id.String())
}

func (f *fakePersonalInfoRepo) Create(ctx context.Context, p *personalinfo.PersonalInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.items = append(f.items, *p)
	return nil
}

func (f *fakePersonalInfoRepo) Update(ctx context.Context, p *personalinfo.PersonalInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == p.ID {
			f.items[i] = *p
			return nil
		}
	}
	return apperror.NewNotFound("personal info", p.ID.String())
}

func (f *fakePersonalInfoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("personal info", id.String())
}

func (f *fakePersonalInfoRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakePersonalInfoRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeSkillsRepo struct {
	mu    sync.Mutex
	items []skills.Skills
	err   error
}

func (f *fakeSkillsRepo) FindCurrent(ctx context.Context) (*skills.Skills, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if len(f.items) == 0 {
		return nil, nil
	}
	s := f.items[len(f.items)-1]
	return &s, nil
}

func (f *fakeSkillsRepo) FindAll(ctx context.Context) ([]skills.Skills, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]skills.Skills(nil), f.items...), nil
}

func (f *fakeSkillsRepo) FindByID(ctx context.Context, id uuid.UUID) (*skills.Skills, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.items {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, apperror.NewNotFound("skills", id.String())
}

func (f *fakeSkillsRepo) Create(ctx context.Context, s *skills.Skills) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeSkillsRepo) Update(ctx context.Context, s *skills.Skills) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == s.ID {
			f.items[i] = *s
			return nil
		}
	}
	return apperror.NewNotFound("skills", s.ID.String())
}

func (f *fakeSkillsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("skills", id.String())
}

func (f *fakeSkillsRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeSkillsRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeCertificationRepo struct {
	mu    sync.Mutex
	items []certification.Certification
	err   error
}

func (f *fakeCertificationRepo) FindAll(ctx context.Context) ([]certification.Certification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]certification.Certification(nil), f.items...), nil
}

func (f *fakeCertificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperror.NewNotFound("certification", id.String())
}

func (f *fakeCertificationRepo) Create(ctx context.Context, c *certification.Certification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCertificationRepo) InsertMany(ctx context.Context, items []certification.Certification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeCertificationRepo) Update(ctx context.Context, c *certification.Certification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == c.ID {
			f.items[i] = *c
			return nil
		}
	}
	return apperror.NewNotFound("certification", c.ID.String())
}

func (f *fakeCertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("certification", id.String())
}

func (f *fakeCertificationRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeCertificationRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeEducationRepo struct {
	mu    sync.Mutex
	items []education.Education
	err   error
}

func (f *fakeEducationRepo) FindAll(ctx context.Context) ([]education.Education, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]education.Education(nil), f.items...), nil
}

func (f *fakeEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.items {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, apperror.NewNotFound("education", id.String())
}

func (f *fakeEducationRepo) Create(ctx context.Context, e *education.Education) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeEducationRepo) InsertMany(ctx context.Context, items []education.Education) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeEducationRepo) Update(ctx context.Context, e *education.Education) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == e.ID {
			f.items[i] = *e
			return nil
		}
	}
	return apperror.NewNotFound("education", e.ID.String())
}

func (f *fakeEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("education", id.String())
}

func (f *fakeEducationRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeEducationRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeServiceRepo struct {
	mu    sync.Mutex
	items []service.Service
	err   error
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]service.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]service.Service(nil), f.items...), nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.items {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, apperror.NewNotFound("service", id.String())
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *service.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeServiceRepo) InsertMany(ctx context.Context, items []service.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, s *service.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == s.ID {
			f.items[i] = *s
			return nil
		}
	}
	return apperror.NewNotFound("service", s.ID.String())
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("service", id.String())
}

func (f *fakeServiceRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeServiceRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeWorkExperienceRepo struct {
	mu    sync.Mutex
	items []workexperience.WorkExperience
	err   error
}

func (f *fakeWorkExperienceRepo) FindAll(ctx context.Context) ([]workexperience.WorkExperience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]workexperience.WorkExperience(nil), f.items...), nil
}

func (f *fakeWorkExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*workexperience.WorkExperience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, w := range f.items {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, apperror.NewNotFound("work experience", id.String())
}

func (f *fakeWorkExperienceRepo) Create(ctx context.Context, w *workexperience.WorkExperience) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	f.items = append(f.items, *w)
	return nil
}

func (f *fakeWorkExperienceRepo) InsertMany(ctx context.Context, items []workexperience.WorkExperience) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeWorkExperienceRepo) Update(ctx context.Context, w *workexperience.WorkExperience) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == w.ID {
			f.items[i] = *w
			return nil
		}
	}
	return apperror.NewNotFound("work experience", w.ID.String())
}

func (f *fakeWorkExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("work experience", id.String())
}

func (f *fakeWorkExperienceRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeWorkExperienceRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeTestimonialRepo struct {
	mu    sync.Mutex
	items []testimonial.Testimonial
	err   error
}

func (f *fakeTestimonialRepo) FindAll(ctx context.Context) ([]testimonial.Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]testimonial.Testimonial(nil), f.items...), nil
}

func (f *fakeTestimonialRepo) FindByID(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.items {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperror.NewNotFound("testimonial", id.String())
}

func (f *fakeTestimonialRepo) Create(ctx context.Context, t *testimonial.Testimonial) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.items = append(f.items, *t)
	return nil
}

func (f *fakeTestimonialRepo) InsertMany(ctx context.Context, items []testimonial.Testimonial) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeTestimonialRepo) Update(ctx context.Context, t *testimonial.Testimonial) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == t.ID {
			f.items[i] = *t
			return nil
		}
	}
	return apperror.NewNotFound("testimonial", t.ID.String())
}

func (f *fakeTestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("testimonial", id.String())
}

func (f *fakeTestimonialRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeTestimonialRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeCaseStudyRepo struct {
	mu    sync.Mutex
	items []casestudy.CaseStudy
	err   error
}

func (f *fakeCaseStudyRepo) FindAll(ctx context.Context) ([]casestudy.CaseStudy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]casestudy.CaseStudy(nil), f.items...), nil
}

func (f *fakeCaseStudyRepo) FindByExternalID(ctx context.Context, id int) (*casestudy.CaseStudy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperror.NewNotFound("case study", "unknown")
}

func (f *fakeCaseStudyRepo) Create(ctx context.Context, c *casestudy.CaseStudy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.items {
		if existing.ID == c.ID {
			return casestudy.ErrDuplicateID
		}
	}
	if c.UID == uuid.Nil {
		c.UID = uuid.New()
	}
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCaseStudyRepo) InsertMany(ctx context.Context, items []casestudy.CaseStudy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	seen := make(map[int]bool, len(f.items)+len(items))
	for _, existing := range f.items {
		seen[existing.ID] = true
	}
	for _, c := range items {
		if seen[c.ID] {
			return casestudy.ErrDuplicateID
		}
		seen[c.ID] = true
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeCaseStudyRepo) Update(ctx context.Context, c *casestudy.CaseStudy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == c.ID {
			f.items[i] = *c
			return nil
		}
	}
	return apperror.NewNotFound("case study", "unknown")
}

func (f *fakeCaseStudyRepo) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("case study", "unknown")
}

func (f *fakeCaseStudyRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeCaseStudyRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeSectionDataRepo struct {
	mu    sync.Mutex
	items []sectiondata.SectionData
	err   error
}

func (f *fakeSectionDataRepo) FindAll(ctx context.Context) ([]sectiondata.SectionData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]sectiondata.SectionData(nil), f.items...), nil
}

func (f *fakeSectionDataRepo) FindByType(ctx context.Context, t sectiondata.SectionType) (*sectiondata.SectionData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.items {
		if s.SectionType == t {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSectionDataRepo) Create(ctx context.Context, s *sectiondata.SectionData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.items {
		if existing.SectionType == s.SectionType {
			return apperror.NewConflict("section data", "sectionType", string(s.SectionType))
		}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeSectionDataRepo) Upsert(ctx context.Context, s *sectiondata.SectionData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].SectionType == s.SectionType {
			f.items[i].Data = s.Data
			f.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeSectionDataRepo) DeleteByType(ctx context.Context, t sectiondata.SectionType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].SectionType == t {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("section data", string(t))
}

func (f *fakeSectionDataRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeSectionDataRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

type fakeAdditionalInfoRepo struct {
	mu    sync.Mutex
	items []additionalinfo.AdditionalInfo
	err   error
}

func (f *fakeAdditionalInfoRepo) FindCurrent(ctx context.Context) (*additionalinfo.AdditionalInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if len(f.items) == 0 {
		return nil, nil
	}
	a := f.items[len(f.items)-1]
	return &a, nil
}

func (f *fakeAdditionalInfoRepo) FindAll(ctx context.Context) ([]additionalinfo.AdditionalInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]additionalinfo.AdditionalInfo(nil), f.items...), nil
}

func (f *fakeAdditionalInfoRepo) FindByID(ctx context.Context, id uuid.UUID) (*additionalinfo.AdditionalInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.items {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, apperror.NewNotFound("additional info", id.String())
}

func (f *fakeAdditionalInfoRepo) Create(ctx context.Context, a *additionalinfo.AdditionalInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.items = append(f.items, *a)
	return nil
}

func (f *fakeAdditionalInfoRepo) Update(ctx context.Context, a *additionalinfo.AdditionalInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == a.ID {
			f.items[i] = *a
			return nil
		}
	}
	return apperror.NewNotFound("additional info", a.ID.String())
}

func (f *fakeAdditionalInfoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("additional info", id.String())
}

func (f *fakeAdditionalInfoRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = nil
	return nil
}

func (f *fakeAdditionalInfoRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

// fakeProfileCache records Set/Invalidate calls and serves a canned profile
// on Get when primed.
type fakeProfileCache struct {
	mu          sync.Mutex
	cached      *portfolio.Profile
	sets        int
	invalidates int
}

func (f *fakeProfileCache) Get(ctx context.Context) (*portfolio.Profile, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cached == nil {
		return nil, false
	}
	return f.cached, true
}

func (f *fakeProfileCache) Set(ctx context.Context, p *portfolio.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cached = p
	f.sets++
}

func (f *fakeProfileCache) Invalidate(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cached = nil
	f.invalidates++
}

// fakeRepoSet bundles the fakes so tests can reach into individual stores.
type fakeRepoSet struct {
	personalInfo   *fakePersonalInfoRepo
	skills         *fakeSkillsRepo
	certifications *fakeCertificationRepo
	education      *fakeEducationRepo
	services       *fakeServiceRepo
	workExperience *fakeWorkExperienceRepo
	testimonials   *fakeTestimonialRepo
	caseStudies    *fakeCaseStudyRepo
	sectionData    *fakeSectionDataRepo
	additionalInfo *fakeAdditionalInfoRepo
}

func newFakeRepoSet() *fakeRepoSet {
	return &fakeRepoSet{
		personalInfo:   &fakePersonalInfoRepo{},
		skills:         &fakeSkillsRepo{},
		certifications: &fakeCertificationRepo{},
		education:      &fakeEducationRepo{},
		services:       &fakeServiceRepo{},
		workExperience: &fakeWorkExperienceRepo{},
		testimonials:   &fakeTestimonialRepo{},
		caseStudies:    &fakeCaseStudyRepo{},
		sectionData:    &fakeSectionDataRepo{},
		additionalInfo: &fakeAdditionalInfoRepo{},
	}
}

func (f *fakeRepoSet) repositories() Repositories {
	return Repositories{
		PersonalInfo:   f.personalInfo,
		Skills:         f.skills,
		Certifications: f.certifications,
		Education:      f.education,
		Services:       f.services,
		WorkExperience: f.workExperience,
		Testimonials:   f.testimonials,
		CaseStudies:    f.caseStudies,
		SectionData:    f.sectionData,
		AdditionalInfo: f.additionalInfo,
	}
}

// failAll makes every repository in the set return the given error.
func (f *fakeRepoSet) failAll(err error) {
	f.personalInfo.err = err
	f.skills.err = err
	f.certifications.err = err
	f.education.err = err
	f.services.err = err
	f.workExperience.err = err
	f.testimonials.err = err
	f.caseStudies.err = err
	f.sectionData.err = err
	f.additionalInfo.err = err
}
