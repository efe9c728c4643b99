package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulladumor/portfolio-api/internal/domain/contact"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type memContactRepo struct {
	items []contact.Message
	err   error
}

func (r *memContactRepo) Save(ctx context.Context, m *contact.Message) error {
	if r.err != nil {
		return r.err
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items = append(r.items, *m)
	return nil
}

func (r *memContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.items {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, apperror.NewNotFound("contact message", id.String())
}

func (r *memContactRepo) FindAll(ctx context.Context) ([]contact.Message, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]contact.Message(nil), r.items...), nil
}

func Test_Submit_PersistsMessage(t *testing.T) {
	repo := &memContactRepo{}
	uc := NewSubmitUseCase(repo, nil, logger.NewZapLogger("development"))

	msg, err := uc.Execute(context.Background(), SubmitInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Consulting",
		Message: "I need an audit",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)

	stored, err := repo.FindByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "I need an audit", stored.Message)
}

func Test_Submit_RequiredFields(t *testing.T) {
	uc := NewSubmitUseCase(&memContactRepo{}, nil, logger.NewZapLogger("development"))

	cases := []SubmitInput{
		{Email: "jane@example.com", Message: "hi"},
		{Name: "Jane", Message: "hi"},
		{Name: "Jane", Email: "jane@example.com"},
	}
	for _, input := range cases {
		_, err := uc.Execute(context.Background(), input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	}
}

func Test_Submit_SaveFailureSurfaced(t *testing.T) {
	repo := &memContactRepo{err: errors.New("db down")}
	uc := NewSubmitUseCase(repo, nil, logger.NewZapLogger("development"))

	_, err := uc.Execute(context.Background(), SubmitInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "hello",
	})
	assert.Error(t, err)
}
