package history

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=history
type Repository interface {
	CreateConversion(ctx context.Context, c *Conversion) error
	GetConversion(ctx context.Context, id uuid.UUID) (*Conversion, error)
	ListConversions(ctx context.Context, filter ListFilter) ([]*Conversion, error)
	DeleteConversion(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RecordParams struct {
	Filename          string
	OutputFilename    string
	BankCode          string
	TotalRows         int
	ValidTransactions int
	InvalidRows       []int
}

type ListFilter struct {
	BankCode *string
	Limit    int
}

// Record stores a completed conversion.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Conversion, error) {
	c := &Conversion{
		Filename:          params.Filename,
		OutputFilename:    params.OutputFilename,
		BankCode:          params.BankCode,
		TotalRows:         params.TotalRows,
		ValidTransactions: params.ValidTransactions,
		InvalidRows:       params.InvalidRows,
	}
	if err := s.repo.CreateConversion(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Conversion, error) {
	return s.repo.GetConversion(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Conversion, error) {
	return s.repo.ListConversions(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteConversion(ctx, id)
}
