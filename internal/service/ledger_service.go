package service

import (
	"context"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
)

type LedgerService interface {
	GetStores(ctx context.Context, query domain.StoresQuery) (*domain.StoresPage, error)
}

type ledgerService struct {
	repo        domain.LedgerRepository
	maxPageSize int
	logger      *logger.Logger
}

func NewLedgerService(repo domain.LedgerRepository, maxPageSize int, log *logger.Logger) LedgerService {
	return &ledgerService{
		repo:        repo,
		maxPageSize: maxPageSize,
		logger:      log,
	}
}

func (s *ledgerService) GetStores(ctx context.Context, query domain.StoresQuery) (*domain.StoresPage, error) {
	if query.Page < 1 || query.PageSize < 1 || (s.maxPageSize > 0 && query.PageSize > s.maxPageSize) {
		return nil, domain.ErrInvalidPageParams
	}

	cpf := domain.NormalizeCPF(query.CPF)

	s.logger.Debug(ctx, "Getting stores",
		"page", query.Page,
		"page_size", query.PageSize,
		"cpf_filter", cpf != "",
	)

	items, total, err := s.repo.PagedStores(ctx, query.Page, query.PageSize, cpf)
	if err != nil {
		s.logger.Error(ctx, "Failed to get stores",
			"error", err,
		)
		return nil, err
	}

	page := domain.NewStoresPage(items, query.Page, query.PageSize, total)

	s.logger.Debug(ctx, "Stores retrieved",
		"total", total,
		"returned", len(page.Stores),
	)

	return page, nil
}
