package credito

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/creditos/internal/apperr"
	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/internal/storage"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
)

// PageQuery carries raw pagination input as received from the client.
// Nil or blank values take the configured defaults.
type PageQuery struct {
	Page          any
	Size          any
	SortBy        any
	SortDirection any
	// Strict rejects invalid input instead of replacing it with defaults
	Strict bool
}

// Page is one page of creditos with the warnings produced while normalizing the query
type Page struct {
	*pagination.PageResult[domain.Credito]
	Warnings []string `json:"warnings,omitempty"`
}

type Service struct {
	repo      storage.Repository
	chain     *validation.Chain
	generator *Generator
}

func NewService(repo storage.Repository, chain *validation.Chain, generator *Generator) *Service {
	if generator == nil {
		generator = NewGenerator()
	}
	return &Service{
		repo:      repo,
		chain:     chain,
		generator: generator,
	}
}

func (s *Service) GetByNumeroCredito(ctx context.Context, numeroCredito string) (*domain.Credito, error) {
	res := s.chain.ValidateStringNotEmpty(numeroCredito, "numeroCredito")
	if !res.Valid() {
		return nil, res.Err()
	}
	numero, _ := validation.ValueAs[string](res)

	c, err := s.repo.FindByNumeroCredito(ctx, numero)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NewNotFound(fmt.Sprintf("credito %s not found", numero))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find credito: %w", err)
	}
	return c, nil
}

func (s *Service) ListByNumeroNfse(ctx context.Context, numeroNfse string) ([]domain.Credito, error) {
	numero, err := s.numeroNfse(numeroNfse)
	if err != nil {
		return nil, err
	}

	creditos, err := s.repo.FindByNumeroNfse(ctx, numero)
	if err != nil {
		return nil, fmt.Errorf("failed to list creditos: %w", err)
	}
	if len(creditos) == 0 {
		return nil, apperr.NewNotFound(fmt.Sprintf("no creditos found for NFS-e %s", numero))
	}
	return creditos, nil
}

// PageByNumeroNfse normalizes q leniently unless q.Strict is set, then returns the requested page.
// An NFS-e without creditos is reported as not found.
func (s *Service) PageByNumeroNfse(ctx context.Context, numeroNfse string, q PageQuery) (*Page, error) {
	numero, err := s.numeroNfse(numeroNfse)
	if err != nil {
		return nil, err
	}

	var res validation.Result
	if q.Strict {
		res = s.chain.ValidatePageable(q.Page, q.Size, q.SortBy, q.SortDirection)
	} else {
		res = s.chain.CreatePageable(q.Page, q.Size, q.SortBy, q.SortDirection)
	}
	if !res.Valid() {
		return nil, res.Err()
	}
	p, ok := validation.ValueAs[pagination.Pageable](res)
	if !ok {
		return nil, fmt.Errorf("unexpected pageable value %T", res.Value())
	}
	if res.HasWarnings() {
		slog.Debug("Pagination parameters normalized", "pageable", p.String(), "warnings", res.Warnings())
	}

	result, err := s.repo.FindPageByNumeroNfse(ctx, numero, p)
	if err != nil {
		return nil, fmt.Errorf("failed to page creditos: %w", err)
	}
	if result.TotalElements == 0 {
		return nil, apperr.NewNotFound(fmt.Sprintf("no creditos found for NFS-e %s", numero))
	}

	return &Page{PageResult: result, Warnings: res.Warnings()}, nil
}

func (s *Service) numeroNfse(raw string) (string, error) {
	res := s.chain.ValidateStringNotEmpty(raw, "numeroNfse")
	if !res.Valid() {
		return "", res.Err()
	}
	numero, _ := validation.ValueAs[string](res)
	return numero, nil
}

// GenerateTestData replaces every test record by a freshly generated set and returns its size
func (s *Service) GenerateTestData(ctx context.Context, opts GenerateOptions) (int, error) {
	for _, r := range []validation.Result{
		s.chain.ValidateNumberRange(opts.NfseCount, "nfseCount", 1, MaxGenerateCount),
		s.chain.ValidateNumberRange(opts.CreditsPerNfse, "creditsPerNfse", 1, MaxGenerateCount),
	} {
		if !r.Valid() {
			return 0, r.Err()
		}
	}

	creditos, err := s.generator.Generate(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to generate test creditos: %w", err)
	}

	if _, err := s.repo.DeleteTestRecords(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear previous test creditos: %w", err)
	}
	saved, err := s.repo.SaveBulk(ctx, creditos)
	if err != nil {
		return 0, fmt.Errorf("failed to save test creditos: %w", err)
	}

	slog.Info("Generated test creditos", "count", saved, "nfseCount", opts.NfseCount, "creditsPerNfse", opts.CreditsPerNfse)
	return saved, nil
}

func (s *Service) DeleteTestData(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteTestRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete test creditos: %w", err)
	}

	slog.Info("Deleted test creditos", "count", deleted)
	return deleted, nil
}
