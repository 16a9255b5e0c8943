package employee

import (
	"context"
	"strings"
	"time"

	employeeerrors "go-outtime/internal/employee/errors"
	"go-outtime/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, companyID string, includeInactive bool) ([]EmployeeListItem, error)
	GetOptions(ctx context.Context, companyID string) ([]EmployeeOption, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	cache  *OptionsCache
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, cache *OptionsCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		cache:  cache,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context, companyID string, includeInactive bool) ([]EmployeeListItem, error) {
	rows, err := s.repo.ListByCompanyWithStats(ctx, companyID, includeInactive)
	if err != nil {
		s.logger.Error("list employees failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	items := make([]EmployeeListItem, len(rows))
	for i, r := range rows {
		items[i] = EmployeeListItem{
			EmployeeResponse: mapToResponse(r.Employee),
			TotalDaysWorked:  r.TotalDaysWorked,
			TotalReports:     r.TotalReports,
			AvgHoursPerDay:   roundHours(r.AvgHoursPerDay),
		}
	}
	return items, nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]EmployeeOption, error) {
	if opts, ok := s.cache.Get(ctx, companyID); ok {
		return opts, nil
	}

	// admins opening the report filter at once share one query
	v, err, _ := s.sf.Do(OptionsKey(companyID), func() (any, error) {
		rows, err := s.repo.FindActiveByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		opts := make([]EmployeeOption, len(rows))
		for i, e := range rows {
			opts[i] = EmployeeOption{ID: e.ID.String(), Name: e.Name}
		}
		s.cache.Set(ctx, companyID, opts)
		return opts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return EmployeeResponse{}, employeeerrors.ErrEmptyName
		}
		e.Name = name
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	s.cache.Invalidate(ctx, companyID)

	s.logger.Info("employee updated", zap.String("request_id", rid), zap.String("employee_id", id))
	return mapToResponse(*e), nil
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	if err := s.repo.Deactivate(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	s.cache.Invalidate(ctx, companyID)

	s.logger.Info("employee deactivated", zap.String("company_id", companyID), zap.String("employee_id", id))
	return nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.String(),
		CompanyID:  e.CompanyID.String(),
		TelegramID: e.TelegramID,
		Name:       e.Name,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func roundHours(h float64) float64 {
	return float64(int64(h*10+0.5)) / 10
}
