package service

import (
	"context"

	"menuadmin/internal/dto"
	"menuadmin/internal/repository"
)

type CategoryService interface {
	List(ctx context.Context, typ *int) ([]dto.CategoryResponse, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context, typ *int) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx, typ)
	if err != nil {
		return nil, storeErr(err, "")
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{
			ID:     c.ID,
			Type:   c.Type,
			Name:   c.Name,
			Sort:   c.Sort,
			Status: c.Status,
		})
	}
	return out, nil
}
