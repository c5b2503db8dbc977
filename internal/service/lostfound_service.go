package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/apperr"
	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/repository"
)

// LostFoundService manages the lost-and-found board.
type LostFoundService struct {
	itemRepo repository.LostFoundRepository
	logger   *zap.Logger
}

func NewLostFoundService(itemRepo repository.LostFoundRepository, logger *zap.Logger) *LostFoundService {
	return &LostFoundService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (s *LostFoundService) List(ctx context.Context, itemType string) ([]*model.LostFoundItem, error) {
	switch itemType {
	case "", "all":
		return s.itemRepo.List(ctx, "")
	case string(model.LostFoundTypeLost), string(model.LostFoundTypeFound):
		return s.itemRepo.List(ctx, model.LostFoundType(itemType))
	default:
		return nil, apperr.Validationf("invalid type parameter")
	}
}

func (s *LostFoundService) Get(ctx context.Context, id int64) (*model.LostFoundItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, apperr.NotFoundf("item not found")
	}
	return item, nil
}

func (s *LostFoundService) Create(ctx context.Context, item *model.LostFoundItem) (*model.LostFoundItem, error) {
	if err := validateLostFoundItem(item); err != nil {
		return nil, err
	}

	if item.Status == "" {
		item.Status = model.LostFoundStatusActive
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.logger.Info("Lost/found item reported",
		zap.Int64("item_id", item.ID),
		zap.Int64("user_id", item.UserID),
		zap.String("type", string(item.Type)),
		zap.String("category", item.Category),
	)

	return item, nil
}

// Update applies changes to an item. Only the reporter or an admin may
// touch it.
func (s *LostFoundService) Update(ctx context.Context, actor model.Identity, id int64, changes LostFoundChanges) (*model.LostFoundItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, apperr.NotFoundf("item not found")
	}

	if item.UserID != actor.ID && actor.Role != model.RoleAdmin {
		return nil, apperr.Forbiddenf("you can only update your own items")
	}

	if changes.Status != nil {
		switch *changes.Status {
		case model.LostFoundStatusActive, model.LostFoundStatusClaimed, model.LostFoundStatusResolved:
			item.Status = *changes.Status
		default:
			return nil, apperr.Validationf("status %q is not valid", *changes.Status)
		}
	}
	if changes.Description != nil {
		item.Description = *changes.Description
	}
	if changes.ContactInfo != nil {
		item.ContactInfo = *changes.ContactInfo
	}

	if err := validateLostFoundItem(item); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	return item, nil
}

// LostFoundChanges are the fields an item owner may change after the
// initial report.
type LostFoundChanges struct {
	Status      *model.LostFoundStatus `json:"status"`
	Description *string                `json:"description"`
	ContactInfo *string                `json:"contactInfo"`
}

func validateLostFoundItem(item *model.LostFoundItem) error {
	required := map[string]string{
		"name":        item.Name,
		"description": item.Description,
		"category":    item.Category,
		"location":    item.Location,
		"date":        item.Date,
		"contactInfo": item.ContactInfo,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return apperr.Validationf("%s is required", field)
		}
	}

	if item.Type != model.LostFoundTypeLost && item.Type != model.LostFoundTypeFound {
		return apperr.Validationf("type must be lost or found")
	}

	return nil
}
