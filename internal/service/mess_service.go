package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/apperr"
	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/repository"
)

// MessService tracks the meal wallet: a per-student balance plus a ledger
// of signed movements.
type MessService struct {
	messRepo repository.MessRepository
	logger   *zap.Logger
}

func NewMessService(messRepo repository.MessRepository, logger *zap.Logger) *MessService {
	return &MessService{
		messRepo: messRepo,
		logger:   logger,
	}
}

func (s *MessService) Balance(ctx context.Context, userID int64) (*model.MessBalance, error) {
	balance, err := s.messRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	if balance == nil {
		return nil, apperr.NotFoundf("balance not found")
	}
	return balance, nil
}

func (s *MessService) Transactions(ctx context.Context, userID int64) ([]*model.MessTransaction, error) {
	return s.messRepo.ListTransactions(ctx, userID)
}

// AddTransaction records a wallet movement and applies it to the balance.
// Amount is a signed decimal string, e.g. "-45.50" for a meal deduction.
func (s *MessService) AddTransaction(ctx context.Context, userID int64, amount, description, date, timeLabel string) (*model.MessTransaction, error) {
	amount = strings.TrimSpace(amount)
	if _, err := strconv.ParseFloat(amount, 64); err != nil {
		return nil, apperr.Validationf("amount %q is not a valid number", amount)
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperr.Validationf("description is required")
	}
	if strings.TrimSpace(timeLabel) == "" {
		return nil, apperr.Validationf("time is required")
	}

	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	balance, err := s.messRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	if balance == nil {
		return nil, apperr.NotFoundf("balance not found")
	}

	txn := &model.MessTransaction{
		UserID:      userID,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Date:        date,
		Time:        timeLabel,
	}

	if err := s.messRepo.ApplyTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("apply transaction: %w", err)
	}

	s.logger.Info("Mess transaction recorded",
		zap.Int64("transaction_id", txn.ID),
		zap.Int64("user_id", userID),
		zap.String("amount", amount),
	)

	return txn, nil
}
