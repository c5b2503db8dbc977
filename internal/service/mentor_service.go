package service

import (
	"context"
	"fmt"

	"github.com/campusdesk/campus-portal/internal/apperr"
	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/repository"
)

// MentorService exposes the faculty mentor catalog.
type MentorService struct {
	mentorRepo repository.MentorRepository
}

func NewMentorService(mentorRepo repository.MentorRepository) *MentorService {
	return &MentorService{mentorRepo: mentorRepo}
}

func (s *MentorService) List(ctx context.Context) ([]*model.FacultyMentor, error) {
	return s.mentorRepo.List(ctx)
}

func (s *MentorService) Get(ctx context.Context, id int64) (*model.FacultyMentor, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	if mentor == nil {
		return nil, apperr.NotFoundf("mentor not found")
	}
	return mentor, nil
}
