package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/repository"
	"github.com/aispectrumclubaiml/ak/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Placeholder identity used when the verification service cannot resolve
// the participant. Verification failure never blocks participation.
const (
	UnknownParticipant = "Unknown Participant"
	UnknownInstitution = "Unknown Institution"
)

const verificationAdvisory = "We could not verify your registration right now. You can still take the quiz."

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidPhone reports whether phone is a 10-digit Indian mobile number
// starting with 6-9.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// EntryService handles step 1 of the flow: validate the participant,
// resolve their identity, and open an exam session bound to (phone, quiz).
type EntryService interface {
	Enter(ctx context.Context, req dto.EntryRequest) (*dto.EntryResponse, error)
}

type entryService struct {
	quizRepo     repository.QuizRepository
	verification VerificationClient
	sessions     session.Store
}

func NewEntryService(quizRepo repository.QuizRepository, verification VerificationClient, sessions session.Store) EntryService {
	return &entryService{
		quizRepo:     quizRepo,
		verification: verification,
		sessions:     sessions,
	}
}

func (s *entryService) Enter(ctx context.Context, req dto.EntryRequest) (*dto.EntryResponse, error) {
	if !ValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: enter a valid 10-digit mobile number starting with 6-9", ErrValidation)
	}

	quizID, err := strconv.ParseUint(req.QuizID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid quiz id %q", ErrValidation, req.QuizID)
	}

	quiz, err := s.quizRepo.FindByID(uint(quizID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quiz %d", ErrNotFound, quizID)
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Enter: failed to load quiz")
		return nil, fmt.Errorf("error loading quiz %d: %w", quizID, err)
	}
	if !quiz.IsActive {
		return nil, fmt.Errorf("%w: quiz %q is not open", ErrValidation, quiz.Name)
	}

	resp := dto.EntryResponse{
		Phone: req.Phone,
		Quiz: dto.QuizSummaryDTO{
			ID:              quiz.ID,
			Name:            quiz.Name,
			DurationMinutes: quiz.DurationMinutes,
			NumQuestions:    quiz.NumQuestions,
			IsActive:        quiz.IsActive,
			ShowResults:     quiz.ShowResults,
		},
	}

	result, verr := s.verification.Verify(ctx, req.Phone, quiz.Name)
	if verr != nil {
		log.Warn().Err(verr).Str("phone", req.Phone).Str("quiz", quiz.Name).
			Msg("Enter: verification failed, proceeding with placeholder identity")
		resp.ParticipantName = UnknownParticipant
		resp.Institution = UnknownInstitution
		resp.Advisory = verificationAdvisory
	} else {
		resp.ParticipantName = result.Name
		resp.Institution = result.Institution
		if resp.Institution == "" {
			resp.Institution = UnknownInstitution
		}
	}

	token, err := s.sessions.Begin(req.Phone, quiz.ID)
	if err != nil {
		log.Error().Err(err).Str("phone", req.Phone).Msg("Enter: failed to open exam session")
		return nil, fmt.Errorf("failed to open exam session: %w", err)
	}
	resp.SessionToken = token

	log.Info().Str("phone", req.Phone).Uint("quizID", quiz.ID).Str("participant", resp.ParticipantName).
		Msg("Entry accepted, exam session opened")
	return &resp, nil
}
