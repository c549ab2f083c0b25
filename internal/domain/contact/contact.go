package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"jan-chat/internal/utils/idgen"
	"jan-chat/internal/utils/platformerrors"
)

const (
	MaxNameLength    = 200
	MaxMessageLength = 5000
)

// Submission is one message sent through the contact form.
type Submission struct {
	ID        uint
	PublicID  string
	Name      string `validate:"required,max=200"`
	Email     string `validate:"required,email"`
	Message   string `validate:"required,max=5000"`
	UserKey   string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, s *Submission) error
}

type Service struct {
	repo     Repository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With().Str("component", "contact-service").Logger(),
	}
}

// Submit validates and stores a contact form submission.
func (s *Service) Submit(ctx context.Context, in Submission) (*Submission, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if err := s.check(in); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			err.Error(), nil, "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a5b")
	}

	in.PublicID = idgen.New(idgen.PrefixContact)
	if err := s.repo.Create(ctx, &in); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "store contact submission")
	}
	s.log.Info().Str("contact_id", in.PublicID).Msg("contact submission stored")
	return &in, nil
}

type validationError string

func (e validationError) Error() string { return string(e) }

// check reports the first failing field in form order.
func (s *Service) check(in Submission) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return validationError("submission is invalid")
	}
	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return validationError(field + " is required")
	case "max":
		return validationError(field + " is too long")
	default:
		return validationError(field + " is invalid")
	}
}
