package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"jan-chat/internal/utils/platformerrors"
)

type MockRepository struct {
	CreateFunc func(ctx context.Context, s *Submission) error
	Created    []*Submission
}

func (m *MockRepository) Create(ctx context.Context, s *Submission) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, s); err != nil {
			return err
		}
	}
	m.Created = append(m.Created, s)
	return nil
}

func TestSubmit(t *testing.T) {
	repo := &MockRepository{}
	svc := NewService(repo, zerolog.Nop())

	got, err := svc.Submit(context.Background(), Submission{Name: " Ada ", Email: "ada@example.com", Message: "Hello there"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Name != "Ada" || !strings.HasPrefix(got.PublicID, "contact_") {
		t.Errorf("unexpected submission %+v", got)
	}
	if len(repo.Created) != 1 {
		t.Errorf("expected one stored submission")
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      Submission
		wantMsg string
	}{
		{name: "missing name", in: Submission{Email: "a@b.co", Message: "m"}, wantMsg: "name is required"},
		{name: "missing email", in: Submission{Name: "n", Message: "m"}, wantMsg: "email is required"},
		{name: "bad email", in: Submission{Name: "n", Email: "not-an-email", Message: "m"}, wantMsg: "email is invalid"},
		{name: "missing message", in: Submission{Name: "n", Email: "a@b.co", Message: "   "}, wantMsg: "message is required"},
		{name: "long name", in: Submission{Name: strings.Repeat("n", MaxNameLength+1), Email: "a@b.co", Message: "m"}, wantMsg: "name is too long"},
		{name: "long message", in: Submission{Name: "n", Email: "a@b.co", Message: strings.Repeat("x", MaxMessageLength+1)}, wantMsg: "message is too long"},
	}

	svc := NewService(&MockRepository{}, zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.in)
			if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var perr *platformerrors.PlatformError
			if errors.As(err, &perr) && perr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", perr.Message, tt.wantMsg)
			}
		})
	}
}

func TestSubmit_RepositoryError(t *testing.T) {
	repo := &MockRepository{CreateFunc: func(ctx context.Context, s *Submission) error { return errors.New("db down") }}
	svc := NewService(repo, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), Submission{Name: "n", Email: "a@b.co", Message: "m"}); err == nil {
		t.Errorf("expected error")
	}
}
