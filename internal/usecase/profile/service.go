package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "devconnect/internal/domain/profile"
	"devconnect/internal/domain/user"
)

var (
	ErrNoProfile   = errors.New("there is no profile")
	ErrHandleTaken = errors.New("handle already exists")
	ErrInternal    = errors.New("internal error")
)

type Usecase interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	GetByHandle(ctx context.Context, handle string) (domain.Profile, error)
	ListAll(ctx context.Context) ([]domain.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, patch domain.Patch) (domain.Profile, error)
	AddExperience(ctx context.Context, userID uuid.UUID, entry domain.Experience) (domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (domain.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, entry domain.Education) (domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (domain.Profile, error)
	DeleteUserAndProfile(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	profiles domain.Repository
	users    user.Repository
	logger   *zap.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

func NewService(profiles domain.Repository, users user.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		profiles: profiles,
		users:    users,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.New,
	}
}

func (s *Service) GetByUser(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) GetByHandle(ctx context.Context, handle string) (domain.Profile, error) {
	p, err := s.profiles.GetByHandle(ctx, handle)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

// ListAll reports ErrNoProfile for an empty store; the upstream API answers
// 404 in that case and clients key on it.
func (s *Service) ListAll(ctx context.Context) ([]domain.Profile, error) {
	all, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if len(all) == 0 {
		return nil, ErrNoProfile
	}
	return all, nil
}

// Upsert creates the caller's profile on first call and merge-patches it on
// subsequent calls. The handle-uniqueness check only guards the create path;
// the unique index backs it up against races.
func (s *Service) Upsert(ctx context.Context, userID uuid.UUID, patch domain.Patch) (domain.Profile, error) {
	existing, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		existing.Apply(patch)
		existing.UpdatedAt = s.now().UTC()
		if err := s.profiles.Update(ctx, existing); err != nil {
			if errors.Is(err, domain.ErrHandleTaken) {
				return domain.Profile{}, ErrHandleTaken
			}
			return domain.Profile{}, ErrInternal
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Profile{}, ErrInternal
	}

	if patch.Handle != nil {
		_, err := s.profiles.GetByHandle(ctx, *patch.Handle)
		if err == nil {
			return domain.Profile{}, ErrHandleTaken
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Profile{}, ErrInternal
		}
	}

	now := s.now().UTC()
	p := domain.Profile{
		ID:         s.newID(),
		UserID:     userID,
		Skills:     []string{},
		Experience: []domain.Experience{},
		Education:  []domain.Education{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	p.Apply(patch)

	if err := s.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrHandleTaken) {
			return domain.Profile{}, ErrHandleTaken
		}
		s.logger.Error("create profile", zap.Error(err))
		return domain.Profile{}, ErrInternal
	}

	s.logger.Info("profile created",
		zap.String("user_id", userID.String()),
		zap.String("handle", p.Handle),
	)
	return p, nil
}

func (s *Service) AddExperience(ctx context.Context, userID uuid.UUID, entry domain.Experience) (domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	entry.ID = s.newID()
	p.Experience = append([]domain.Experience{entry}, p.Experience...)

	return s.persist(ctx, p)
}

// RemoveExperience is a no-op when the id is not present: the profile is
// written back unchanged and returned.
func (s *Service) RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	kept := p.Experience[:0:0]
	for _, e := range p.Experience {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	p.Experience = kept

	return s.persist(ctx, p)
}

func (s *Service) AddEducation(ctx context.Context, userID uuid.UUID, entry domain.Education) (domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	entry.ID = s.newID()
	p.Education = append([]domain.Education{entry}, p.Education...)

	return s.persist(ctx, p)
}

func (s *Service) RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	kept := p.Education[:0:0]
	for _, e := range p.Education {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	p.Education = kept

	return s.persist(ctx, p)
}

// DeleteUserAndProfile removes the profile first, then the user. The two
// deletes are sequential, not transactional: a crash in between leaves a user
// without a profile, recoverable by re-running the delete.
func (s *Service) DeleteUserAndProfile(ctx context.Context, userID uuid.UUID) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return ErrInternal
	}
	if err := s.users.DeleteByID(ctx, userID); err != nil {
		return ErrInternal
	}

	s.logger.Info("user and profile deleted", zap.String("user_id", userID.String()))
	return nil
}

func (s *Service) persist(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	p.UpdatedAt = s.now().UTC()
	if err := s.profiles.Update(ctx, p); err != nil {
		return domain.Profile{}, ErrInternal
	}
	return p, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrNoProfile
	}
	return ErrInternal
}
