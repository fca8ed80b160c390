package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"devconnect/internal/database"
	"devconnect/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepository keeps the document shape of a profile: scalar columns for
// the top-level fields and jsonb for the ordered lists and the social
// sub-record, so list ordering and merge semantics stay in the usecase layer.
type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, user_id, handle, status, skills, company, website,
	location, bio, githubusername, social, experience, education,
	created_at, updated_at`

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	skills, social, experience, education, err := marshalDocFields(p)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO profiles (`+profileColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		p.ID, p.UserID, p.Handle, p.Status, skills, p.Company, p.Website,
		p.Location, p.Bio, p.GithubUsername, social, experience, education,
		p.CreatedAt, p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return profile.ErrHandleTaken
	}
	return err
}

func (r *ProfileRepository) Update(ctx context.Context, p profile.Profile) error {
	skills, social, experience, education, err := marshalDocFields(p)
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE profiles
		 SET handle = $2, status = $3, skills = $4, company = $5, website = $6,
		     location = $7, bio = $8, githubusername = $9, social = $10,
		     experience = $11, education = $12, updated_at = $13
		 WHERE id = $1`,
		p.ID, p.Handle, p.Status, skills, p.Company, p.Website,
		p.Location, p.Bio, p.GithubUsername, social, experience, education,
		p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return profile.ErrHandleTaken
	}
	if err != nil {
		return err
	}
	if affected == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *ProfileRepository) GetByHandle(ctx context.Context, handle string) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE handle = $1`,
		handle,
	)
	return scanProfile(row)
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

func marshalDocFields(p profile.Profile) (skills, social, experience, education []byte, err error) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []profile.Experience{}
	}
	if p.Education == nil {
		p.Education = []profile.Education{}
	}

	if skills, err = json.Marshal(p.Skills); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal skills: %w", err)
	}
	if social, err = json.Marshal(p.Social); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal social: %w", err)
	}
	if experience, err = json.Marshal(p.Experience); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal experience: %w", err)
	}
	if education, err = json.Marshal(p.Education); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal education: %w", err)
	}
	return skills, social, experience, education, nil
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var (
		p          profile.Profile
		skills     []byte
		social     []byte
		experience []byte
		education  []byte
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Handle, &p.Status, &skills, &p.Company,
		&p.Website, &p.Location, &p.Bio, &p.GithubUsername, &social,
		&experience, &education, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}

	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return profile.Profile{}, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(social, &p.Social); err != nil {
		return profile.Profile{}, fmt.Errorf("unmarshal social: %w", err)
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return profile.Profile{}, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return profile.Profile{}, fmt.Errorf("unmarshal education: %w", err)
	}
	return p, nil
}
