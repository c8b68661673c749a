package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/repository"
	"github.com/limbo/flicks/pkg/entity"
)

type ProfilesService struct {
	repo repository.ProfilesRepositoryI
}

func NewProfilesService(profilesRepo repository.ProfilesRepositoryI) *ProfilesService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ProfilesService{
		repo: profilesRepo,
	}
}

// ownedProfile loads profile and checks that caller may act for its owner.
func ownedProfile(ctx context.Context, repo repository.ProfilesRepositoryI, caller entity.Identity, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := repo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	if !caller.CanActFor(profile.UserID) {
		return nil, errorvalues.ErrWrongOwner
	}
	return profile, nil
}

func (ps *ProfilesService) ListProfiles(ctx context.Context, caller entity.Identity, userID uuid.UUID) ([]*entity.Profile, error) {
	if !caller.CanActFor(userID) {
		return nil, errorvalues.ErrWrongOwner
	}
	profiles, err := ps.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	return profiles, nil
}

func (ps *ProfilesService) CreateProfile(ctx context.Context, caller entity.Identity, userID uuid.UUID, req *CreateProfileRequest) (*entity.Profile, error) {
	if !caller.CanActFor(userID) {
		return nil, errorvalues.ErrWrongOwner
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	count, err := ps.repo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	if count >= entity.MaxProfilesPerUser {
		return nil, errorvalues.ErrProfileLimit
	}
	avatar := req.Avatar
	if avatar == "" {
		avatar = entity.Avatars[count%len(entity.Avatars)]
	}
	id, err := ps.repo.Create(ctx, &entity.Profile{
		UserID: userID,
		Name:   req.Name,
		Avatar: avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrProfileExists):
			return nil, err
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	profile, err := ps.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	return profile, nil
}

func (ps *ProfilesService) UpdateProfile(ctx context.Context, caller entity.Identity, profileID uuid.UUID, req *UpdateProfileRequest) (*entity.Profile, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	profile, err := ownedProfile(ctx, ps.repo, caller, profileID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Avatar != nil {
		profile.Avatar = *req.Avatar
	}
	if err = ps.repo.Update(ctx, profile); err != nil {
		if errors.Is(err, errorvalues.ErrProfileExists) || errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	return profile, nil
}

// DeleteProfile removes the profile only. Its viewing history stays in place.
func (ps *ProfilesService) DeleteProfile(ctx context.Context, caller entity.Identity, profileID uuid.UUID) error {
	if _, err := ownedProfile(ctx, ps.repo, caller, profileID); err != nil {
		return err
	}
	if err := ps.repo.Delete(ctx, profileID); err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return err
		}
		return fmt.Errorf("profiles repository error: %w", err)
	}
	return nil
}

func (ps *ProfilesService) Like(ctx context.Context, caller entity.Identity, profileID uuid.UUID, contentID int) ([]int, error) {
	if contentID < 1 {
		return nil, errorvalues.NewValidationError("contentId: must be positive")
	}
	if _, err := ownedProfile(ctx, ps.repo, caller, profileID); err != nil {
		return nil, err
	}
	likes, err := ps.repo.AddLike(ctx, profileID, contentID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	return likes, nil
}

func (ps *ProfilesService) Unlike(ctx context.Context, caller entity.Identity, profileID uuid.UUID, contentID int) ([]int, error) {
	if contentID < 1 {
		return nil, errorvalues.NewValidationError("contentId: must be positive")
	}
	if _, err := ownedProfile(ctx, ps.repo, caller, profileID); err != nil {
		return nil, err
	}
	likes, err := ps.repo.RemoveLike(ctx, profileID, contentID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	return likes, nil
}

func (ps *ProfilesService) GetLikes(ctx context.Context, caller entity.Identity, profileID uuid.UUID) ([]int, error) {
	profile, err := ownedProfile(ctx, ps.repo, caller, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Likes == nil {
		return []int{}, nil
	}
	return profile.Likes, nil
}

func (ps *ProfilesService) GlobalLikeCounts(ctx context.Context) (map[int]int, error) {
	counts, err := ps.repo.LikeCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	return counts, nil
}
