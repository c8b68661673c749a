package api

import (
	"context"
	"net/http"

	"github.com/limbo/flicks/internal/service"
	"github.com/limbo/flicks/pkg/httputil"
)

type LikeRequest struct {
	ContentID int `json:"contentId"`
}

type LikesResponse struct {
	Likes []int `json:"likes"`
}

func (s *Server) ListProfiles(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, err := pathUUID(r, "userId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profiles, err := s.profilesService.ListProfiles(ctx, caller(r), userID)
	if err != nil {
		writeError(w, logger, "listing profiles error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profiles)
}

func (s *Server) CreateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, err := pathUUID(r, "userId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	var req service.CreateProfileRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Warn("create profile error: invalid body")
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.profilesService.CreateProfile(ctx, caller(r), userID, &req)
	if err != nil {
		writeError(w, logger, "create profile error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusCreated, "Profile created successfully", profile)
	logger.Info("profile created")
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	var req service.UpdateProfileRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Warn("update profile error: invalid body")
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.profilesService.UpdateProfile(ctx, caller(r), profileID, &req)
	if err != nil {
		writeError(w, logger, "update profile error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "Profile updated successfully", profile)
}

func (s *Server) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.profilesService.DeleteProfile(ctx, caller(r), profileID); err != nil {
		writeError(w, logger, "delete profile error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "Profile deleted successfully", nil)
	logger.Info("profile deleted")
}

func (s *Server) GetLikes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	likes, err := s.profilesService.GetLikes(ctx, caller(r), profileID)
	if err != nil {
		writeError(w, logger, "get likes error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LikesResponse{Likes: likes})
}

func (s *Server) Like(w http.ResponseWriter, r *http.Request) {
	s.changeLike(w, r, true)
}

func (s *Server) Unlike(w http.ResponseWriter, r *http.Request) {
	s.changeLike(w, r, false)
}

func (s *Server) changeLike(w http.ResponseWriter, r *http.Request, like bool) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	var req LikeRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Warn("like error: invalid body")
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	var likes []int
	message := "Content liked successfully"
	if like {
		likes, err = s.profilesService.Like(ctx, caller(r), profileID, req.ContentID)
	} else {
		message = "Content unliked successfully"
		likes, err = s.profilesService.Unlike(ctx, caller(r), profileID, req.ContentID)
	}
	if err != nil {
		writeError(w, logger, "like error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, message, LikesResponse{Likes: likes})
}

func (s *Server) GlobalLikes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	counts, err := s.profilesService.GlobalLikeCounts(ctx)
	if err != nil {
		writeError(w, logger, "global like counts error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, counts)
}
