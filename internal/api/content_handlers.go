package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/service"
	"github.com/limbo/flicks/pkg/httputil"
)

func (s *Server) AllContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	content, err := s.catalogService.All(ctx)
	if err != nil {
		writeError(w, logger, "listing content error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, content)
}

func (s *Server) GetContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathContentID(r)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	content, err := s.catalogService.Get(ctx, id)
	if err != nil {
		writeError(w, logger, "get content error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, content)
}

func (s *Server) FilterContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	query := r.URL.Query()
	opts := service.FilterOpts{
		Genre:   query.Get("genre"),
		Type:    query.Get("type"),
		Sort:    query.Get("sort"),
		Watched: query.Get("watched"),
	}
	var err error
	if opts.Page, err = queryInt(r, "page"); err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	if opts.Limit, err = queryInt(r, "limit"); err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	if raw := query.Get("profileId"); raw != "" {
		profileID, err := uuid.Parse(raw)
		if err != nil {
			httputil.WriteServiceError(w, errorvalues.NewValidationError("profileId: must be a valid id"))
			return
		}
		opts.ProfileID = &profileID
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	page, err := s.catalogService.Filter(ctx, caller(r), opts)
	if err != nil {
		writeError(w, logger, "filter content error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, page)
}

func (s *Server) Genres(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	genres, err := s.catalogService.Genres(ctx)
	if err != nil {
		writeError(w, logger, "listing genres error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, genres)
}

func (s *Server) SimilarContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathContentID(r)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	similar, err := s.catalogService.Similar(ctx, id)
	if err != nil {
		writeError(w, logger, "similar content error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, similar)
}

func (s *Server) PopularContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := queryInt(r, "limit")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	popular, err := s.catalogService.Popular(ctx, limit)
	if err != nil {
		writeError(w, logger, "popular content error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, popular)
}

func (s *Server) NewestContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	perGenre, err := queryInt(r, "limit")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	newest, err := s.catalogService.NewestByGenre(ctx, perGenre)
	if err != nil {
		writeError(w, logger, "newest content error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newest)
}

func (s *Server) CreateContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.ContentRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("create content error: invalid body")
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	content, err := s.catalogService.CreateContent(ctx, caller(r), &req)
	if err != nil {
		writeError(w, logger, "create content error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusCreated, "Content created successfully", content)
	logger.Info("content created")
}

func (s *Server) UpdateContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathContentID(r)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	var req service.ContentRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Warn("update content error: invalid body")
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	content, err := s.catalogService.UpdateContent(ctx, caller(r), id, &req)
	if err != nil {
		writeError(w, logger, "update content error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "Content updated successfully", content)
	logger.Info("content updated")
}

func (s *Server) DeleteContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathContentID(r)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.catalogService.DeleteContent(ctx, caller(r), id); err != nil {
		writeError(w, logger, "delete content error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "Content deleted successfully", nil)
	logger.Info("content deleted")
}
