package api

import (
	"context"
	"net/http"

	"github.com/limbo/flicks/internal/service"
	"github.com/limbo/flicks/pkg/entity"
	"github.com/limbo/flicks/pkg/httputil"
)

func (s *Server) SaveProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	var req service.SaveProgressRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Warn("save progress error: invalid body")
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	record, err := s.historyService.SaveProgress(ctx, caller(r), profileID, &req)
	if err != nil {
		writeError(w, logger, "save progress error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "Progress saved", record)
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	contentID, err := pathContentID(r)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	record, err := s.historyService.GetProgress(ctx, caller(r), profileID, contentID)
	if err != nil {
		writeError(w, logger, "get progress error", err)
		return
	}
	if !record.Saved() {
		httputil.WriteJSONResponse(w, http.StatusOK, entity.UnsavedProgress{})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	history, err := s.historyService.GetProfileHistory(ctx, caller(r), profileID, limit)
	if err != nil {
		writeError(w, logger, "get history error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
}

func (s *Server) ContinueWatching(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	history, err := s.historyService.ContinueWatching(ctx, caller(r), profileID)
	if err != nil {
		writeError(w, logger, "continue watching error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
}

func (s *Server) DeleteProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	contentID, err := pathContentID(r)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.historyService.DeleteProgress(ctx, caller(r), profileID, contentID); err != nil {
		writeError(w, logger, "delete progress error", err)
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "Viewing history deleted", nil)
}
