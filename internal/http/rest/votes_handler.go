package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util"
	"github.com/kekechi03/ero/util/tracing"
	"github.com/kekechi03/ero/util/values"
)

const voteHistoryLimit = 100

func (api *API) VoteRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/next", Handler(api.NextImage))
		r.Method(http.MethodPost, "/", Handler(api.CastVote))
		r.Method(http.MethodGet, "/mine", Handler(api.MyVotes))
	})

	return mux
}

func (api *API) NextImage(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	img, status, message, err := api.SelectNextImage(r.Context(), userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	if status == values.NoneAvailable {
		return &ServerResponse{
			Message:    message,
			Status:     status,
			StatusCode: util.StatusCode(status),
		}
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       model.NewRankedImage(img),
	}
}

func (api *API) CastVote(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CastVoteRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "image_id and answer are required", values.BadRequestBody, &tc)
	}

	imageID, err := util.StringToUUID(req.ImageID)
	if err != nil {
		return respondWithError(err, "invalid image ID", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	counts, status, message, err := api.RecordVote(r.Context(), userID, imageID, *req.Answer)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       counts,
	}
}

func (api *API) MyVotes(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	votes, err := api.UserVotesRepo(r.Context(), userID, voteHistoryLimit)
	if err != nil {
		return respondWithError(err, "failed to load voting history", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Voting history retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       votes,
	}
}
