package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util"
	"github.com/kekechi03/ero/util/tracing"
	"github.com/kekechi03/ero/util/values"
)

func (api *API) StatsRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.GetSiteStats))

	return mux
}

// GetSiteStats returns the landing-page totals: registered users, hosted
// images and appraisals cast so far.
func (api *API) GetSiteStats(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	users, err := api.CountUsersRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to count users", values.Error, &tc)
	}

	images, err := api.CountImagesRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to count images", values.Error, &tc)
	}

	votes, err := api.CountVotesRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to count votes", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Site stats retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: model.SiteStats{
			Users:  users,
			Images: images,
			Votes:  votes,
		},
	}
}
