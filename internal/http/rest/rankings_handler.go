package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util"
	"github.com/kekechi03/ero/util/tracing"
	"github.com/kekechi03/ero/util/values"
)

const maxRankingLimit = 50

func (api *API) RankingRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/yes", Handler(api.TopByYes))
		r.Method(http.MethodGet, "/no", Handler(api.TopByNo))
	})

	return mux
}

func (api *API) TopByYes(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	images, err := api.TopImagesByYesRepo(r.Context(), api.rankingLimit(r))
	if err != nil {
		return respondWithError(err, "failed to load ranking", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Ranking retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       rankImages(images),
	}
}

func (api *API) TopByNo(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	images, err := api.TopImagesByNoRepo(r.Context(), api.rankingLimit(r))
	if err != nil {
		return respondWithError(err, "failed to load ranking", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Ranking retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       rankImages(images),
	}
}

func (api *API) rankingLimit(r *http.Request) int {
	limit := api.Config.RankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxRankingLimit {
		limit = maxRankingLimit
	}
	return limit
}

func rankImages(images []model.Image) []model.RankedImage {
	ranked := make([]model.RankedImage, 0, len(images))
	for _, img := range images {
		ranked = append(ranked, model.NewRankedImage(img))
	}
	return ranked
}
