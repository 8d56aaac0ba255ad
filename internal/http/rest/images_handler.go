package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util"
	"github.com/kekechi03/ero/util/tracing"
	"github.com/kekechi03/ero/util/values"
)

const adminListLimit = 20

func (api *API) ImageRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Use(api.RequireAdmin)
		r.Method(http.MethodPost, "/", Handler(api.UploadImage))
		r.Method(http.MethodGet, "/", Handler(api.ListImages))
		r.Method(http.MethodDelete, "/{imageID}", Handler(api.DeleteImage))
	})

	return mux
}

func (api *API) UploadImage(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	if err := r.ParseMultipartForm(api.Config.MaxUploadBytes); err != nil {
		return respondWithError(err, "unable to parse upload", values.BadRequestBody, &tc)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return respondWithError(err, "missing file field", values.BadRequestBody, &tc)
	}
	defer file.Close()

	image, status, message, err := api.UploadImageHelper(r.Context(), userID, file, header)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       image,
	}
}

func (api *API) ListImages(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	images, err := api.ListImagesRepo(r.Context(), adminListLimit)
	if err != nil {
		return respondWithError(err, "failed to list images", values.Error, &tc)
	}

	ranked := make([]model.RankedImage, 0, len(images))
	for _, img := range images {
		ranked = append(ranked, model.NewRankedImage(img))
	}

	return &ServerResponse{
		Message:    "Images retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       ranked,
	}
}

func (api *API) DeleteImage(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	imageID := chi.URLParam(r, "imageID")
	id, err := util.StringToUUID(imageID)
	if err != nil {
		return respondWithError(err, "invalid image ID", values.BadRequestBody, &tc)
	}

	status, message, err := api.DeleteImageHelper(r.Context(), id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
