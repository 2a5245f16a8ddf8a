package document

import (
	"net/http"

	"grandplaza/infras/otel"
	"grandplaza/internal/domains/document/model"
	"grandplaza/internal/domains/document/service"
	"grandplaza/shared/constant"
	"grandplaza/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const headerArchiveURL = "X-Archive-URL"

type Handler struct {
	service service.Document
	otel    otel.Otel
}

func New(service service.Document, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/documents/{kind}/{id}", handler.Download)
}

// Download renders a document and streams it as an attachment.
// @Summary Download a document
// @Description Renders the preliminary inquiry letter or the invoice document. The archived copy URL, when any, is returned in X-Archive-URL.
// @Tags Document
// @Produce plain
// @Param kind path string true "inquiry or invoice"
// @Param id path string true "Inquiry or invoice ID"
// @Success 200 {string} string "Document body"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{kind}/{id} [get]
func (handler *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Download")
	defer scope.End()

	kind := model.Kind(chi.URLParam(r, constant.RequestParamKind))
	id := chi.URLParam(r, constant.RequestParamID)

	doc, err := handler.service.Generate(ctx, kind, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Str("id", id).Msg("failed to generate document")

		response.WithError(w, err)

		return
	}

	if doc.URL != "" {
		w.Header().Set(headerArchiveURL, doc.URL)
	}

	response.WithFile(w, doc.Filename, doc.ContentType, doc.Content)

	scope.AddEvent("Document " + doc.Filename + " downloaded")
}
