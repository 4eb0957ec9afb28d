package handlers

import (
	"net/http"

	"github.com/osb-autoscaler/autoscaler-broker/domain"
	"github.com/osb-autoscaler/autoscaler-broker/domain/apiresponses"
)

func (h APIHandler) Catalog(w http.ResponseWriter, req *http.Request) {
	services := h.services
	if services == nil {
		services = []domain.Service{}
	}

	h.respond(w, http.StatusOK, requestIdentity(req), apiresponses.CatalogResponse{
		Services: services,
	})
}
