package httpserver

import (
	"context"

	inventoryHTTP "inventory-service/internal/inventory/delivery/http"
	inventoryUC "inventory-service/internal/inventory/usecase"
)

// setupInventoryDomain wires use case and handler on top of the configured
// store and registers the inventory routes at the root.
func (srv HTTPServer) setupInventoryDomain(ctx context.Context) {
	uc := inventoryUC.New(srv.repo, srv.photos, srv.baseURL, srv.l)
	h := inventoryHTTP.New(srv.l, uc)

	inventoryHTTP.RegisterRoutes(srv.gin, h)
	if srv.enableHello {
		inventoryHTTP.RegisterHelloRoute(srv.gin, h)
	}

	srv.l.Infof(ctx, "Inventory domain registered (photo links: %s)", srv.baseURL)
}
