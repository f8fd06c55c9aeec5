package httpserver

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"inventory-service/pkg/response"
)

var resourceFamilies = []string{"register", "inventory", "search"}

// fallback answers unmatched requests: 405 when the path belongs to a known
// resource family, 404 otherwise.
func (srv HTTPServer) fallback(c *gin.Context) {
	if slices.Contains(srv.families(), firstSegment(c.Request.URL.Path)) {
		response.MethodNotAllowed(c)
		return
	}
	response.Text(c, http.StatusNotFound, "Page Not Found")
}

func (srv HTTPServer) families() []string {
	if srv.enableHello {
		return append(slices.Clone(resourceFamilies), "hello")
	}
	return resourceFamilies
}

func firstSegment(path string) string {
	seg, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return seg
}
