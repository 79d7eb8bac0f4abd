package health

import (
	"net/http"
	"time"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/config"

	"github.com/gin-gonic/gin"
)

// Status is the liveness payload returned to platform probes. It is computed
// on every call and never persisted.
type Status struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// Handler answers GET /health. It has no dependencies: liveness never touches
// the order store.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Check reads the environment name per call so a configuration change is
// visible on the next probe.
func (h *Handler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, Status{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: config.EnvironmentName(),
	})
}
