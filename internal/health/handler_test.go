package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", NewHandler().Check)
	return router
}

func getHealth(t *testing.T, router *gin.Engine) map[string]interface{} {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth_AlwaysHealthy(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	router := setupRouter()

	body := getHealth(t, router)

	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "staging", body["environment"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealth_DefaultEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	router := setupRouter()

	body := getHealth(t, router)

	assert.Equal(t, "local", body["environment"])
}

func TestHealth_EnvironmentReadPerCall(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	router := setupRouter()

	assert.Equal(t, "staging", getHealth(t, router)["environment"])

	t.Setenv("ENVIRONMENT", "prod")
	assert.Equal(t, "prod", getHealth(t, router)["environment"])
}
