package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/vehicle-assess-api/internal/utils"
)

func newTestContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, target, reader)
	if reader != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

// authenticate sets what the auth middleware would set for a signed-in user
func authenticate(c *gin.Context, tenantID, userID string, roles ...string) {
	claims := jwt.MapClaims{
		string(utils.TenantIDKey):  tenantID,
		string(utils.UserIDKey):    userID,
		string(utils.SessionIDKey): "session-1",
		string(utils.RolesKey):     roles,
	}
	c.Set(string(utils.TenantIDKey), tenantID)
	c.Set(string(utils.ClaimsKey), claims)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), utils.ClaimsKey, claims))
}
