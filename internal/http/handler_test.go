//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/hsn"
	"github.com/guttosm/courier-portal/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testHSNTree() hsn.Tree {
	children := hsn.NewTree()
	children.Set("610910", hsn.Node{Code: "610910", Description: "T-shirts of cotton"})
	children.Set("610990", hsn.Node{Code: "610990", Description: "T-shirts of other textile materials"})

	tree := hsn.NewTree()
	tree.Set("61", hsn.Node{Code: "61", Description: "Knitted apparel", Children: children})
	tree.Set("0902", hsn.Node{Code: "0902", Description: "Tea, whether or not flavoured"})
	return tree
}

// newTestEngine returns a router with the middleware every handler relies on.
func newTestEngine(routes func(r *gin.Engine)) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	routes(router)
	return router
}

// withSession stands in for SessionAuth.
func withSession(s *model.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s != nil {
			c.Set(string(middleware.SessionKey), s)
			c.Set(string(middleware.UserEmailKey), s.Email)
			c.Set(string(middleware.UserRoleKey), s.Role)
		}
		c.Next()
	}
}

func performRequest(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) dto.SuccessResponse {
	t.Helper()
	var envelope struct {
		dto.SuccessResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return envelope.SuccessResponse
}

type recordingRecorder struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (r *recordingRecorder) Log(entry *model.LogEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

func (r *recordingRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.ActionType)
	}
	return out
}
