package project_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/modules/project"
	"github.com/mx-space/portfolio/internal/modules/resource/resourcetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type projectBody struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Technologies []string `json:"technologies"`
	Description  []string `json:"description"`
}

func newRouter(t *testing.T) *gin.Engine {
	return resourcetest.Router(t, func(rg *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
		project.NewHandler(project.NewService(db), log).RegisterRoutes(rg)
	})
}

func TestProjectDuplicatesGetDistinctIDs(t *testing.T) {
	r := newRouter(t)
	body := map[string]any{
		"title":        "Portfolio",
		"technologies": []string{"Go", "PostgreSQL"},
		"description":  []string{"A personal site", "with an API"},
	}

	var ids []uint
	for i := 0; i < 2; i++ {
		rec := resourcetest.Do(t, r, http.MethodPost, "/projects", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		ids = append(ids, resourcetest.Decode[projectBody](t, rec).ID)
	}
	assert.Less(t, ids[0], ids[1])

	rec := resourcetest.Do(t, r, http.MethodGet, "/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := resourcetest.Decode[[]projectBody](t, rec)
	require.Len(t, list, 2)
	for i, p := range list {
		assert.Equal(t, ids[i], p.ID)
		assert.Equal(t, "Portfolio", p.Title)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, p.Technologies)
		assert.Equal(t, []string{"A personal site", "with an API"}, p.Description)
	}
}

func TestProjectEmptyListsRoundTrip(t *testing.T) {
	r := newRouter(t)

	rec := resourcetest.Do(t, r, http.MethodPost, "/projects", map[string]any{
		"title":        "Scratch",
		"technologies": []string{},
		"description":  []string{},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":1,"title":"Scratch","technologies":[],"description":[]}`, rec.Body.String())
}

func TestProjectValidation(t *testing.T) {
	r := newRouter(t)

	cases := map[string]map[string]any{
		"missing title":        {"technologies": []string{}, "description": []string{}},
		"missing technologies": {"title": "x", "description": []string{}},
		"number list":          {"title": "x", "technologies": []int{1}, "description": []string{}},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := resourcetest.Do(t, r, http.MethodPost, "/projects", body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		})
	}
}

func TestProjectDelete(t *testing.T) {
	r := newRouter(t)

	rec := resourcetest.Do(t, r, http.MethodPost, "/projects", map[string]any{
		"title": "Gone", "technologies": []string{"Go"}, "description": []string{"soon"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = resourcetest.Do(t, r, http.MethodDelete, "/projects/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = resourcetest.Do(t, r, http.MethodGet, "/projects", nil)
	assert.JSONEq(t, "[]", rec.Body.String())
}
