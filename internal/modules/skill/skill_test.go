package skill_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/modules/resource/resourcetest"
	"github.com/mx-space/portfolio/internal/modules/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type skillBody struct {
	ID           uint     `json:"id"`
	CategoryName string   `json:"category_name"`
	Skills       []string `json:"skills"`
}

func newRouter(t *testing.T) *gin.Engine {
	return resourcetest.Router(t, func(rg *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
		skill.NewHandler(skill.NewService(db), log).RegisterRoutes(rg)
	})
}

func TestSkillCategoryNameIsUnique(t *testing.T) {
	r := newRouter(t)

	rec := resourcetest.Do(t, r, http.MethodPost, "/skills", map[string]any{
		"category_name": "Languages", "skills": []string{"Go", "Python"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := resourcetest.Decode[skillBody](t, rec)

	rec = resourcetest.Do(t, r, http.MethodPost, "/skills", map[string]any{
		"category_name": "Languages", "skills": []string{"Rust"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "Skill category with this category_name already exists",
		resourcetest.Decode[resourcetest.ErrorBody](t, rec).Message)

	rec = resourcetest.Do(t, r, http.MethodGet, "/skills", nil)
	list := resourcetest.Decode[[]skillBody](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"Go", "Python"}, list[0].Skills)

	rec = resourcetest.Do(t, r, http.MethodDelete, "/skills/"+strconv.FormatUint(uint64(created.ID), 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = resourcetest.Do(t, r, http.MethodPost, "/skills", map[string]any{
		"category_name": "Languages", "skills": []string{"Rust"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reused := resourcetest.Decode[skillBody](t, rec)
	assert.NotEqual(t, created.ID, reused.ID)
	assert.Equal(t, []string{"Rust"}, reused.Skills)
}

func TestSkillValidation(t *testing.T) {
	r := newRouter(t)

	rec := resourcetest.Do(t, r, http.MethodPost, "/skills", map[string]any{"category_name": "Tools"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = resourcetest.Do(t, r, http.MethodPost, "/skills", map[string]any{"skills": []string{"Go"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "category_name: field required", resourcetest.Decode[resourcetest.ErrorBody](t, rec).Message)
}
