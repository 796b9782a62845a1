package api

import (
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BindUUIDPath binds the named path parameter as a UUID using the same
// binder the generated server wrappers use.
func BindUUIDPath(c *gin.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	return id, err
}

// BindUUIDQuery binds an optional query parameter as a UUID.
// It returns nil when the parameter is absent.
func BindUUIDQuery(c *gin.Context, name string) (*openapi_types.UUID, error) {
	var id *openapi_types.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, c.Request.URL.Query(), &id); err != nil {
		return nil, err
	}
	return id, nil
}
