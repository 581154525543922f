package router

import "github.com/gin-gonic/gin"

// Module is one feature's slice of the API. The registry hands Register a group
// already mounted at Prefix, so modules only name their own paths.
type Module interface {
	Prefix() string
	Register(rg *gin.RouterGroup)
}
