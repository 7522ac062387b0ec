package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/minhvu/blogspace/pkg/auth"
)

// NewRouter mounts the GraphQL endpoint behind the identity middleware.
func NewRouter(schema *graphqlgo.Schema, jwtSvc *auth.JWTService) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	graphqlHandler := gin.WrapH(&relay.Handler{Schema: schema})
	router.POST("/graphql", IdentityMiddleware(jwtSvc), graphqlHandler)

	return router
}
