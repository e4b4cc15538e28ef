package graphql

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/config"
	"github.com/Ab-Ezekiel/alx-backend-graphql-crm/internal/infrastructure/logger"
)

type postBody struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Handler returns the gin handler that executes GraphQL queries and
// mutations posted as {"query": ..., "variables": ...}
func Handler(schema graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body postBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []gin.H{{"message": "request must include a valid JSON query"}},
			})
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			OperationName:  body.OperationName,
			Context:        c.Request.Context(),
		})
		c.JSON(http.StatusOK, result)
	}
}

// HealthHandler reports service liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter builds the gin engine with logging, recovery, the GraphQL
// endpoint and, when enabled, the GraphiQL playground
func NewRouter(zapLogger *zap.Logger, schema graphql.Schema, cfg *config.Config) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.GinMiddleware(zapLogger))
	router.Use(logger.Recovery(zapLogger))

	router.GET("/health", HealthHandler)
	router.POST("/graphql", Handler(schema))
	if cfg.GraphQL.Playground {
		router.GET("/graphiql", PlaygroundHandler(cfg.App.Name, "/graphql"))
	}

	return router
}

// playgroundHTML loads GraphiQL from CDN so the schema can be browsed and
// queries executed against the running server.
const playgroundHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8" />
    <title>%s</title>
    <style>
        body { height: 100%%; margin: 0; overflow: hidden; }
        #graphiql { height: 100vh; }
    </style>
    <link rel="stylesheet" href="https://unpkg.com/graphiql@1.4.0/graphiql.min.css" />
    <script src="https://unpkg.com/react@16.14.0/umd/react.production.min.js"></script>
    <script src="https://unpkg.com/react-dom@16.14.0/umd/react-dom.production.min.js"></script>
    <script src="https://unpkg.com/graphiql@1.4.0/graphiql.min.js"></script>
</head>
<body>
    <div id="graphiql">Loading...</div>
    <script>
      function graphQLFetcher(graphQLParams) {
        return fetch('%s', {
          method: 'post',
          headers: { Accept: 'application/json', 'Content-Type': 'application/json' },
          body: JSON.stringify(graphQLParams),
          credentials: 'omit',
        }).then(function (response) {
          return response.json().catch(function () { return response.text(); });
        });
      }
      ReactDOM.render(
        React.createElement(GraphiQL, { fetcher: graphQLFetcher }),
        document.getElementById('graphiql'),
      );
    </script>
</body>
</html>`

// PlaygroundHandler serves the GraphiQL playground pointed at the given
// GraphQL endpoint
func PlaygroundHandler(title, graphqlEndpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, fmt.Sprintf(playgroundHTML, title, graphqlEndpoint))
	}
}
