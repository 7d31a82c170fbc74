package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dfryer1193/postapi/internal/metrics"
	"github.com/dfryer1193/postapi/posts/application"
)

// NewApi registers all routes on the given engine.
func NewApi(router *gin.Engine, service *application.PostService, m *metrics.Manager) {
	postsApi := NewPostsApi(service)

	router.GET("/", GetRoot)
	router.GET("/healthz", GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))

	posts := router.Group("/posts")
	{
		posts.GET("", postsApi.GetPosts)
		posts.POST("", postsApi.CreatePost)
		posts.GET("/:postId", postsApi.GetPost)
		posts.PUT("/:postId", postsApi.UpdatePost)
		posts.DELETE("/:postId", postsApi.DeletePost)
	}
}

func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the posts API"})
}

func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
