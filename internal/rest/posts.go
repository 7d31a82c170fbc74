package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dfryer1193/postapi/api"
	"github.com/dfryer1193/postapi/posts/application"
	"github.com/dfryer1193/postapi/posts/domain"
)

const notFoundMessage = "post not found"

// PostsApi holds the handlers for the /posts routes.
type PostsApi struct {
	service *application.PostService
}

func NewPostsApi(service *application.PostService) *PostsApi {
	return &PostsApi{
		service: service,
	}
}

func (a *PostsApi) GetPosts(c *gin.Context) {
	posts, err := a.service.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, toApiPost(p))
	}

	c.JSON(http.StatusOK, out)
}

func (a *PostsApi) GetPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := a.service.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApiPost(post))
}

func (a *PostsApi) CreatePost(c *gin.Context) {
	proto := &api.PostProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := a.service.CreatePost(c.Request.Context(), proto.Title, proto.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApiPost(post))
}

func (a *PostsApi) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	proto := &api.PostProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := a.service.UpdatePost(c.Request.Context(), id, proto.Title, proto.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApiPost(post))
}

func (a *PostsApi) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := a.service.DeletePost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApiPost(post))
}

// postID parses the :postId path parameter, writing a 400 response when it
// is not an integer.
func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return 0, false
	}
	return id, true
}

// respondError maps service errors to the HTTP contract: absent rows are
// 404 with a fixed message, anything else is a store failure surfaced
// as 500.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func toApiPost(p *domain.Post) api.Post {
	return api.Post{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
	}
}
