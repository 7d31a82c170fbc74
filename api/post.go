package api

// Post is the wire representation of a stored post.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostProto is the client-supplied shape for create and update requests.
// The id is always assigned by the store.
type PostProto struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
