package schemas

// CreatePost is the body of POST /. Vote counters are optional at creation
// and default to zero; when present they must be non-negative.
type CreatePost struct {
	Title       string   `json:"title" validate:"required,notblank"`
	ResourceURL string   `json:"resourceUrl" validate:"required,url"`
	Description string   `json:"description" validate:"required,notblank"`
	Tags        []string `json:"tags" validate:"omitempty,dive,notblank"`
	UpVotes     *int     `json:"upVotes" validate:"omitempty,gte=0"`
	DownVotes   *int     `json:"downVotes" validate:"omitempty,gte=0"`
}

// Comment is the body of POST /:id/comments. The user is optional; when
// supplied it must carry a name and a well-formed email.
type Comment struct {
	Text string       `json:"text" validate:"required,notblank"`
	User *CommentUser `json:"user" validate:"omitempty"`
}

type CommentUser struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
}

// Votes is the body of the combined vote endpoint. Counters are overwritten
// verbatim, which is the documented contract of the vote routes.
type Votes struct {
	UpVotes   *int `json:"upVotes" validate:"required,gte=0"`
	DownVotes *int `json:"downVotes" validate:"required,gte=0"`
}

type UpVotes struct {
	UpVotes *int `json:"upVotes" validate:"required,gte=0"`
}

type DownVotes struct {
	DownVotes *int `json:"downVotes" validate:"required,gte=0"`
}
