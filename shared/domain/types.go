package domain

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string

	Username = string
	Password = string
)

// Payload is a raw, decoded request body handed to entity constructors.
type Payload = map[string]any

// Id prefixes. Storage appends a generated suffix.
const (
	UserIdPrefix    = "user-"
	ThreadIdPrefix  = "thread-"
	CommentIdPrefix = "comment-"
	ReplyIdPrefix   = "reply-"
	LikeIdPrefix    = "like-"
)

// Redaction strings shown in place of soft-deleted content.
const (
	DeletedCommentContent = "**komentar telah dihapus**"
	DeletedReplyContent   = "**balasan telah dihapus**"
)
