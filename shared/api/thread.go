package api

import (
	"github.com/forumapi/forum-api/shared/domain"
)

// Thread, comment and reply creation bodies are decoded into domain.Payload
// and validated by the entity constructors, so only responses live here.

type AddThreadResponse struct {
	AddedThread domain.RegisteredThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddCommentResponse struct {
	AddedComment domain.RegisteredComment `json:"addedComment"`
}

type AddReplyResponse struct {
	AddedReply domain.RegisteredReply `json:"addedReply"`
}
