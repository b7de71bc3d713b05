package domain

import (
	"time"
)

var registerCommentSpec = entitySpec{name: "REGISTER_COMMENT", action: "membuat komentar baru"}

type RegisterComment struct {
	Content string
}

func NewRegisterComment(payload Payload) (RegisterComment, error) {
	fields, err := registerCommentSpec.stringFields(payload, "content")
	if err != nil {
		return RegisterComment{}, err
	}
	return RegisterComment{Content: fields[0]}, nil
}

type RegisteredComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// CommentRecord is a comment row joined with its author's username.
// Content is the stored content even when IsDeleted is set.
type CommentRecord struct {
	Id        CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}

// CommentDetail is the read-model of a comment inside a thread detail.
type CommentDetail struct {
	Id        CommentId   `json:"id"`
	Username  Username    `json:"username"`
	Date      time.Time   `json:"date"`
	Content   string      `json:"content"`
	IsDeleted bool        `json:"isDeleted"`
	LikeCount int         `json:"likeCount"`
	Replies   []ReplyView `json:"replies"`
}

// NewCommentDetail redacts the content of a deleted comment. Replies are
// attached regardless of the comment's own deletion state.
func NewCommentDetail(comment CommentRecord, likeCount int, replies []ReplyView) CommentDetail {
	content := comment.Content
	if comment.IsDeleted {
		content = DeletedCommentContent
	}
	if likeCount < 0 {
		likeCount = 0
	}
	if replies == nil {
		replies = []ReplyView{}
	}
	return CommentDetail{
		Id:        comment.Id,
		Username:  comment.Username,
		Date:      comment.Date,
		Content:   content,
		IsDeleted: comment.IsDeleted,
		LikeCount: likeCount,
		Replies:   replies,
	}
}
