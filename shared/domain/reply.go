package domain

import (
	"time"
)

var registerReplySpec = entitySpec{name: "REGISTER_REPLY", action: "membuat balasan baru"}

type RegisterReply struct {
	Content string
}

func NewRegisterReply(payload Payload) (RegisterReply, error) {
	fields, err := registerReplySpec.stringFields(payload, "content")
	if err != nil {
		return RegisterReply{}, err
	}
	return RegisterReply{Content: fields[0]}, nil
}

type RegisteredReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

type ReplyRecord struct {
	Id        ReplyId
	CommentId CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}

// ReplyView is a reply as shown under its comment. Deletion is visible only
// through the redacted content; unlike CommentDetail there is no isDeleted flag.
type ReplyView struct {
	Id       ReplyId   `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}

func NewReplyView(reply ReplyRecord) ReplyView {
	content := reply.Content
	if reply.IsDeleted {
		content = DeletedReplyContent
	}
	return ReplyView{
		Id:       reply.Id,
		Content:  content,
		Date:     reply.Date,
		Username: reply.Username,
	}
}
