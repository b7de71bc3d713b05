package domain

import (
	"time"
)

var registerThreadSpec = entitySpec{name: "REGISTER_THREAD", action: "membuat thread baru"}

// RegisterThread is the validated input of thread creation.
type RegisterThread struct {
	Title string
	Body  string
}

func NewRegisterThread(payload Payload) (RegisterThread, error) {
	fields, err := registerThreadSpec.stringFields(payload, "title", "body")
	if err != nil {
		return RegisterThread{}, err
	}
	return RegisterThread{Title: fields[0], Body: fields[1]}, nil
}

type RegisteredThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

// ThreadRecord is the thread header as read from storage.
type ThreadRecord struct {
	Id       ThreadId
	Title    string
	Body     string
	Date     time.Time
	Username Username
}

type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

func NewThreadDetail(thread ThreadRecord, comments []CommentDetail) ThreadDetail {
	if comments == nil {
		comments = []CommentDetail{}
	}
	return ThreadDetail{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: comments,
	}
}
