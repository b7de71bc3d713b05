package domain

import "time"

// Like is a (comment, owner) membership. Storage keeps the pair unique.
type Like struct {
	Id        LikeId
	CommentId CommentId
	Owner     UserId
	Date      time.Time
}

// LikeCounts maps a comment to its number of likes. Comments without likes are absent.
type LikeCounts = map[CommentId]int
