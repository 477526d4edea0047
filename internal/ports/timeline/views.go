package timeline

import (
	accountPort "chirp/internal/ports/account"
	postPort "chirp/internal/ports/post"
)

// View-ready projections composed by the timeline service. All three are
// read-only snapshots relative to the viewing account.

type ProfileView struct {
	Account           *accountPort.AccountDTO `json:"account"`
	Posts             []*postPort.PostDTO     `json:"posts"`
	FollowerCount     int64                   `json:"followerCount"`
	FollowingCount    int64                   `json:"followingCount"`
	IsViewerFollowing bool                    `json:"isViewerFollowing"`
}

type FeedView struct {
	Posts        []*postPort.PostDTO `json:"posts"`
	LikedPostIDs []string            `json:"likedPostIds"`
}

type PostDetailView struct {
	Post            *postPort.PostDTO `json:"post"`
	LikeCount       int64             `json:"likeCount"`
	IsLikedByViewer bool              `json:"isLikedByViewer"`
}
