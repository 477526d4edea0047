package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"chirp/internal/adapters/httpapi/middleware"
	accountPort "chirp/internal/ports/account"
	friendshipPort "chirp/internal/ports/friendship"
	postPort "chirp/internal/ports/post"
	sessionPort "chirp/internal/ports/session"
	timelinePort "chirp/internal/ports/timeline"
)

// Inbound ports: the interfaces the controllers need from the use cases.

type AccountUseCase interface {
	Register(ctx context.Context, username, email, password string) (*accountPort.AccountDTO, error)
	Login(ctx context.Context, username, password string) (*accountPort.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	GetByUsername(ctx context.Context, username string) (*accountPort.AccountDTO, error)
}

type FriendshipUseCase interface {
	Follow(ctx context.Context, followerID, targetID string) (bool, error)
	Unfollow(ctx context.Context, followerID, targetID string) error
	ListFollowers(ctx context.Context, accountID string) ([]*friendshipPort.FriendshipDTO, error)
	ListFollowing(ctx context.Context, accountID string) ([]*friendshipPort.FriendshipDTO, error)
}

type PostUseCase interface {
	Create(ctx context.Context, content, accountID string) (*postPort.PostDTO, error)
	Delete(ctx context.Context, postID, requestingAccountID string) error
}

type LikeUseCase interface {
	Like(ctx context.Context, accountID, postID string) error
	Unlike(ctx context.Context, accountID, postID string) error
	Count(ctx context.Context, postID string) (int64, error)
}

type TimelineUseCase interface {
	Home(ctx context.Context, viewerID string) (*timelinePort.FeedView, error)
	Profile(ctx context.Context, targetID, viewerID string) (*timelinePort.ProfileView, error)
	PostDetail(ctx context.Context, postID, viewerID string) (*timelinePort.PostDetailView, error)
}

// SetupRoutes wires the controllers; the use cases are injected from main.
func SetupRoutes(
	accountUC AccountUseCase,
	friendshipUC FriendshipUseCase,
	postUC PostUseCase,
	likeUC LikeUseCase,
	timelineUC TimelineUseCase,
	sessions sessionPort.Store,
	jwtKey []byte,
) *gin.Engine {
	r := gin.Default()
	ac := NewAccountController(accountUC)
	fc := NewFriendshipController(friendshipUC)
	pc := NewPostController(postUC)
	lc := NewLikeController(likeUC)
	tc := NewTimelineController(timelineUC, accountUC)

	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)

	auth := r.Group("/", middleware.AuthRequired(sessions, jwtKey))
	auth.POST("/logout", ac.Logout)

	auth.POST("/follow", fc.Follow)
	auth.POST("/unfollow", fc.Unfollow)
	auth.GET("/followers", fc.ListFollowers)
	auth.GET("/following", fc.ListFollowing)

	auth.POST("/posts", pc.Create)
	auth.GET("/posts", tc.Home)
	auth.GET("/posts/:id", tc.PostDetail)
	auth.DELETE("/posts/:id", pc.Delete)

	auth.POST("/posts/:id/like", lc.Like)
	auth.POST("/posts/:id/unlike", lc.Unlike)

	auth.GET("/users/:username/profile", tc.Profile)

	return r
}
