package likeapp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chirp/internal/core/like"
	likeapp "chirp/internal/core/like/service"
	"chirp/internal/core/post"
)

// mockPostRepository implements post.PostRepository; only FindByID matters
// to the like service.
type mockPostRepository struct {
	posts map[string]*post.Post
}

func newMockPostRepo(postIDs ...string) *mockPostRepository {
	m := &mockPostRepository{posts: make(map[string]*post.Post)}
	for _, id := range postIDs {
		m.posts[id] = &post.Post{ID: uuid.FromStringOrNil(id)}
	}
	return m
}

func (m *mockPostRepository) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	m.posts[p.ID.String()] = p
	return p, nil
}

func (m *mockPostRepository) FindByID(_ context.Context, id string) (*post.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	return p, nil
}

func (m *mockPostRepository) FindAll(_ context.Context) ([]*post.Post, error) {
	return nil, nil
}

func (m *mockPostRepository) FindByAccountID(_ context.Context, _ string) ([]*post.Post, error) {
	return nil, nil
}

func (m *mockPostRepository) Delete(_ context.Context, id string) error {
	delete(m.posts, id)
	return nil
}

// mockLikeRepository implements like.LikeRepository in memory, enforcing
// the composite unique constraint like the database does.
type mockLikeRepository struct {
	likes          []*like.Like
	forceDuplicate bool
}

func (m *mockLikeRepository) Create(_ context.Context, l *like.Like) (*like.Like, error) {
	if m.forceDuplicate {
		return nil, gorm.ErrDuplicatedKey
	}
	for _, e := range m.likes {
		if e.PostID == l.PostID && e.AccountID == l.AccountID {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	m.likes = append(m.likes, l)
	return l, nil
}

func (m *mockLikeRepository) Delete(_ context.Context, postID, accountID string) error {
	kept := m.likes[:0]
	for _, e := range m.likes {
		if e.PostID.String() == postID && e.AccountID.String() == accountID {
			continue
		}
		kept = append(kept, e)
	}
	m.likes = kept
	return nil
}

func (m *mockLikeRepository) Exists(_ context.Context, postID, accountID string) (bool, error) {
	if m.forceDuplicate {
		return false, nil
	}
	for _, e := range m.likes {
		if e.PostID.String() == postID && e.AccountID.String() == accountID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLikeRepository) CountByPostID(_ context.Context, postID string) (int64, error) {
	var n int64
	for _, e := range m.likes {
		if e.PostID.String() == postID {
			n++
		}
	}
	return n, nil
}

func (m *mockLikeRepository) FindPostIDsByAccountID(_ context.Context, accountID string) ([]string, error) {
	var out []string
	for _, e := range m.likes {
		if e.AccountID.String() == accountID {
			out = append(out, e.PostID.String())
		}
	}
	return out, nil
}

func setupService(postIDs ...string) (*likeapp.LikeService, *mockLikeRepository) {
	repo := &mockLikeRepository{}
	svc := likeapp.NewLikeService(repo, newMockPostRepo(postIDs...), zap.NewNop())
	return svc, repo
}

func TestLikeTwiceKeepsOneEdge(t *testing.T) {
	postID := uuid.Must(uuid.NewV4()).String()
	accountID := uuid.Must(uuid.NewV4()).String()
	svc, _ := setupService(postID)
	ctx := context.Background()

	if err := svc.Like(ctx, accountID, postID); err != nil {
		t.Fatalf("first Like returned error: %v", err)
	}
	if err := svc.Like(ctx, accountID, postID); err != nil {
		t.Fatalf("second Like returned error: %v", err)
	}

	count, err := svc.Count(ctx, postID)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected like count 1, got %d", count)
	}
}

func TestLikeMissingPost(t *testing.T) {
	svc, _ := setupService()

	err := svc.Like(context.Background(), uuid.Must(uuid.NewV4()).String(), uuid.Must(uuid.NewV4()).String())
	if !errors.Is(err, post.ErrNotFound) {
		t.Errorf("expected post.ErrNotFound, got %v", err)
	}
}

func TestLikeLostRaceIsSuccess(t *testing.T) {
	postID := uuid.Must(uuid.NewV4()).String()
	svc, repo := setupService(postID)
	repo.forceDuplicate = true

	if err := svc.Like(context.Background(), uuid.Must(uuid.NewV4()).String(), postID); err != nil {
		t.Errorf("Like after lost race returned error: %v", err)
	}
}

func TestUnlikeNotLikedIsNoop(t *testing.T) {
	postID := uuid.Must(uuid.NewV4()).String()
	accountID := uuid.Must(uuid.NewV4()).String()
	svc, _ := setupService(postID)
	ctx := context.Background()

	if err := svc.Unlike(ctx, accountID, postID); err != nil {
		t.Fatalf("Unlike of never-liked post returned error: %v", err)
	}

	liked, err := svc.IsLikedBy(ctx, postID, accountID)
	if err != nil {
		t.Fatalf("IsLikedBy returned error: %v", err)
	}
	if liked {
		t.Error("expected IsLikedBy to remain false")
	}
}

func TestUnlikeMissingPost(t *testing.T) {
	svc, _ := setupService()

	err := svc.Unlike(context.Background(), uuid.Must(uuid.NewV4()).String(), uuid.Must(uuid.NewV4()).String())
	if !errors.Is(err, post.ErrNotFound) {
		t.Errorf("expected post.ErrNotFound, got %v", err)
	}
}

func TestUnlikeRemovesEdge(t *testing.T) {
	postID := uuid.Must(uuid.NewV4()).String()
	accountID := uuid.Must(uuid.NewV4()).String()
	svc, _ := setupService(postID)
	ctx := context.Background()

	if err := svc.Like(ctx, accountID, postID); err != nil {
		t.Fatalf("Like returned error: %v", err)
	}
	if err := svc.Unlike(ctx, accountID, postID); err != nil {
		t.Fatalf("Unlike returned error: %v", err)
	}

	liked, _ := svc.IsLikedBy(ctx, postID, accountID)
	if liked {
		t.Error("expected IsLikedBy to be false after Unlike")
	}
	count, _ := svc.Count(ctx, postID)
	if count != 0 {
		t.Errorf("expected like count 0, got %d", count)
	}
}
