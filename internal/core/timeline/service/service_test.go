package timelineapp_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/gofrs/uuid"

	"chirp/internal/core/account"
	"chirp/internal/core/friendship"
	"chirp/internal/core/like"
	"chirp/internal/core/post"
	timelineapp "chirp/internal/core/timeline/service"
)

// fixtures is a shared in-memory backing store for all four mock
// repositories, so a scenario can be built up across entities.
type fixtures struct {
	accounts map[string]*account.Account
	posts    []*post.Post
	edges    []*friendship.Friendship
	likes    []*like.Like
}

func newFixtures() *fixtures {
	return &fixtures{accounts: make(map[string]*account.Account)}
}

func (f *fixtures) addAccount(username string) *account.Account {
	a := &account.Account{
		ID:       uuid.Must(uuid.NewV4()),
		Username: username,
		Email:    username + "@example.com",
	}
	f.accounts[a.ID.String()] = a
	return a
}

func (f *fixtures) addPost(author *account.Account, content string, createdAt time.Time) *post.Post {
	p := &post.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Content:   content,
		AccountID: author.ID,
		Account:   *author,
		CreatedAt: createdAt,
	}
	f.posts = append(f.posts, p)
	return p
}

func (f *fixtures) addFollow(follower, following *account.Account) {
	f.edges = append(f.edges, &friendship.Friendship{
		ID:          uuid.Must(uuid.NewV4()),
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	})
}

func (f *fixtures) addLike(a *account.Account, p *post.Post) {
	f.likes = append(f.likes, &like.Like{
		ID:        uuid.Must(uuid.NewV4()),
		PostID:    p.ID,
		AccountID: a.ID,
	})
}

type mockAccountRepo struct{ f *fixtures }

func (m *mockAccountRepo) Create(_ context.Context, a *account.Account) (*account.Account, error) {
	m.f.accounts[a.ID.String()] = a
	return a, nil
}

func (m *mockAccountRepo) FindByID(_ context.Context, id string) (*account.Account, error) {
	a, ok := m.f.accounts[id]
	if !ok {
		return nil, account.ErrNotFound
	}
	return a, nil
}

func (m *mockAccountRepo) FindByUsername(_ context.Context, username string) (*account.Account, error) {
	for _, a := range m.f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, account.ErrNotFound
}

type mockPostRepo struct{ f *fixtures }

func (m *mockPostRepo) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	m.f.posts = append(m.f.posts, p)
	return p, nil
}

func (m *mockPostRepo) FindByID(_ context.Context, id string) (*post.Post, error) {
	for _, p := range m.f.posts {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return nil, post.ErrNotFound
}

func sortedDesc(posts []*post.Post) []*post.Post {
	out := append([]*post.Post(nil), posts...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *mockPostRepo) FindAll(_ context.Context) ([]*post.Post, error) {
	return sortedDesc(m.f.posts), nil
}

func (m *mockPostRepo) FindByAccountID(_ context.Context, accountID string) ([]*post.Post, error) {
	var out []*post.Post
	for _, p := range m.f.posts {
		if p.AccountID.String() == accountID {
			out = append(out, p)
		}
	}
	return sortedDesc(out), nil
}

func (m *mockPostRepo) Delete(_ context.Context, _ string) error { return nil }

type mockFriendshipRepo struct{ f *fixtures }

func (m *mockFriendshipRepo) Create(_ context.Context, e *friendship.Friendship) (*friendship.Friendship, error) {
	m.f.edges = append(m.f.edges, e)
	return e, nil
}

func (m *mockFriendshipRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (m *mockFriendshipRepo) IsFollowing(_ context.Context, followerID, followingID string) (bool, error) {
	for _, e := range m.f.edges {
		if e.FollowerID.String() == followerID && e.FollowingID.String() == followingID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFriendshipRepo) CountFollowers(_ context.Context, accountID string) (int64, error) {
	var n int64
	for _, e := range m.f.edges {
		if e.FollowingID.String() == accountID {
			n++
		}
	}
	return n, nil
}

func (m *mockFriendshipRepo) CountFollowing(_ context.Context, accountID string) (int64, error) {
	var n int64
	for _, e := range m.f.edges {
		if e.FollowerID.String() == accountID {
			n++
		}
	}
	return n, nil
}

func (m *mockFriendshipRepo) FindFollowers(_ context.Context, _ string) ([]*friendship.Friendship, error) {
	return nil, nil
}

func (m *mockFriendshipRepo) FindFollowing(_ context.Context, _ string) ([]*friendship.Friendship, error) {
	return nil, nil
}

type mockLikeRepo struct{ f *fixtures }

func (m *mockLikeRepo) Create(_ context.Context, l *like.Like) (*like.Like, error) {
	m.f.likes = append(m.f.likes, l)
	return l, nil
}

func (m *mockLikeRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (m *mockLikeRepo) Exists(_ context.Context, postID, accountID string) (bool, error) {
	for _, l := range m.f.likes {
		if l.PostID.String() == postID && l.AccountID.String() == accountID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLikeRepo) CountByPostID(_ context.Context, postID string) (int64, error) {
	var n int64
	for _, l := range m.f.likes {
		if l.PostID.String() == postID {
			n++
		}
	}
	return n, nil
}

func (m *mockLikeRepo) FindPostIDsByAccountID(_ context.Context, accountID string) ([]string, error) {
	var out []string
	for _, l := range m.f.likes {
		if l.AccountID.String() == accountID {
			out = append(out, l.PostID.String())
		}
	}
	return out, nil
}

func setupService(f *fixtures) *timelineapp.TimelineService {
	return timelineapp.NewTimelineService(
		&mockAccountRepo{f}, &mockPostRepo{f}, &mockFriendshipRepo{f}, &mockLikeRepo{f},
	)
}

func TestProfileView(t *testing.T) {
	f := newFixtures()
	viewer := f.addAccount("viewer")
	target := f.addAccount("target")
	f.addFollow(viewer, target)

	base := time.Now()
	f.addPost(target, "first", base)
	f.addPost(target, "second", base.Add(time.Second))

	svc := setupService(f)
	profile, err := svc.Profile(context.Background(), target.ID.String(), viewer.ID.String())
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}

	if profile.Account.Username != "target" {
		t.Errorf("expected target profile, got %s", profile.Account.Username)
	}
	if !profile.IsViewerFollowing {
		t.Error("expected IsViewerFollowing to be true")
	}
	if profile.FollowerCount != 1 {
		t.Errorf("expected follower count 1, got %d", profile.FollowerCount)
	}
	if profile.FollowingCount != 0 {
		t.Errorf("expected following count 0, got %d", profile.FollowingCount)
	}
	if len(profile.Posts) != 2 || profile.Posts[0].Content != "second" {
		t.Errorf("expected target posts newest first, got %+v", profile.Posts)
	}
}

func TestProfileViewUnknownTarget(t *testing.T) {
	f := newFixtures()
	viewer := f.addAccount("viewer")

	svc := setupService(f)
	_, err := svc.Profile(context.Background(), uuid.Must(uuid.NewV4()).String(), viewer.ID.String())
	if !errors.Is(err, account.ErrNotFound) {
		t.Errorf("expected account.ErrNotFound, got %v", err)
	}
}

func TestHomeFeedOrderingAndLikedSet(t *testing.T) {
	f := newFixtures()
	viewer := f.addAccount("viewer")
	author := f.addAccount("author")

	base := time.Now()
	p1 := f.addPost(author, "t1", base)
	p2 := f.addPost(viewer, "t2", base.Add(time.Second))
	p3 := f.addPost(author, "t3", base.Add(2*time.Second))
	f.addLike(viewer, p1)

	svc := setupService(f)
	feed, err := svc.Home(context.Background(), viewer.ID.String())
	if err != nil {
		t.Fatalf("Home returned error: %v", err)
	}

	if len(feed.Posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(feed.Posts))
	}
	wantOrder := []string{p3.ID.String(), p2.ID.String(), p1.ID.String()}
	for i, want := range wantOrder {
		if feed.Posts[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, feed.Posts[i].ID)
		}
	}

	if len(feed.LikedPostIDs) != 1 || feed.LikedPostIDs[0] != p1.ID.String() {
		t.Errorf("expected liked set [%s], got %v", p1.ID.String(), feed.LikedPostIDs)
	}
}

func TestHomeFeedEmptyLikedSetIsNotNil(t *testing.T) {
	f := newFixtures()
	viewer := f.addAccount("viewer")

	svc := setupService(f)
	feed, err := svc.Home(context.Background(), viewer.ID.String())
	if err != nil {
		t.Fatalf("Home returned error: %v", err)
	}
	if feed.LikedPostIDs == nil {
		t.Error("expected empty liked set, got nil")
	}
}

func TestPostDetailView(t *testing.T) {
	f := newFixtures()
	viewer := f.addAccount("viewer")
	author := f.addAccount("author")
	other := f.addAccount("other")

	p := f.addPost(author, "hello", time.Now())
	f.addLike(viewer, p)
	f.addLike(other, p)

	svc := setupService(f)
	detail, err := svc.PostDetail(context.Background(), p.ID.String(), viewer.ID.String())
	if err != nil {
		t.Fatalf("PostDetail returned error: %v", err)
	}

	if detail.Post.Content != "hello" {
		t.Errorf("expected post content hello, got %s", detail.Post.Content)
	}
	if detail.LikeCount != 2 {
		t.Errorf("expected like count 2, got %d", detail.LikeCount)
	}
	if !detail.IsLikedByViewer {
		t.Error("expected IsLikedByViewer to be true")
	}
}

func TestPostDetailViewMissingPost(t *testing.T) {
	f := newFixtures()
	viewer := f.addAccount("viewer")

	svc := setupService(f)
	_, err := svc.PostDetail(context.Background(), uuid.Must(uuid.NewV4()).String(), viewer.ID.String())
	if !errors.Is(err, post.ErrNotFound) {
		t.Errorf("expected post.ErrNotFound, got %v", err)
	}
}

// Scenario from the original system: U1 follows U2, U2 posts, and U1's
// view of the world reflects both.
func TestFollowThenPostScenario(t *testing.T) {
	f := newFixtures()
	u1 := f.addAccount("u1")
	u2 := f.addAccount("u2")
	f.addFollow(u1, u2)
	f.addPost(u2, "hello", time.Now())

	svc := setupService(f)
	ctx := context.Background()

	feed, err := svc.Home(ctx, u1.ID.String())
	if err != nil {
		t.Fatalf("Home returned error: %v", err)
	}
	if len(feed.Posts) != 1 || feed.Posts[0].Content != "hello" {
		t.Fatalf("expected u2's post in u1's feed, got %+v", feed.Posts)
	}

	profile, err := svc.Profile(ctx, u2.ID.String(), u1.ID.String())
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if !profile.IsViewerFollowing {
		t.Error("expected u1 to be following u2")
	}
	if profile.FollowerCount != 1 {
		t.Errorf("expected follower count 1, got %d", profile.FollowerCount)
	}
}
