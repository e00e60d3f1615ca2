package services

import (
	"context"
	"fmt"

	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/repositories"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/sanitize"
)

// PostService defines the interface for feed operations
type PostService interface {
	CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	GetFeed(ctx context.Context, page, pageSize int) (*dto.PostListResponse, error)
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	postRepo *repositories.PostRepository
	userRepo *repositories.UserRepository
}

// NewPostService creates a new post service instance
func NewPostService(postRepo *repositories.PostRepository, userRepo *repositories.UserRepository) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost shares a new post on the feed
func (s *postServiceImpl) CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	content := sanitize.Text(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: post content cannot be empty", apperrors.ErrValidationFailed)
	}

	post := &models.Post{
		UserID:  userID,
		Content: content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving author: %w", err)
	}

	return &dto.PostResponse{
		ID:        post.ID,
		Username:  user.Username,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}, nil
}

// GetFeed retrieves a newest-first page of the feed
func (s *postServiceImpl) GetFeed(ctx context.Context, page, pageSize int) (*dto.PostListResponse, error) {
	posts, total, err := s.postRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feed: %w", err)
	}

	items := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.PostResponse{
			ID:        p.ID,
			Username:  p.Username,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
		})
	}

	return &dto.PostListResponse{
		Posts:      items,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}
