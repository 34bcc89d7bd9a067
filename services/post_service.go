package services

import (
	"errors"
	"strings"

	"inkwell/models"
	"inkwell/utils"

	"gorm.io/gorm"
)

type PostService struct {
	db        *gorm.DB
	sanitizer *utils.Sanitizer
}

func NewPostService(db *gorm.DB, sanitizer *utils.Sanitizer) *PostService {
	return &PostService{db: db, sanitizer: sanitizer}
}

// ListAll returns every post, newest first, with the author preloaded for
// rendering.
func (s *PostService) ListAll() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.
		Preload("User").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("User").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Create(ownerID uint, form *models.PostForm) (*models.Post, error) {
	if strings.TrimSpace(form.Title) == "" {
		return nil, ErrValidation
	}

	post := &models.Post{
		UserID:   ownerID,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		ImageURL: form.ImageURL,
		Content:  s.sanitizer.StripMarkup(form.Content),
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// Update overwrites the editable fields of a post. The sanitizer runs on
// every write path, and CreatedAt is left untouched.
func (s *PostService) Update(id, editorID uint, form *models.PostForm) (*models.Post, error) {
	var post models.Post
	err := s.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !post.OwnedBy(editorID) {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(form.Title) == "" {
		return nil, ErrValidation
	}

	post.Title = form.Title
	post.Subtitle = form.Subtitle
	post.ImageURL = form.ImageURL
	post.Content = s.sanitizer.StripMarkup(form.Content)

	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

func (s *PostService) Delete(id, requesterID uint) error {
	var post models.Post
	err := s.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !post.OwnedBy(requesterID) {
		return ErrForbidden
	}

	return s.db.Delete(&post).Error
}
