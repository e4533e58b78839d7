// internal/services/advertise_content_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// AdvertiseContentService owns the offer lifecycle. It talks to
// whichever content store was selected at composition time; the
// observable contract is the same for both backends.
type AdvertiseContentService struct {
	contents store.ContentStore
}

func NewAdvertiseContentService(contents store.ContentStore) *AdvertiseContentService {
	return &AdvertiseContentService{contents: contents}
}

type CreateContentRequest struct {
	Title         string                 `json:"title" validate:"required"`
	Slug          string                 `json:"slug"`
	OfferEndTime  time.Time              `json:"offerEndTime" validate:"required"`
	ThumbImage    string                 `json:"thumbImage" validate:"required"`
	Price         float64                `json:"price" validate:"required,gt=0"`
	OriginalPrice float64                `json:"originalPrice" validate:"omitempty,gte=0"`
	RegularImages []string               `json:"regularImages"`
	Videos        []string               `json:"videos"`
	DiscountShows []models.DiscountShow  `json:"discountShows"`
	Section1      *models.ContentSection `json:"section1"`
	Section2      *models.ContentSection `json:"section2"`
	Section3      *models.ContentSection `json:"section3"`
	Section4      *models.ContentSection `json:"section4"`
	Section5      *models.ContentSection `json:"section5"`
}

type UpdateContentRequest struct {
	Title         *string                `json:"title"`
	Slug          *string                `json:"slug"`
	OfferEndTime  *time.Time             `json:"offerEndTime"`
	ThumbImage    *string                `json:"thumbImage"`
	Price         *float64               `json:"price"`
	OriginalPrice *float64               `json:"originalPrice"`
	RegularImages []string               `json:"regularImages"`
	Videos        []string               `json:"videos"`
	DiscountShows []models.DiscountShow  `json:"discountShows"`
	Section1      *models.ContentSection `json:"section1"`
	Section2      *models.ContentSection `json:"section2"`
	Section3      *models.ContentSection `json:"section3"`
	Section4      *models.ContentSection `json:"section4"`
	Section5      *models.ContentSection `json:"section5"`
}

func (s *AdvertiseContentService) Create(ctx context.Context, req *CreateContentRequest) (*models.AdvertiseContent, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	if slug == "" {
		return nil, Invalid("Title must contain at least one letter or digit")
	}

	if err := s.ensureSlugFree(ctx, slug, uuid.Nil); err != nil {
		return nil, err
	}

	content := &models.AdvertiseContent{
		Title:         req.Title,
		Slug:          slug,
		OfferEndTime:  req.OfferEndTime,
		ThumbImage:    req.ThumbImage,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		RegularImages: orEmpty(req.RegularImages),
		Videos:        orEmpty(req.Videos),
		DiscountShows: models.DiscountShows(req.DiscountShows),
		Section1:      sectionOrDefault(req.Section1),
		Section2:      sectionOrDefault(req.Section2),
		Section3:      sectionOrDefault(req.Section3),
		Section4:      sectionOrDefault(req.Section4),
		Section5:      sectionOrDefault(req.Section5),
	}
	if content.DiscountShows == nil {
		content.DiscountShows = models.DiscountShows{}
	}

	if err := s.contents.Create(ctx, content); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, Conflict("Advertise content with this slug already exists")
		}
		return nil, Internal("Error creating advertise content", err)
	}

	content.AttachTimeRemaining()
	return content, nil
}

// List returns contents filtered by offer status and sorted. Unknown
// status values fall back to no filter; unknown sort values fall back
// to newest first.
func (s *AdvertiseContentService) List(ctx context.Context, status, sortBy string) ([]models.AdvertiseContent, error) {
	q := store.ContentQuery{Sort: store.ContentSortNewest}
	switch status {
	case "active":
		q.Status = store.ContentStatusActive
	case "expired":
		q.Status = store.ContentStatusExpired
	}
	switch sortBy {
	case "oldest":
		q.Sort = store.ContentSortOldest
	case "ending-soon":
		q.Sort = store.ContentSortEndingSoon
	}

	contents, err := s.contents.FindMany(ctx, q)
	if err != nil {
		return nil, Internal("Error fetching advertise contents", err)
	}
	return attachTimeRemaining(contents), nil
}

// ActiveOffers lists non-expired offers, soonest-ending first.
func (s *AdvertiseContentService) ActiveOffers(ctx context.Context) ([]models.AdvertiseContent, error) {
	contents, err := s.contents.FindMany(ctx, store.ContentQuery{
		Status: store.ContentStatusActive,
		Sort:   store.ContentSortEndingSoon,
	})
	if err != nil {
		return nil, Internal("Error fetching active offers", err)
	}
	return attachTimeRemaining(contents), nil
}

// Search matches offers by title. Results may differ between backends:
// the in-memory store does substring matching, the persistent store
// relevance-ranked text search. Accepted divergence, not a bug.
func (s *AdvertiseContentService) Search(ctx context.Context, query string) ([]models.AdvertiseContent, error) {
	if query == "" {
		return nil, Invalid("Search query is required")
	}

	contents, err := s.contents.Search(ctx, query)
	if err != nil {
		return nil, Internal("Error searching advertise contents", err)
	}
	return attachTimeRemaining(contents), nil
}

func (s *AdvertiseContentService) GetByID(ctx context.Context, id uuid.UUID) (*models.AdvertiseContent, error) {
	content, err := s.contents.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Advertise content not found")
		}
		return nil, Internal("Error fetching advertise content", err)
	}

	content.AttachTimeRemaining()
	return content, nil
}

func (s *AdvertiseContentService) GetBySlug(ctx context.Context, slug string) (*models.AdvertiseContent, error) {
	content, err := s.contents.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Advertise content not found")
		}
		return nil, Internal("Error fetching advertise content", err)
	}

	content.AttachTimeRemaining()
	return content, nil
}

func (s *AdvertiseContentService) Update(ctx context.Context, id uuid.UUID, req *UpdateContentRequest) (*models.AdvertiseContent, error) {
	content, err := s.contents.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Advertise content not found")
		}
		return nil, Internal("Error fetching advertise content", err)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, Invalid("Title cannot be empty")
		}
		content.Title = *req.Title
		// The slug follows the title unless an explicit slug is given.
		if req.Slug == nil {
			content.Slug = utils.GenerateSlug(*req.Title)
		}
	}
	if req.Slug != nil {
		if *req.Slug == "" {
			return nil, Invalid("Slug cannot be empty")
		}
		content.Slug = *req.Slug
	}
	if content.Slug == "" {
		return nil, Invalid("Title must contain at least one letter or digit")
	}
	if req.OfferEndTime != nil {
		content.OfferEndTime = *req.OfferEndTime
	}
	if req.ThumbImage != nil {
		content.ThumbImage = *req.ThumbImage
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, Invalid("Price must be greater than 0")
		}
		content.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		content.OriginalPrice = *req.OriginalPrice
	}
	if req.RegularImages != nil {
		content.RegularImages = req.RegularImages
	}
	if req.Videos != nil {
		content.Videos = req.Videos
	}
	if req.DiscountShows != nil {
		content.DiscountShows = models.DiscountShows(req.DiscountShows)
	}
	if req.Section1 != nil {
		content.Section1 = *req.Section1
	}
	if req.Section2 != nil {
		content.Section2 = *req.Section2
	}
	if req.Section3 != nil {
		content.Section3 = *req.Section3
	}
	if req.Section4 != nil {
		content.Section4 = *req.Section4
	}
	if req.Section5 != nil {
		content.Section5 = *req.Section5
	}

	if err := s.ensureSlugFree(ctx, content.Slug, content.ID); err != nil {
		return nil, err
	}

	if err := s.contents.Update(ctx, content); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, Conflict("Advertise content with this slug already exists")
		case errors.Is(err, store.ErrNotFound):
			return nil, NotFound("Advertise content not found")
		default:
			return nil, Internal("Error updating advertise content", err)
		}
	}

	content.AttachTimeRemaining()
	return content, nil
}

// Delete removes a content by id. Deleting an already-deleted id yields
// not-found, never silent success.
func (s *AdvertiseContentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.contents.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("Advertise content not found")
		}
		return Internal("Error deleting advertise content", err)
	}
	return nil
}

// ensureSlugFree rejects a slug already held by a different content.
// The check-then-insert window is narrow but real; the store-level
// uniqueness constraint is the backstop.
func (s *AdvertiseContentService) ensureSlugFree(ctx context.Context, slug string, selfID uuid.UUID) error {
	existing, err := s.contents.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return Internal("Error checking slug uniqueness", err)
	}
	if existing.ID != selfID {
		return Conflict("Advertise content with this slug already exists")
	}
	return nil
}

func attachTimeRemaining(contents []models.AdvertiseContent) []models.AdvertiseContent {
	for i := range contents {
		contents[i].AttachTimeRemaining()
	}
	return contents
}

func sectionOrDefault(section *models.ContentSection) models.ContentSection {
	if section == nil {
		return models.DefaultContentSection()
	}
	return *section
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
