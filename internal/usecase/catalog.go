package usecase

import (
	"fmt"

	"belle-detente-backend/internal/domain"
)

type catalogUsecase struct {
	store domain.ContentStore
}

// NewCatalogUsecase exposes the content catalog lookups. Pages never read
// the raw content files; everything goes through these helpers.
func NewCatalogUsecase(store domain.ContentStore) domain.CatalogUsecase {
	return &catalogUsecase{store: store}
}

func (uc *catalogUsecase) ListExperiences() []domain.Experience {
	return uc.store.Experiences()
}

func (uc *catalogUsecase) GetExperience(id string) *domain.Experience {
	experiences := uc.store.Experiences()
	for i := range experiences {
		if experiences[i].ID == id {
			return &experiences[i]
		}
	}
	return nil
}

func (uc *catalogUsecase) GetDuration(durationID string) (*domain.Experience, *domain.Duration) {
	experiences := uc.store.Experiences()
	for i := range experiences {
		for j := range experiences[i].Durations {
			if experiences[i].Durations[j].ID == durationID {
				return &experiences[i], &experiences[i].Durations[j]
			}
		}
	}
	return nil, nil
}

func (uc *catalogUsecase) MinPrice(experienceID string) (int, bool) {
	exp := uc.GetExperience(experienceID)
	if exp == nil || len(exp.Durations) == 0 {
		return 0, false
	}
	min := exp.Durations[0].Price
	for _, d := range exp.Durations[1:] {
		if d.Price < min {
			min = d.Price
		}
	}
	return min, true
}

func (uc *catalogUsecase) RecommendedDuration(experienceID string) *domain.Duration {
	exp := uc.GetExperience(experienceID)
	if exp == nil || len(exp.Durations) == 0 {
		return nil
	}
	for i := range exp.Durations {
		if exp.Durations[i].Recommended {
			return &exp.Durations[i]
		}
	}
	return &exp.Durations[0]
}

func (uc *catalogUsecase) BookingURL(durationID string) string {
	booking := uc.store.Booking()
	return fmt.Sprintf("https://cal.com/%s", uc.calLink(booking, durationID))
}

func (uc *catalogUsecase) BookingCalLink(durationID string) string {
	return uc.calLink(uc.store.Booking(), durationID)
}

// calLink resolves "username/event-slug", falling back to the catch-all
// event when the duration has no dedicated mapping.
func (uc *catalogUsecase) calLink(booking domain.BookingConfig, durationID string) string {
	slug, ok := booking.Mapping[durationID]
	if !ok {
		slug = booking.FallbackEventSlug
	}
	return fmt.Sprintf("%s/%s", booking.Username, slug)
}
