package services

import (
	"context"
	"sort"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/arashsoltani/zarshop/app/repositories"
)

// OrganizerService groups the catalog's leaf categories into the four
// display sections the mobile app renders.
type OrganizerService struct {
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewOrganizerService(categoryRepo repositories.CategoryRepositoryImpl) *OrganizerService {
	return &OrganizerService{categoryRepo: categoryRepo}
}

// CategoryEntry is one organized category as presented to the client.
type CategoryEntry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	ProductCount int64   `json:"product_count"`
	ParentName   *string `json:"parent_name"`
	ParentID     *string `json:"parent_id"`
	Gender       *string `json:"gender"`
	Section      string  `json:"section"`
}

// OrganizedCategories buckets leaf categories by display section, with
// per-bucket and total counts.
type OrganizedCategories struct {
	Sections map[string][]CategoryEntry
	Summary  Summary
}

type Summary struct {
	MenCount        int `json:"men_count"`
	WomenCount      int `json:"women_count"`
	UnisexCount     int `json:"unisex_count"`
	GeneralCount    int `json:"general_count"`
	TotalCategories int `json:"total_categories"`
}

// OrganizeCategories partitions the visible leaf categories into the
// men/women/unisex/general buckets. Product counts are read live, include
// descendant categories, and each bucket is sorted by product count with the
// most popular first.
func (s *OrganizerService) OrganizeCategories(ctx context.Context) (*OrganizedCategories, error) {
	categories, err := s.categoryRepo.GetVisible(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load categories", err)
	}

	organized := &OrganizedCategories{Sections: map[string][]CategoryEntry{}}
	for _, section := range models.Sections {
		organized.Sections[section] = []CategoryEntry{}
	}

	for _, category := range categories {
		hasChildren, err := s.categoryRepo.HasChildren(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		if hasChildren {
			// Container categories are navigation nodes, not entries.
			continue
		}

		count, err := s.productCount(ctx, category.ID)
		if err != nil {
			return nil, err
		}

		entry := CategoryEntry{
			ID:           category.ID,
			Name:         category.Name,
			Label:        category.DisplayName(),
			ProductCount: count,
			Gender:       category.Gender(),
			Section:      category.DisplaySection(),
		}
		if category.Parent != nil {
			entry.ParentName = &category.Parent.Name
			entry.ParentID = &category.Parent.ID
		}
		organized.Sections[entry.Section] = append(organized.Sections[entry.Section], entry)
	}

	for section := range organized.Sections {
		entries := organized.Sections[section]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].ProductCount > entries[j].ProductCount
		})
	}

	organized.Summary = Summary{
		MenCount:     len(organized.Sections[models.SectionMen]),
		WomenCount:   len(organized.Sections[models.SectionWomen]),
		UnisexCount:  len(organized.Sections[models.SectionUnisex]),
		GeneralCount: len(organized.Sections[models.SectionGeneral]),
	}
	organized.Summary.TotalCategories = organized.Summary.MenCount +
		organized.Summary.WomenCount +
		organized.Summary.UnisexCount +
		organized.Summary.GeneralCount

	return organized, nil
}

func (s *OrganizerService) productCount(ctx context.Context, categoryID string) (int64, error) {
	descendants, err := s.categoryRepo.DescendantIDs(ctx, categoryID)
	if err != nil {
		return 0, err
	}
	scope := append([]string{categoryID}, descendants...)
	return s.categoryRepo.CountProducts(ctx, scope)
}
