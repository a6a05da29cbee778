package services

import (
	"context"
	"testing"

	"github.com/arashsoltani/zarshop/app/models"
)

func TestOrganizeCategoriesBucketsAndSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	watches := f.category("Watches", "", nil)
	for _, name := range []string{"Men's Watches", "Men's Chronographs", "Men's Divers"} {
		f.category(name, models.SectionMen, watches)
	}
	for _, name := range []string{"Women's Watches", "Women's Jewelry Watches", "Women's Bracelets"} {
		f.category(name, models.SectionWomen, watches)
	}
	for _, name := range []string{"Unisex Watches", "Smart Watches", "Pocket Watches"} {
		f.category(name, models.SectionUnisex, watches)
	}

	organized, err := f.organizerSvc.OrganizeCategories(ctx)
	if err != nil {
		t.Fatalf("organize categories: %v", err)
	}

	if organized.Summary.TotalCategories != 9 {
		t.Fatalf("total = %d, want 9", organized.Summary.TotalCategories)
	}
	if organized.Summary.GeneralCount != 0 {
		t.Fatalf("general count = %d, want 0", organized.Summary.GeneralCount)
	}
	if organized.Summary.MenCount != 3 || organized.Summary.WomenCount != 3 || organized.Summary.UnisexCount != 3 {
		t.Fatalf("unexpected summary %+v", organized.Summary)
	}

	// The container category is not an entry itself.
	for _, entries := range organized.Sections {
		for _, e := range entries {
			if e.ID == watches.ID {
				t.Fatal("container categories must not appear in buckets")
			}
		}
	}
}

func TestOrganizeCategoriesCountsAndSorts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	watches := f.category("Watches", "", nil)
	divers := f.category("Divers", models.SectionMen, watches)
	chronos := f.category("Chronographs", models.SectionMen, watches)

	f.product("Chrono One", chronos)
	for _, name := range []string{"Diver One", "Diver Two", "Diver Three"} {
		f.product(name, divers)
	}

	organized, err := f.organizerSvc.OrganizeCategories(ctx)
	if err != nil {
		t.Fatalf("organize categories: %v", err)
	}

	men := organized.Sections[models.SectionMen]
	if len(men) != 2 {
		t.Fatalf("expected 2 men's categories, got %d", len(men))
	}
	if men[0].ID != divers.ID || men[0].ProductCount != 3 {
		t.Fatalf("most popular category should come first, got %+v", men[0])
	}
	if men[1].ProductCount != 1 {
		t.Fatalf("chronographs count = %d, want 1", men[1].ProductCount)
	}
	if men[0].ParentID == nil || *men[0].ParentID != watches.ID {
		t.Fatalf("parent linkage missing: %+v", men[0])
	}
	if men[0].ParentName == nil || *men[0].ParentName != "Watches" {
		t.Fatalf("parent name missing: %+v", men[0])
	}
}

func TestOrganizeCategoriesDefaultsToGeneral(t *testing.T) {
	f := newFixture(t)

	f.category("Books", "", nil)

	organized, err := f.organizerSvc.OrganizeCategories(context.Background())
	if err != nil {
		t.Fatalf("organize categories: %v", err)
	}
	if organized.Summary.GeneralCount != 1 {
		t.Fatalf("untagged leaf should land in general, summary %+v", organized.Summary)
	}
	if got := organized.Sections[models.SectionGeneral][0].Section; got != models.SectionGeneral {
		t.Fatalf("entry section = %q, want general", got)
	}
}

func TestOrganizeCategoriesSkipsHidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hidden := f.category("Archive", models.SectionGeneral, nil)
	hidden.IsVisible = false
	if err := f.categoryRepo.Update(ctx, hidden); err != nil {
		t.Fatalf("hide category: %v", err)
	}

	organized, err := f.organizerSvc.OrganizeCategories(ctx)
	if err != nil {
		t.Fatalf("organize categories: %v", err)
	}
	if organized.Summary.TotalCategories != 0 {
		t.Fatalf("hidden categories must be excluded, summary %+v", organized.Summary)
	}
}

func TestOrganizeCategoriesGenderFromName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Persian catalog name carries the gender word; no explicit section tag.
	mens := f.category("ساعت مردانه", "", nil)
	books := f.category("Books", "", nil)

	organized, err := f.organizerSvc.OrganizeCategories(ctx)
	if err != nil {
		t.Fatalf("organize categories: %v", err)
	}

	men := organized.Sections[models.SectionMen]
	if len(men) != 1 || men[0].ID != mens.ID {
		t.Fatalf("gendered name should bucket into men, got %+v", organized.Sections)
	}
	if men[0].Gender == nil || *men[0].Gender != "مردانه" {
		t.Fatalf("gender = %v, want مردانه", men[0].Gender)
	}

	general := organized.Sections[models.SectionGeneral]
	if len(general) != 1 || general[0].ID != books.ID {
		t.Fatalf("ungendered name should stay general, got %+v", organized.Sections)
	}
	if general[0].Gender != nil {
		t.Fatalf("gender should be nil for ungendered categories, got %v", *general[0].Gender)
	}
}
