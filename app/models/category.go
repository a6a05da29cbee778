package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	SectionMen     = "men"
	SectionWomen   = "women"
	SectionUnisex  = "unisex"
	SectionGeneral = "general"
)

// Sections lists the organizer buckets in presentation order.
var Sections = []string{SectionMen, SectionWomen, SectionUnisex, SectionGeneral}

type Category struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string    `gorm:"size:100;not null;uniqueIndex"`
	Slug      string    `gorm:"size:100;not null;uniqueIndex"`
	Label     string    `gorm:"size:100"`
	ParentID  *string   `gorm:"size:36;index"`
	Parent    *Category `gorm:"foreignKey:ParentID"`
	Section   string    `gorm:"size:20;index"`
	IsVisible bool      `gorm:"not null;default:true"`
	Products  []Product `gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// DisplayName prefers the clean frontend label over the raw name.
func (c *Category) DisplayName() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

var genderWords = []struct {
	word    string
	section string
}{
	{"مردانه", SectionMen},
	{"زنانه", SectionWomen},
	{"یونیسکس", SectionUnisex},
}

// Gender extracts the Persian gender word carried in the category name, or
// nil for ungendered categories. Catalog names are Persian in production.
func (c *Category) Gender() *string {
	for _, g := range genderWords {
		if strings.Contains(c.Name, g.word) {
			word := g.word
			return &word
		}
	}
	return nil
}

// DisplaySection normalizes the organizer bucket: an explicit tag wins,
// otherwise the gender word in the name decides, defaulting to general.
func (c *Category) DisplaySection() string {
	switch c.Section {
	case SectionMen, SectionWomen, SectionUnisex:
		return c.Section
	}
	for _, g := range genderWords {
		if strings.Contains(c.Name, g.word) {
			return g.section
		}
	}
	return SectionGeneral
}
