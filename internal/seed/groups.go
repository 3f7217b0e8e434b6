package seed

import (
	"yatube/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInGroup is a permanent, admin-curated group.
type BuiltInGroup struct {
	Title       string
	Slug        string
	Description string
}

// BuiltInGroups defines the groups every deployment starts with. The API
// exposes groups read-only, so this list is the only way they appear.
var BuiltInGroups = []BuiltInGroup{
	{Title: "The Commons", Slug: "commons", Description: "General discussion for everyone."},
	{Title: "Travel Notes", Slug: "travel", Description: "Trips, places, and travel writing."},
	{Title: "The Reading Room", Slug: "books", Description: "Books, writing, and reading lists."},
	{Title: "Kitchen Stories", Slug: "food", Description: "Food, cooking, and recipes."},
	{Title: "The Darkroom", Slug: "photography", Description: "Photography and visual diaries."},
	{Title: "Engine Room", Slug: "tech", Description: "Technology and tooling talk."},
	{Title: "The Scoreboard", Slug: "sports", Description: "Sports follow-ups and match threads."},
	{Title: "Night Shift", Slug: "music", Description: "Music discovery and reviews."},
}

// Groups upserts the built-in groups, keyed by slug. Re-running refreshes
// titles and descriptions without touching posts already in the group.
func Groups(db *gorm.DB) error {
	for _, item := range BuiltInGroups {
		group := models.Group{
			Title:       item.Title,
			Slug:        item.Slug,
			Description: item.Description,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "updated_at"}),
		}).Create(&group).Error; err != nil {
			return err
		}
	}
	return nil
}
