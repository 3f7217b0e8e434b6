package seed

import (
	"log"
	"strings"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a realistic social mesh: users who
// follow each other, groups with posts, and comment threads.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes generated data. Order matters: comments and follows
// reference posts and users.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedUsers creates count users with a partially connected follow mesh.
// Each user follows roughly a fifth of the others.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	log.Printf("Seeding %d users...", count)

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	for _, follower := range users {
		for _, author := range users {
			if follower.ID == author.ID {
				continue
			}
			if s.factory.rng.Intn(5) == 0 {
				if err := s.factory.CreateFollow(follower, author); err != nil {
					return nil, err
				}
			}
		}
	}
	return users, nil
}

// SeedContent creates posts spread across users and the built-in groups,
// then sprinkles comments on them.
func (s *Seeder) SeedContent(users []*models.User, postCount int) error {
	if len(users) == 0 {
		return nil
	}
	log.Printf("Seeding %d posts...", postCount)

	var groups []*models.Group
	if err := s.db.Find(&groups).Error; err != nil {
		return err
	}

	posts := make([]*models.Post, 0, postCount)
	for i := 0; i < postCount; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		var group *models.Group
		if len(groups) > 0 && s.factory.rng.Intn(3) != 0 {
			group = groups[s.factory.rng.Intn(len(groups))]
		}
		posts = append(posts, s.factory.BuildPost(author, group))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return err
	}

	for _, post := range posts {
		for i := s.factory.rng.Intn(4); i > 0; i-- {
			commenter := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return err
			}
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
