package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:username
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.followService.GetProfile(c.Context(), c.Params("username"), optionalUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// GetUserPosts handles GET /api/users/:username/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	author, feed, err := s.feedService.ProfileFeed(c.Context(), c.Params("username"), parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"author":     author,
		"posts":      feed.Posts,
		"pagination": feed.Page,
	})
}
