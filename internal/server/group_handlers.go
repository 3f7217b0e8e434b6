package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetGroup handles GET /api/groups/:slug
func (s *Server) GetGroup(c *fiber.Ctx) error {
	group, err := s.groupRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(group)
}

// GetGroupPosts handles GET /api/groups/:slug/posts
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	group, feed, err := s.feedService.GroupFeed(c.Context(), c.Params("slug"), parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"group":      group,
		"posts":      feed.Posts,
		"pagination": feed.Page,
	})
}
