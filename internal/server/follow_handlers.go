package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFollowingFeed handles GET /api/feed/following
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.FollowFeed(c.Context(), currentUserID(c), parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(feed)
}

// FollowUser handles POST /api/users/:username/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	if err := s.followService.Follow(c.Context(), currentUserID(c), c.Params("username")); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Following"})
}

// UnfollowUser handles DELETE /api/users/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	if err := s.followService.Unfollow(c.Context(), currentUserID(c), c.Params("username")); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unfollowed"})
}
