package app

// ToggleLike flips the like flag on a community post and adjusts its like
// counter. Unknown IDs are a silent no-op.
func (s *Session) ToggleLike(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		if s.posts[i].Liked {
			s.posts[i].Liked = false
			s.posts[i].Likes--
		} else {
			s.posts[i].Liked = true
			s.posts[i].Likes++
		}
		return
	}
	s.logger.Warn("toggle like: unknown post", "id", postID)
}
