package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.MinPasswordLen < 8 {
		return fmt.Errorf("auth.min_password_len must be >= 8 (got %d)", c.Auth.MinPasswordLen)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if c.Blog.PageSize <= 0 {
		return fmt.Errorf("blog.page_size must be > 0 (got %d)", c.Blog.PageSize)
	}
	if c.Blog.MaxCommentLength <= 0 {
		return fmt.Errorf("blog.max_comment_length must be > 0 (got %d)", c.Blog.MaxCommentLength)
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be > 0 (got %d)", c.RateLimit.Requests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be > 0 (got %v)", c.RateLimit.Window)
	}
	if _, err := c.RateLimit.TrustedPrefixes(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	return nil
}

func (d DictionaryConfig) validate() error {
	if d.SearchLimit <= 0 {
		return fmt.Errorf("search_limit must be > 0 (got %d)", d.SearchLimit)
	}
	if d.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", d.DefaultPageSize)
	}
	if d.MaxPageSize < d.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)", d.MaxPageSize, d.DefaultPageSize)
	}
	return nil
}
