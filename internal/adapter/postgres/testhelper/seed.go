package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vndialect/tudien-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with the "user" role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      domain.UserRoleUser,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCountry creates a country with a unique code.
func SeedCountry(t *testing.T, pool *pgxpool.Pool) domain.Country {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Country{
		ID:        uuid.New(),
		Name:      "Country " + suffix,
		Code:      "C" + suffix,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO countries (id, name, code, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Code, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCountry: %v", err)
	}

	return c
}

// SeedRegion creates a region of the given level. parent may be nil for broad regions.
// The code is made unique by appending a suffix.
func SeedRegion(t *testing.T, pool *pgxpool.Pool, countryID uuid.UUID, code string, level domain.RegionLevel, parent *uuid.UUID) domain.Region {
	t.Helper()

	r := domain.Region{
		ID:             uuid.New(),
		CountryID:      countryID,
		Name:           code,
		Code:           code + "-" + uniqueSuffix(),
		Level:          level,
		ParentRegionID: parent,
		CreatedAt:      now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO regions (id, country_id, name, code, level, parent_region_id, sort_order, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.CountryID, r.Name, r.Code, string(r.Level), r.ParentRegionID, r.SortOrder, r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRegion: %v", err)
	}

	return r
}

// Hierarchy is a small seeded tree: one broad region with one subregion
// holding two provinces.
type Hierarchy struct {
	Country   domain.Country
	Broad     domain.Region
	Subregion domain.Region
	Provinces []domain.Region
}

// SeedHierarchy creates broad -> subregion -> {province A, province B}.
func SeedHierarchy(t *testing.T, pool *pgxpool.Pool) Hierarchy {
	t.Helper()

	c := SeedCountry(t, pool)
	broad := SeedRegion(t, pool, c.ID, "NORTH", domain.RegionLevelBroad, nil)
	sub := SeedRegion(t, pool, c.ID, "RRD", domain.RegionLevelSubregion, &broad.ID)
	p1 := SeedRegion(t, pool, c.ID, "HN", domain.RegionLevelProvince, &sub.ID)
	p2 := SeedRegion(t, pool, c.ID, "HP", domain.RegionLevelProvince, &sub.ID)

	return Hierarchy{Country: c, Broad: broad, Subregion: sub, Provinces: []domain.Region{p1, p2}}
}

// SeedWord creates a Central-dialect word with the given content.
func SeedWord(t *testing.T, pool *pgxpool.Pool, content string) domain.Word {
	t.Helper()

	ts := now()
	w := domain.Word{
		ID:          uuid.New(),
		Content:     content,
		Definition:  "definition of " + content,
		DialectType: domain.DialectCentral,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, content, definition, dialect_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID, w.Content, w.Definition, string(w.DialectType), w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}

	return w
}

// SeedWordRegion links a word to a region with the given strength.
func SeedWordRegion(t *testing.T, pool *pgxpool.Pool, wordID, regionID uuid.UUID, strength int) domain.WordRegion {
	t.Helper()

	wr := domain.WordRegion{
		ID:            uuid.New(),
		WordID:        wordID,
		RegionID:      regionID,
		UsageStrength: strength,
		CreatedAt:     now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO word_regions (id, word_id, region_id, usage_strength, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		wr.ID, wr.WordID, wr.RegionID, wr.UsageStrength, wr.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWordRegion: %v", err)
	}

	return wr
}

// SeedBlogPost creates a post by author. A nil publishedAt creates a draft.
func SeedBlogPost(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, publishedAt *time.Time) domain.BlogPost {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	p := domain.BlogPost{
		ID:          uuid.New(),
		Title:       "Post " + suffix,
		Slug:        "post-" + suffix,
		Content:     "content " + suffix,
		AuthorID:    authorID,
		PublishedAt: publishedAt,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO blog_posts (id, title, slug, content, author_id, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Title, p.Slug, p.Content, p.AuthorID, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBlogPost: %v", err)
	}

	return p
}
