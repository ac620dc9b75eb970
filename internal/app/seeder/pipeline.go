package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/internal/service/auth"
)

const (
	PhaseRegions = "regions"
	PhaseWords   = "words"
	PhaseAdmin   = "admin"
	PhaseBlog    = "blog"
)

// allPhases defines the canonical execution order.
var allPhases = []string{PhaseRegions, PhaseWords, PhaseAdmin, PhaseBlog}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Updated  int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds the dataset phase by phase. Every phase is safe to re-run:
// regions are upserted by code, words and posts are only created when missing.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	data    *Dataset
	cfg     Config
	results map[string]PhaseResult

	regionIDs map[string]uuid.UUID
	adminID   uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, data *Dataset, cfg Config) *Pipeline {
	return &Pipeline{
		log:       log,
		repos:     repos,
		data:      data,
		cfg:       cfg,
		results:   make(map[string]PhaseResult),
		regionIDs: make(map[string]uuid.UUID),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			if !slices.Contains(allPhases, ph) {
				return fmt.Errorf("unknown phase %q", ph)
			}
			filter[ph] = true
		}
		toRun = slices.DeleteFunc(slices.Clone(allPhases), func(ph string) bool { return !filter[ph] })
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case PhaseRegions:
			result = p.runRegions(ctx)
		case PhaseWords:
			result = p.runWords(ctx)
		case PhaseAdmin:
			result = p.runAdmin(ctx)
		case PhaseBlog:
			result = p.runBlog(ctx)
		}
		if (phase == PhaseRegions || phase == PhaseWords) && !p.cfg.DryRun {
			p.invalidateMaps(ctx, phase)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("updated", result.Updated),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// invalidateMaps drops the cached all-words map after a phase that may have
// changed regions or links. A failure leaves the cache to expire on its TTL.
func (p *Pipeline) invalidateMaps(ctx context.Context, phase string) {
	if p.repos.Maps == nil {
		return
	}
	if err := p.repos.Maps.Invalidate(ctx); err != nil {
		p.log.Warn("map cache invalidate failed",
			slog.String("phase", phase),
			slog.String("error", err.Error()),
		)
	}
}

// ---------------------------------------------------------------------------
// Regions
// ---------------------------------------------------------------------------

// runRegions upserts the country, then broad regions, subregions and
// provinces so every parent exists before its children. Regions are counted
// as updated since an upsert cannot tell the two apart.
func (p *Pipeline) runRegions(ctx context.Context) PhaseResult {
	total := 1 + len(p.data.Broad) + len(p.data.Subregions) + p.data.ProvinceCount()
	if p.cfg.DryRun {
		return PhaseResult{Skipped: total}
	}

	var result PhaseResult
	country, err := p.repos.Regions.UpsertCountry(ctx, p.data.Country.Name, p.data.Country.Code)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("upsert country: %w", err)}
	}
	result.Updated++

	upsert := func(seed RegionSeed, level domain.RegionLevel, parent string, sort int) error {
		reg := &domain.Region{
			CountryID:   country.ID,
			Name:        seed.Name,
			Code:        seed.Code,
			Level:       level,
			Description: optional(seed.Description),
			SortOrder:   sort,
		}
		if parent != "" {
			parentID, ok := p.regionIDs[parent]
			if !ok {
				return fmt.Errorf("region %s: parent %s not seeded", seed.Code, parent)
			}
			reg.ParentRegionID = &parentID
		}
		saved, err := p.repos.Regions.Upsert(ctx, reg)
		if err != nil {
			return fmt.Errorf("upsert region %s: %w", seed.Code, err)
		}
		p.regionIDs[saved.Code] = saved.ID
		result.Updated++
		return nil
	}

	for _, b := range p.data.Broad {
		if err := upsert(b, domain.RegionLevelBroad, "", b.Sort); err != nil {
			result.Err = err
			return result
		}
	}
	for _, s := range p.data.Subregions {
		if err := upsert(s, domain.RegionLevelSubregion, s.Parent, s.Sort); err != nil {
			result.Err = err
			return result
		}
	}
	for _, s := range p.data.Subregions {
		for i, prov := range p.data.Provinces[s.Code] {
			if err := upsert(prov, domain.RegionLevelProvince, s.Code, i+1); err != nil {
				result.Err = err
				return result
			}
		}
	}

	return result
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

// runWords creates missing words and upserts their region links. Existing
// words are left untouched but their links are refreshed. Links to unknown
// region codes are skipped with a warning.
func (p *Pipeline) runWords(ctx context.Context) PhaseResult {
	var result PhaseResult
	if p.cfg.DryRun {
		result.Skipped = len(p.data.Words)
		return result
	}

	for _, ws := range p.data.Words {
		dialect := domain.DialectType(ws.Dialect)
		if ws.Content == "" || ws.Definition == "" || !dialect.IsValid() {
			p.log.Warn("invalid seed word", slog.String("content", ws.Content), slog.String("dialect", ws.Dialect))
			result.Errors++
			continue
		}

		w, err := p.repos.Words.GetByContent(ctx, ws.Content)
		switch {
		case err == nil:
			result.Skipped++
		case errors.Is(err, domain.ErrNotFound):
			w, err = p.repos.Words.Create(ctx, &domain.Word{
				Content:      ws.Content,
				Definition:   ws.Definition,
				DialectType:  dialect,
				UsageExample: optional(ws.Example),
			})
			if err != nil {
				p.log.Warn("create word failed", slog.String("content", ws.Content), slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			result.Inserted++
		default:
			p.log.Warn("lookup word failed", slog.String("content", ws.Content), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		links, err := p.linksFor(ctx, w.ID, ws)
		if err != nil {
			p.log.Warn("resolve regions failed", slog.String("content", ws.Content), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		if len(links) == 0 {
			continue
		}
		if err := p.repos.Links.UpsertBatch(ctx, links); err != nil {
			p.log.Warn("link regions failed", slog.String("content", ws.Content), slog.String("error", err.Error()))
			result.Errors++
		}
	}

	return result
}

func (p *Pipeline) linksFor(ctx context.Context, wordID uuid.UUID, ws WordSeed) ([]domain.WordRegion, error) {
	links := make([]domain.WordRegion, 0, len(ws.Regions))
	for _, code := range slices.Sorted(maps.Keys(ws.Regions)) {
		strength := ws.Regions[code]
		if strength < domain.MinUsageStrength || strength > domain.MaxUsageStrength {
			p.log.Warn("usage strength out of range, link skipped",
				slog.String("content", ws.Content), slog.String("region", code), slog.Int("strength", strength))
			continue
		}
		regionID, err := p.regionID(ctx, code)
		if errors.Is(err, domain.ErrNotFound) {
			p.log.Warn("unknown region code, link skipped", slog.String("content", ws.Content), slog.String("region", code))
			continue
		}
		if err != nil {
			return nil, err
		}
		links = append(links, domain.WordRegion{WordID: wordID, RegionID: regionID, UsageStrength: strength})
	}
	return links, nil
}

// regionID resolves a code from this run's regions phase, falling back to
// the database when the phase was not run.
func (p *Pipeline) regionID(ctx context.Context, code string) (uuid.UUID, error) {
	if id, ok := p.regionIDs[code]; ok {
		return id, nil
	}
	reg, err := p.repos.Regions.GetByCode(ctx, code)
	if err != nil {
		return uuid.Nil, err
	}
	p.regionIDs[code] = reg.ID
	return reg.ID, nil
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

// runAdmin registers the admin account when it does not exist and grants
// it the admin role.
func (p *Pipeline) runAdmin(ctx context.Context) PhaseResult {
	if p.cfg.AdminPassword == "" {
		p.log.Warn("admin password not configured, admin phase skipped")
		return PhaseResult{Skipped: 1}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}

	var result PhaseResult
	res, err := p.repos.Registrar.Register(ctx, auth.RegisterInput{
		Email:    p.cfg.AdminEmail,
		Name:     p.cfg.AdminName,
		Password: p.cfg.AdminPassword,
	})
	var user *domain.User
	switch {
	case err == nil:
		user = res.User
		result.Inserted++
	case errors.Is(err, domain.ErrAlreadyExists):
		user, err = p.repos.Users.GetByEmail(ctx, p.cfg.AdminEmail)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("get admin: %w", err)}
		}
	default:
		return PhaseResult{Err: fmt.Errorf("register admin: %w", err)}
	}

	if user.Role.IsAdmin() {
		if result.Inserted == 0 {
			result.Skipped++
		}
	} else {
		if _, err := p.repos.Users.SetRole(ctx, user.ID, domain.UserRoleAdmin); err != nil {
			return PhaseResult{Inserted: result.Inserted, Err: fmt.Errorf("promote admin: %w", err)}
		}
		if result.Inserted == 0 {
			result.Updated++
		}
	}

	p.adminID = user.ID
	return result
}

// ---------------------------------------------------------------------------
// Blog
// ---------------------------------------------------------------------------

// runBlog creates the sample posts, authored by the admin account.
func (p *Pipeline) runBlog(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.data.Posts)}
	}

	authorID := p.adminID
	if authorID == uuid.Nil {
		admin, err := p.repos.Users.GetByEmail(ctx, p.cfg.AdminEmail)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("blog author %s: %w", p.cfg.AdminEmail, err)}
		}
		authorID = admin.ID
	}

	var result PhaseResult
	published := time.Now().UTC()
	for _, ps := range p.data.Posts {
		_, err := p.repos.Posts.GetBySlug(ctx, ps.Slug)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			p.log.Warn("lookup post failed", slog.String("slug", ps.Slug), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		post := &domain.BlogPost{
			Title:       ps.Title,
			Slug:        ps.Slug,
			Excerpt:     optional(ps.Excerpt),
			Content:     ps.Content,
			AuthorID:    authorID,
			PublishedAt: &published,
		}
		if ps.Word != "" {
			if w, err := p.repos.Words.GetByContent(ctx, ps.Word); err == nil {
				post.WordID = &w.ID
			} else {
				p.log.Warn("post word not found", slog.String("slug", ps.Slug), slog.String("word", ps.Word))
			}
		}

		if _, err := p.repos.Posts.CreatePost(ctx, post); err != nil {
			p.log.Warn("create post failed", slog.String("slug", ps.Slug), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Inserted++
	}

	return result
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
