// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// compose.go holds the composer post-processing that is independent of any
// single route: hero-group extraction and the deduplicated event-query plan
// a page's block list implies.
package handlers

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"alhikma/internal/content"
	"alhikma/internal/locale"
	"alhikma/internal/render"
)

// heroGroup splits a block list into the hero group — the first VideoHero
// plus any ArrowDividers immediately following it — and the remaining
// blocks in their original order. The home page renders the hero group
// before its fixed sections and everything else after.
func heroGroup(blocks content.BlockList) (hero, rest content.BlockList) {
	heroIdx := -1
	for i, block := range blocks {
		if _, ok := block.(content.VideoHero); ok {
			heroIdx = i
			break
		}
	}
	if heroIdx == -1 {
		return nil, blocks
	}

	end := heroIdx + 1
	for end < len(blocks) {
		if _, ok := blocks[end].(content.ArrowDivider); !ok {
			break
		}
		end++
	}

	rest = make(content.BlockList, 0, len(blocks)-(end-heroIdx))
	rest = append(rest, blocks[:heroIdx]...)
	rest = append(rest, blocks[end:]...)
	return blocks[heroIdx:end], rest
}

// eventPlan is the set of queries a block list requires. Blocks sharing a
// scope collapse into one query; limits take the maximum requested so one
// fetch can serve every block that reads from it.
type eventPlan struct {
	globalUpcoming      bool
	globalUpcomingLimit int
	globalLatest        bool
	globalLatestLimit   int
	sectionUpcoming     map[string]int // section id → limit
	sectionLatest       map[string]int
	announcements       bool
	announcementsLimit  int
}

// buildEventPlan walks a block list and dedupes the auxiliary queries it
// needs. Unknown blocks contribute nothing.
func buildEventPlan(blocks content.BlockList) eventPlan {
	plan := eventPlan{
		sectionUpcoming: make(map[string]int),
		sectionLatest:   make(map[string]int),
	}

	for _, block := range blocks {
		switch b := block.(type) {
		case content.UpcomingEvents:
			limit := content.FeedLimit(b.Limit)
			if b.SectionID == "" {
				plan.globalUpcoming = true
				plan.globalUpcomingLimit = maxInt(plan.globalUpcomingLimit, limit)
			} else {
				plan.sectionUpcoming[b.SectionID] = maxInt(plan.sectionUpcoming[b.SectionID], limit)
			}
		case content.LatestEvents:
			limit := content.FeedLimit(b.Limit)
			if b.SectionID == "" {
				plan.globalLatest = true
				plan.globalLatestLimit = maxInt(plan.globalLatestLimit, limit)
			} else {
				plan.sectionLatest[b.SectionID] = maxInt(plan.sectionLatest[b.SectionID], limit)
			}
		case content.Announcements:
			plan.announcements = true
			plan.announcementsLimit = maxInt(plan.announcementsLimit, content.FeedLimit(b.Limit))
		}
	}

	return plan
}

// fetchAux runs the plan's queries concurrently and assembles the data the
// section dispatcher renders from. This is the second fetch stage: it can
// only run after the page document (and with it the block list) is known.
func fetchAux(ctx context.Context, c *content.Client, loc locale.Locale, blocks content.BlockList) (render.Aux, error) {
	plan := buildEventPlan(blocks)

	aux := render.Aux{
		SectionUpcoming: make(map[string][]content.EventSummary),
		SectionLatest:   make(map[string][]content.EventSummary),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	if plan.globalUpcoming {
		g.Go(func() error {
			events, err := c.UpcomingEvents(ctx, loc, "", plan.globalUpcomingLimit)
			if err != nil {
				return err
			}
			aux.Upcoming = events
			return nil
		})
	}
	if plan.globalLatest {
		g.Go(func() error {
			events, err := c.LatestEvents(ctx, loc, "", plan.globalLatestLimit)
			if err != nil {
				return err
			}
			aux.Latest = events
			return nil
		})
	}
	for sectionID, limit := range plan.sectionUpcoming {
		sectionID, limit := sectionID, limit
		g.Go(func() error {
			events, err := c.UpcomingEvents(ctx, loc, sectionID, limit)
			if err != nil {
				return err
			}
			mu.Lock()
			aux.SectionUpcoming[sectionID] = events
			mu.Unlock()
			return nil
		})
	}
	for sectionID, limit := range plan.sectionLatest {
		sectionID, limit := sectionID, limit
		g.Go(func() error {
			events, err := c.LatestEvents(ctx, loc, sectionID, limit)
			if err != nil {
				return err
			}
			mu.Lock()
			aux.SectionLatest[sectionID] = events
			mu.Unlock()
			return nil
		})
	}
	if plan.announcements {
		g.Go(func() error {
			items, err := c.Announcements(ctx, loc, plan.announcementsLimit)
			if err != nil {
				return err
			}
			aux.Announcements = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return render.Aux{}, err
	}
	return aux, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
