package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/roster/internal/api"
	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/fetch"
	"github.com/rshade/roster/internal/records"
)

// maxDetailFetches bounds concurrent detail lookups for --details.
const maxDetailFetches = 8

// fetchCharacterDetails looks up the detail record of every item, each with
// its own controller. Results keep the order of items. A character the
// upstream no longer knows is reported with the list's id and name and
// default demographics. The first failure cancels the remaining lookups.
func fetchCharacterDetails(
	ctx context.Context,
	cfg *config.Config,
	items []records.ListItem,
) ([]records.DetailRecord, error) {
	details := make([]records.DetailRecord, len(items))
	opts := fetchOptions(ctx, cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDetailFetches)
	for i, item := range items {
		g.Go(func() error {
			ctrl := fetch.New(records.DecodeCharacterDetail, opts...)
			defer ctrl.Close()

			state := ctrl.Fetch(gctx, api.CharacterDetailURL(cfg.Characters.BaseURL, item.ID))
			if err := outcome(gctx, state); err != nil {
				return fmt.Errorf("character %s: %w", item.ID, err)
			}
			if state.Payload == nil {
				loggerFrom(ctx).Warn().Ctx(ctx).Str("id", item.ID).Msg("character listed but not found")
				details[i] = placeholderDetail(item)
				return nil
			}
			details[i] = *state.Payload
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// placeholderDetail is the detail shown for a listed character without a record.
func placeholderDetail(item records.ListItem) records.DetailRecord {
	return records.DetailRecord{
		ID:     item.ID,
		Name:   item.Name,
		Age:    records.DefaultDemographic,
		Gender: records.DefaultDemographic,
		Race:   records.DefaultDemographic,
		Image:  item.Image,
	}
}

// compareIDs orders numeric ids numerically and everything else as text;
// numeric ids sort first.
func compareIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
