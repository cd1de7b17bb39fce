package usecase

import (
	"sort"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
)

// CampaignGrouper aggregates selected candidates into deployable units.
// Grouping is strictly by (site-or-microsite id, platform, landing-page
// path): a group never mixes keywords destined for different pages under
// one arbitrary URL.
type CampaignGrouper struct{}

// NewCampaignGrouper returns a grouper.
func NewCampaignGrouper() *CampaignGrouper {
	return &CampaignGrouper{}
}

type groupKey struct {
	siteID   int64
	platform domain.Platform
	path     string
}

// Group builds one CampaignGroup per key. Each group carries the full
// member keyword list, the maximum of member bids as its ceiling, and the
// summed expected cost and revenue. Groups are sorted by mean score
// descending, site id as the stable secondary key.
func (g *CampaignGrouper) Group(candidates []domain.CampaignCandidate) []domain.CampaignGroup {
	groups := make(map[groupKey]*domain.CampaignGroup)
	order := make([]groupKey, 0)
	scoreSums := make(map[groupKey]float64)

	for _, c := range candidates {
		key := groupKey{siteID: c.SiteID, platform: c.Platform, path: c.Landing.Path}
		grp, ok := groups[key]
		if !ok {
			grp = &domain.CampaignGroup{
				SiteID:      c.SiteID,
				SiteName:    c.SiteName,
				Platform:    c.Platform,
				LandingPath: c.Landing.Path,
				LandingURL:  c.Landing.URL,
			}
			groups[key] = grp
			order = append(order, key)
		}
		grp.Keywords = append(grp.Keywords, c.Keyword.Text)
		grp.Members = append(grp.Members, c)
		if c.MaxBid > grp.MaxBid {
			grp.MaxBid = c.MaxBid
		}
		grp.TotalDailyCost += c.ExpectedDailyCost
		grp.TotalDailyRevenue += c.ExpectedDailyRevenue
		scoreSums[key] += float64(c.Score)
	}

	out := make([]domain.CampaignGroup, 0, len(groups))
	for _, key := range order {
		grp := groups[key]
		grp.MeanScore = scoreSums[key] / float64(len(grp.Members))
		out = append(out, *grp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanScore != out[j].MeanScore {
			return out[i].MeanScore > out[j].MeanScore
		}
		return out[i].SiteID < out[j].SiteID
	})
	return out
}
