package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/mkroi/github-cards/internal/domain"
)

const (
	cardWidth     = 450
	statRowHeight = 25
	repoRowHeight = 40
	bodyOffsetY   = 55
	bottomPadding = 15
)

//go:embed templates/statscard.svg.tmpl
var statsCardTemplate string

//go:embed templates/langscard.svg.tmpl
var langsCardTemplate string

//go:embed templates/contribcard.svg.tmpl
var contribCardTemplate string

var (
	statsCardTmpl   = template.Must(template.New("statscard").Parse(statsCardTemplate))
	langsCardTmpl   = template.Must(template.New("langscard").Parse(langsCardTemplate))
	contribCardTmpl = template.Must(template.New("contribcard").Parse(contribCardTemplate))
)

type statRow struct {
	Y     int
	Label string
	Value string
}

type statsCardViewModel struct {
	Width        int
	Height       int
	InnerWidth   int
	InnerHeight  int
	Theme        Theme
	Title        string
	Rows         []statRow
	RankLevel    string
	RankFontSize int
	RankX        int
	RankY        int
}

// StatsCard renders the user statistics card.
func StatsCard(stats domain.UserStats, theme Theme) ([]byte, error) {
	rows := []statRow{
		{Label: "Total Commits", Value: KFormat(stats.Counts.Commits)},
		{Label: "Total PRs", Value: KFormat(stats.Counts.PullRequests)},
		{Label: "Merged PRs", Value: KFormat(stats.Counts.MergedPullRequests)},
		{Label: "Total Issues", Value: KFormat(stats.Counts.Issues)},
		{Label: "Total Reviews", Value: KFormat(stats.Counts.Reviews)},
		{Label: "Total Stars", Value: KFormat(stats.Counts.Stars)},
		{Label: "Followers", Value: KFormat(stats.Counts.Followers)},
	}
	for i := range rows {
		rows[i].Y = bodyOffsetY + i*statRowHeight
	}

	height := bodyOffsetY + len(rows)*statRowHeight + bottomPadding
	level := stats.Rank.Level.String()

	vm := statsCardViewModel{
		Width:        cardWidth,
		Height:       height,
		InnerWidth:   cardWidth - 1,
		InnerHeight:  height - 1,
		Theme:        theme,
		Title:        escapeXML(fmt.Sprintf("%s's GitHub Stats", stats.Name)),
		Rows:         rows,
		RankLevel:    level,
		RankFontSize: rankFontSize(level, 28, 22),
		RankX:        cardWidth - 85,
		RankY:        height / 2,
	}

	var buf bytes.Buffer
	if err := statsCardTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render stats card: %w", err)
	}
	return buf.Bytes(), nil
}

type langRow struct {
	Y          int
	Name       string
	Color      string
	BarWidth   int
	TrackWidth int
	PctX       int
	Percent    string
}

type langsCardViewModel struct {
	Width       int
	Height      int
	InnerWidth  int
	InnerHeight int
	Theme       Theme
	Title       string
	Rows        []langRow
}

// LangsCard renders the top-languages card. Bars are proportional to
// each language's share of the listed total bytes.
func LangsCard(langs []domain.LanguageUsage, theme Theme) ([]byte, error) {
	const trackWidth = 205

	totalBytes := 0
	for _, l := range langs {
		totalBytes += l.TotalBytes
	}

	rows := make([]langRow, 0, len(langs))
	for i, l := range langs {
		share := 0.0
		if totalBytes > 0 {
			share = float64(l.TotalBytes) / float64(totalBytes)
		}
		color := l.Color
		if color == "" {
			color = DefaultLanguageColor
		}
		rows = append(rows, langRow{
			Y:          bodyOffsetY + i*statRowHeight,
			Name:       escapeXML(l.Name),
			Color:      color,
			BarWidth:   int(share * trackWidth),
			TrackWidth: trackWidth,
			PctX:       140 + trackWidth + 10,
			Percent:    fmt.Sprintf("%.1f", share*100),
		})
	}

	height := bodyOffsetY + len(rows)*statRowHeight + bottomPadding
	if len(rows) == 0 {
		height = bodyOffsetY + 45
	}

	vm := langsCardViewModel{
		Width:       cardWidth,
		Height:      height,
		InnerWidth:  cardWidth - 1,
		InnerHeight: height - 1,
		Theme:       theme,
		Title:       "Most Used Languages",
		Rows:        rows,
	}

	var buf bytes.Buffer
	if err := langsCardTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render languages card: %w", err)
	}
	return buf.Bytes(), nil
}

type repoRow struct {
	Y            int
	Name         string
	Stars        string
	Commits      int
	Rank         string
	RankFontSize int
	BadgeX       int
}

type contribCardViewModel struct {
	Width       int
	Height      int
	InnerWidth  int
	InnerHeight int
	Theme       Theme
	Title       string
	Rows        []repoRow
}

// ContribCard renders the contributor card: one row per retained
// repository with its star count and rank badge.
func ContribCard(repos []domain.RankedContribution, theme Theme) ([]byte, error) {
	rows := make([]repoRow, 0, len(repos))
	for i, r := range repos {
		rank := r.Rank.String()
		rows = append(rows, repoRow{
			Y:            bodyOffsetY + i*repoRowHeight,
			Name:         escapeXML(r.FullName),
			Stars:        KFormat(r.Stars),
			Commits:      r.Commits,
			Rank:         rank,
			RankFontSize: rankFontSize(rank, 13, 10),
			BadgeX:       cardWidth - 75,
		})
	}

	height := bodyOffsetY + len(rows)*repoRowHeight + bottomPadding
	if len(rows) == 0 {
		height = bodyOffsetY + 45
	}

	vm := contribCardViewModel{
		Width:       cardWidth,
		Height:      height,
		InnerWidth:  cardWidth - 1,
		InnerHeight: height - 1,
		Theme:       theme,
		Title:       "Top Contributions",
		Rows:        rows,
	}

	var buf bytes.Buffer
	if err := contribCardTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render contributor card: %w", err)
	}
	return buf.Bytes(), nil
}

// rankFontSize shrinks the badge font for two-character rank strings
// so the modifier fits inside the ring.
func rankFontSize(rank string, single, double int) int {
	if len(rank) > 1 {
		return double
	}
	return single
}
